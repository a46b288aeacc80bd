// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/account-vault/internal/service"
	"github.com/MKhiriev/account-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const listTitleWidth = 32

// ListModel shows stored records by their plaintext title and tags. The
// digit hotkeys copy one decrypted field of the selected record.
type ListModel struct {
	ctx   context.Context
	vault service.VaultService

	records []models.Record
	visible []models.Record
	idx     int

	filter    textinput.Model
	filtering bool

	confirmDelete bool

	loading bool
	spinner spinner.Model
	status  string
}

func NewListModel(ctx context.Context, vault service.VaultService) *ListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	f := textinput.New()
	f.Prompt = "/"
	f.Placeholder = "название или тег"

	return &ListModel{ctx: ctx, vault: vault, spinner: s, filter: f}
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reloadMsg:
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.load())

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		m.records = msg.records
		m.applyFilter()
		return m, nil

	case recordDeletedMsg:
		if msg.err != nil {
			return m, showError(msg.err)
		}
		m.removeRecord(msg.id)
		m.status = "Запись удалена"
		return m, nil

	case revealDoneMsg:
		if msg.err != nil {
			m.status = ""
			return m, showError(msg.err)
		}
		if msg.copied {
			m.status = fmt.Sprintf("%s скопировано, буфер очистится через %s", msg.field, m.vault.ClipboardTTL())
		} else {
			m.status = fmt.Sprintf("Поле %s пустое, буфер не изменён", msg.field)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		return m.handleConfirm(msg)
	}
	if m.filtering {
		return m.handleFilter(msg)
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, keys.reveal):
		return m.reveal(int(msg.String()[0] - '1'))
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.confirmDelete = true
		}
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageAdd, nil)
	case key.Matches(msg, keys.reload):
		return m.Update(reloadMsg{})
	case key.Matches(msg, keys.lock):
		m.vault.Lock()
		m.reset()
		return m, navigate(pageUnlock, nil)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *ListModel) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		rec, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.status = "Удаление..."
		return m, m.delete(rec.ID)
	case key.Matches(msg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m *ListModel) handleFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		m.filter.Reset()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *ListModel) reveal(n int) (tea.Model, tea.Cmd) {
	rec, ok := m.selected()
	if !ok || n < 0 || n >= len(models.RevealableFields) {
		return m, nil
	}
	field := models.RevealableFields[n]
	m.status = "Расшифровка..."

	return m, func() tea.Msg {
		copied, err := m.vault.Reveal(rec, field)
		return revealDoneMsg{field: field, copied: copied, err: err}
	}
}

func (m *ListModel) load() tea.Cmd {
	return func() tea.Msg {
		records, err := m.vault.List(m.ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m *ListModel) delete(id string) tea.Cmd {
	return func() tea.Msg {
		return recordDeletedMsg{id: id, err: m.vault.Delete(m.ctx, id)}
	}
}

func (m *ListModel) applyFilter() {
	m.visible = service.FilterRecords(m.records, m.filter.Value())
	if m.idx >= len(m.visible) {
		m.idx = max(len(m.visible)-1, 0)
	}
}

func (m *ListModel) removeRecord(id string) {
	kept := m.records[:0]
	for _, r := range m.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.records = kept
	m.applyFilter()
}

func (m *ListModel) selected() (models.Record, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return models.Record{}, false
	}
	return m.visible[m.idx], true
}

func (m *ListModel) reset() {
	m.records = nil
	m.visible = nil
	m.idx = 0
	m.status = ""
	m.filtering = false
	m.confirmDelete = false
	m.filter.Blur()
	m.filter.Reset()
}

func (m *ListModel) acceptsHotkeys() bool {
	return !m.filtering && !m.confirmDelete
}

func (m *ListModel) View() string {
	var b strings.Builder

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	case len(m.visible) == 0:
		b.WriteString("Нет записей\n")
	default:
		for i, rec := range m.visible {
			cursor := "  "
			title := fitText(recordTitle(rec), listTitleWidth)
			if i == m.idx {
				cursor = "> "
				title = selectedStyle.Render(title)
			}
			b.WriteString(cursor + title)
			if tags := renderTags(rec.Tags); tags != "" {
				b.WriteString("  " + tags)
			}
			b.WriteString("\n")
		}
	}

	if m.confirmDelete {
		if rec, ok := m.selected(); ok {
			b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Удалить «%s»? y: да  n: нет", recordTitle(rec))) + "\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(revealLegend()))

	hotKeys := "↑/↓: выбор  /: поиск  a: добавить  d: удалить  r: обновить  l: заблокировать  v: о программе  q: выход"
	return renderPage("ЗАПИСИ", b.String(), hotKeys)
}

func recordTitle(rec models.Record) string {
	if strings.TrimSpace(rec.Title) == "" {
		return "(без названия)"
	}
	return rec.Title
}

func revealLegend() string {
	parts := make([]string, 0, len(models.RevealableFields))
	for i, f := range models.RevealableFields {
		parts = append(parts, fmt.Sprintf("%d: %s", i+1, f))
	}
	return "копировать: " + strings.Join(parts, "  ")
}
