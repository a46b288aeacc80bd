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
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formKeyTitle = "title"
	formKeyTags  = "tags"

	labelCharLimit = 255
	labelWidth     = 22
)

type formField struct {
	key    string
	label  string
	masked bool
	// meta fields go to the spreadsheet mirror only and are never encrypted.
	meta bool
}

var accountFormFields = []formField{
	{key: formKeyTitle, label: "Название"},
	{key: formKeyTags, label: "Теги (через запятую)"},
	{key: models.FieldUsername, label: "Логин"},
	{key: models.FieldEmail, label: "Email"},
	{key: models.FieldPassword, label: "Пароль", masked: true},
	{key: models.FieldPhone, label: "Телефон"},
	{key: models.FieldTOTP, label: "TOTP", masked: true},
	{key: models.FieldNote, label: "Заметка"},
	{key: "platform", label: "Платформа", meta: true},
	{key: "url", label: "URL", meta: true},
	{key: "industry", label: "Отрасль", meta: true},
	{key: "priority", label: "Приоритет", meta: true},
	{key: "status", label: "Статус", meta: true},
	{key: "expires_at", label: "Действует до", meta: true},
	{key: "twofa", label: "2FA", meta: true},
}

// AddModel is the new account form. Credentials are sealed by the vault
// before anything leaves the process.
type AddModel struct {
	ctx   context.Context
	vault service.VaultService

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func NewAddModel(ctx context.Context, vault service.VaultService) *AddModel {
	m := &AddModel{ctx: ctx, vault: vault}
	m.reset()
	return m
}

func (m *AddModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = ""
			return m, showError(msg.err)
		}
		m.reset()
		return m, navigate(pageList, reloadMsg{})

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, navigate(pageList, nil)
		case key.Matches(msg, keys.submit):
			return m.submit()
		case key.Matches(msg, keys.enter):
			if m.focus == len(m.inputs)-1 {
				return m.submit()
			}
			return m, m.moveFocus(1)
		case key.Matches(msg, keys.tab):
			return m, m.moveFocus(1)
		case key.Matches(msg, keys.backtab):
			return m, m.moveFocus(-1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AddModel) submit() (tea.Model, tea.Cmd) {
	acc, meta := m.values()
	if acc == (models.Account{}) {
		m.status = "Заполните хотя бы одно поле записи"
		return m, nil
	}

	m.submitting = true
	m.status = "Шифрование и сохранение..."

	return m, func() tea.Msg {
		rec, err := m.vault.Create(m.ctx, acc, meta)
		return recordCreatedMsg{record: rec, err: err}
	}
}

// values collects the form. Labels and meta are trimmed, credentials are
// taken as typed.
func (m *AddModel) values() (models.Account, models.Meta) {
	var acc models.Account
	meta := models.Meta{}

	for i, f := range accountFormFields {
		raw := m.inputs[i].Value()
		trimmed := strings.TrimSpace(raw)

		if f.meta {
			if trimmed != "" {
				meta[f.key] = trimmed
			}
			continue
		}

		switch f.key {
		case formKeyTitle:
			acc.Title = trimmed
		case formKeyTags:
			acc.Tags = strings.Join(service.SplitTags(trimmed), ",")
		case models.FieldUsername:
			acc.Username = trimmed
		case models.FieldEmail:
			acc.Email = trimmed
		case models.FieldPassword:
			acc.Password = raw
		case models.FieldPhone:
			acc.Phone = trimmed
		case models.FieldTOTP:
			acc.TOTP = trimmed
		case models.FieldNote:
			acc.Note = raw
		}
	}

	if len(meta) == 0 {
		meta = nil
	}
	return acc, meta
}

func (m *AddModel) moveFocus(delta int) tea.Cmd {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + n) % n
	return m.inputs[m.focus].Focus()
}

func (m *AddModel) reset() {
	m.inputs = make([]textinput.Model, len(accountFormFields))
	for i, f := range accountFormFields {
		in := textinput.New()
		in.Prompt = ""
		if f.key == formKeyTitle || f.key == formKeyTags {
			in.CharLimit = labelCharLimit
		}
		if f.masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		m.inputs[i] = in
	}

	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.status = ""
}

func (m *AddModel) View() string {
	var b strings.Builder

	for i, f := range accountFormFields {
		if f.meta && (i == 0 || !accountFormFields[i-1].meta) {
			b.WriteString("\n" + helpStyle.Render("Метаданные (не шифруются, только для таблицы)") + "\n")
		}

		cursor := "  "
		label := fmt.Sprintf("%-*s", labelWidth, f.label)
		if i == m.focus {
			cursor = "> "
			label = selectedStyle.Render(label)
		}
		b.WriteString(cursor + label + " " + m.inputs[i].View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("НОВАЯ ЗАПИСЬ", b.String(), "tab/shift+tab: поле  ctrl+s: сохранить  esc: отмена")
}
