// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/account-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel is the gate in front of every other screen. It hands the
// typed passphrase to the vault and opens the list on success.
type UnlockModel struct {
	vault service.VaultService
	input textinput.Model
}

func NewUnlockModel(vault service.VaultService) *UnlockModel {
	in := textinput.New()
	in.Placeholder = "мастер-пароль"
	in.Prompt = "> "
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.Focus()

	return &UnlockModel{vault: vault, input: in}
}

func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.enter) {
		secret := []byte(m.input.Value())
		m.input.Reset()

		if err := m.vault.Unlock(secret); err != nil {
			return m, showError(err)
		}
		return m, navigate(pageList, reloadMsg{})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	data := "Хранилище заблокировано.\nВведите мастер-пароль:\n\n" + m.input.View()
	return renderPage("РАЗБЛОКИРОВКА", data, "enter: разблокировать")
}
