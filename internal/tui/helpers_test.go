package tui

import tea "github.com/charmbracelet/bubbletea"

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
