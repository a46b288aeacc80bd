// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/account-vault/internal/app"

type errorOverlayModel struct {
	message string
}

func newErrorOverlay(err error) *errorOverlayModel {
	return &errorOverlayModel{message: app.UserMessage(err)}
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Ошибка") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc закрыть")
	return overlayBoxStyle.Render(content)
}
