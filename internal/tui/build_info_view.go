// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/account-vault/models"
)

const appName = "AccountVault"

// renderBuildInfoWindow shows the -ldflags build variables of the client.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Приложение", appName},
		{"Версия", info.BuildVersion()},
		{"Дата сборки", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		value := strings.TrimSpace(row[1])
		if value == "" {
			value = "N/A"
		}
		lines = append(lines, fmt.Sprintf("%-12s %s", row[0]+":", value))
	}

	return renderPage("О ПРОГРАММЕ", strings.Join(lines, "\n"), "esc / v: назад")
}
