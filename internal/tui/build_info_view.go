// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diffsync/internal/service"
	"github.com/MKhiriev/go-diffsync/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string, status service.SyncStatus) string {
	var b strings.Builder

	b.WriteString("Название приложения: diffsync todos\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("Версия сервера: ")
	b.WriteString(valueOrNA(serverVersion))
	b.WriteString("\n")
	b.WriteString("Тень: ")
	if status.Initialized {
		fmt.Fprintf(&b, "%d/%d, ожидают подтверждения: %d", status.ServerVersion, status.ClientVersion, status.Pending)
	} else {
		b.WriteString("N/A")
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
