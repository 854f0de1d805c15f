// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-diffsync/internal/service"
)

func syncErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrServerUnavailable) {
		return "синхронизация не выполнена. Сервер недоступен"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "синхронизация не выполнена. Отсутствует сеть или Сервер недоступен"
	}

	return "Ошибка синхронизации: " + err.Error()
}

func todoErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyDescription):
		return "Описание задачи не может быть пустым"
	case errors.Is(err, service.ErrTodoIndexOutOfList):
		return "Задача не найдена"
	}
	return err.Error()
}
