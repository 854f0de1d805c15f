package tui

import (
	"github.com/MKhiriev/go-diffsync/internal/service"
	"github.com/MKhiriev/go-diffsync/models"
)

type todosMsg struct {
	items []models.Todo
	err   error
}

type syncDoneMsg struct {
	err error
}

type serverVersionMsg struct {
	version string
	err     error
}

type syncStatusMsg struct {
	status service.SyncStatus
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
