package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/service"
	"github.com/MKhiriev/go-diffsync/models"
)

// TUI is the terminal front end of the client. It edits the local list
// through the client services and never talks to the server directly.
type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
	logger   *logger.Logger
}

// New returns a TUI over services.
//
// Parameters:
//   - services: client services; TodoService and SyncService are required.
//   - build: build information shown in the info window.
//   - logger: the client logger. The TUI owns the terminal, so nothing is
//     written to stdout.
func New(services *service.ClientServices, build models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.TodoService == nil || services.SyncService == nil {
		return nil, errors.New("tui: client services are not set")
	}
	return &TUI{services: services, build: build, logger: logger}, nil
}

// Run shows the todo list until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newTodoModel(ctx, t.services.TodoService, t.services.SyncService, t.build)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui stopped")
		return err
	}

	if _, ok := finalModel.(todoModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
