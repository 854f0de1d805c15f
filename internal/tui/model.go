package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diffsync/internal/service"
	"github.com/MKhiriev/go-diffsync/models"
)

const statusTimeout = 3 * time.Second

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmClear
	modeInfo
	modeError
)

type todoModel struct {
	ctx   context.Context
	todos service.ClientTodoService
	sync  service.ClientSyncService
	build models.AppBuildInfo

	// copyText is clipboard.WriteAll outside of tests.
	copyText func(string) error

	items         []models.Todo
	idx           int
	mode          mode
	input         textinput.Model
	spinner       spinner.Model
	loading       bool
	syncing       bool
	status        string
	errMsg        string
	serverVersion string
	syncStatus    service.SyncStatus

	quit bool
}

func newTodoModel(ctx context.Context, todos service.ClientTodoService, sync service.ClientSyncService, build models.AppBuildInfo) todoModel {
	input := textinput.New()
	input.Placeholder = "Что нужно сделать?"
	input.CharLimit = 256

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return todoModel{
		ctx:      ctx,
		todos:    todos,
		sync:     sync,
		build:    build,
		copyText: clipboard.WriteAll,
		input:    input,
		spinner:  s,
		loading:  true,
	}
}

func (m todoModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m todoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosMsg:
		m.loading = false
		if msg.err != nil {
			return m.showError(todoErrorMessage(msg.err)), nil
		}
		m.items = msg.items
		m.clampIndex()
		return m, m.cmdStatus()

	case syncStatusMsg:
		// состояние синхронизации только подсказка, ошибку не показываем
		if msg.err == nil {
			m.syncStatus = msg.status
		}
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			return m.showError(syncErrorMessage(msg.err)), nil
		}
		status := m.setStatus("Синхронизация завершена")
		return m, tea.Batch(m.cmdLoad(), status)

	case serverVersionMsg:
		if msg.err != nil {
			m.serverVersion = ""
			cmd := m.setStatus(syncErrorMessage(msg.err))
			return m, cmd
		}
		m.serverVersion = msg.version
		return m, nil

	case copiedMsg:
		status := "Скопировано в буфер обмена"
		if msg.err != nil {
			status = "Не удалось скопировать: " + msg.err.Error()
		}
		cmd := m.setStatus(status)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeConfirmClear:
			return m.updateConfirm(msg)
		case modeInfo, modeError:
			if key.Matches(msg, keys.esc, keys.enter) {
				m.mode = modeList
				m.errMsg = ""
			}
			return m, nil
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m todoModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.mode = modeAdd
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, keys.edit, keys.enter):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.input.SetValue(item.Description)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, keys.toggle):
		if _, ok := m.current(); ok {
			idx := m.idx
			return m, m.cmdChange(func(ctx context.Context) ([]models.Todo, error) { return m.todos.Toggle(ctx, idx) })
		}
	case key.Matches(msg, keys.toggleAll):
		return m, m.cmdChange(m.todos.ToggleAll)
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			idx := m.idx
			return m, m.cmdChange(func(ctx context.Context) ([]models.Todo, error) { return m.todos.Remove(ctx, idx) })
		}
	case key.Matches(msg, keys.clearDone):
		if m.completed() > 0 {
			m.mode = modeConfirmClear
		}
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, m.cmdSync()
	case key.Matches(msg, keys.copy):
		if item, ok := m.current(); ok {
			return m, m.cmdCopy(item.Description)
		}
	case key.Matches(msg, keys.info):
		m.mode = modeInfo
		return m, m.cmdServerVersion()
	}

	return m, nil
}

func (m todoModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		description := m.input.Value()
		if strings.TrimSpace(description) == "" {
			cmd := m.setStatus(todoErrorMessage(service.ErrEmptyDescription))
			return m, cmd
		}

		editing, idx := m.mode == modeEdit, m.idx
		m.mode = modeList
		m.input.Blur()

		if editing {
			return m, m.cmdChange(func(ctx context.Context) ([]models.Todo, error) { return m.todos.Edit(ctx, idx, description) })
		}
		m.idx = len(m.items)
		return m, m.cmdChange(func(ctx context.Context) ([]models.Todo, error) { return m.todos.Add(ctx, description) })
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m todoModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeList
		return m, m.cmdChange(m.todos.RemoveCompleted)
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m todoModel) View() string {
	switch m.mode {
	case modeInfo:
		return renderBuildInfoWindow(m.build, m.serverVersion, m.syncStatus)
	case modeError:
		return appStyle.Render(errorOverlayModel{message: m.errMsg}.View())
	case modeConfirmClear:
		return appStyle.Render(confirmModel{count: m.completed()}.View())
	}

	header := "ЗАДАЧИ"
	if m.syncStatus.Unsynced && !m.loading {
		header += "  " + pendingStyle.Render("● не синхронизировано")
	}
	if m.syncing {
		header += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.items) == 0:
		b.WriteString("Нет задач")
	default:
		for i, item := range m.items {
			b.WriteString(m.renderItem(i, item))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\nосталось: %d из %d", len(m.items)-m.completed(), len(m.items))
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage(header, b.String(), m.hotKeys())
}

func (m todoModel) renderItem(i int, item models.Todo) string {
	cursor := "  "
	if i == m.idx {
		cursor = "> "
	}

	check, text := "[ ]", fitText(item.Description, 60)
	if item.Complete {
		check, text = "[x]", doneStyle.Render(text)
	}
	if item.ID == 0 {
		// сервер ещё не присвоил id
		text += pendingStyle.Render(" *")
	}

	return cursor + check + " " + text
}

func (m todoModel) hotKeys() string {
	if m.mode == modeAdd || m.mode == modeEdit {
		return "enter: сохранить  esc: отмена"
	}
	return "n новая  e изм.  space отметить  a все  d удалить  x очистить  s синхр.  c копировать  v версия"
}

func (m todoModel) current() (models.Todo, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Todo{}, false
	}
	return m.items[m.idx], true
}

func (m todoModel) completed() int {
	n := 0
	for _, item := range m.items {
		if item.Complete {
			n++
		}
	}
	return n
}

func (m *todoModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m todoModel) showError(message string) todoModel {
	m.mode = modeError
	m.errMsg = message
	return m
}

func (m *todoModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m todoModel) cmdLoad() tea.Cmd {
	return m.cmdChange(m.todos.List)
}

func (m todoModel) cmdChange(change func(ctx context.Context) ([]models.Todo, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		items, err := change(ctx)
		return todosMsg{items: items, err: err}
	}
}

func (m todoModel) cmdSync() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return syncDoneMsg{err: sync.Sync(ctx)}
	}
}

func (m todoModel) cmdServerVersion() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		version, err := sync.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func (m todoModel) cmdStatus() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		status, err := sync.Status(ctx)
		return syncStatusMsg{status: status, err: err}
	}
}

func (m todoModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}
