package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/persimmonlabs/PARA-DAP/internal/logger"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

// loadedMsg is sent when the initial full refresh completes
type loadedMsg struct {
	err error
}

// mutatedMsg is sent when a mutation round trip finishes. On failure the
// cache has already rolled back; the UI just re-renders and surfaces the
// error.
type mutatedMsg struct {
	action string
	err    error
}

// Init kicks off the initial load
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: m.data.Load(context.Background())}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.message = "Load failed: " + msg.err.Error()
			logger.Error("initial load failed", logger.F("error", msg.err))
			return m, nil
		}
		m.loaded = true
		m.message = ""
		m.rebuild()
		return m, nil

	case mutatedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("%s failed: %v (reverted)", msg.action, msg.err)
			logger.Warn("mutation rolled back",
				logger.F("action", msg.action),
				logger.F("error", msg.err))
		} else {
			m.message = ""
		}
		m.rebuild()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddTask, ModeAddProject:
			return m.updateInput(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneSidebar {
			m.pane = PaneTaskList
		} else {
			m.pane = PaneSidebar
		}

	case key.Matches(msg, keys.Left):
		m.pane = PaneSidebar

	case key.Matches(msg, keys.Right):
		m.pane = PaneTaskList

	case key.Matches(msg, keys.Up):
		m.handleUp()

	case key.Matches(msg, keys.Down):
		m.handleDown()

	case key.Matches(msg, keys.Add):
		return m.startAddTask()

	case key.Matches(msg, keys.Project):
		return m.startAddProject()

	case key.Matches(msg, keys.Done), key.Matches(msg, keys.Enter):
		return m.handleToggleDone()

	case key.Matches(msg, keys.Delete):
		return m.handleDelete()

	case key.Matches(msg, keys.Refresh):
		m.message = "Refreshing..."
		return m, m.loadCmd()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Escape):
		m.message = ""
	}

	return m, nil
}

func (m *Model) handleUp() {
	if m.pane == PaneSidebar {
		if m.sideCursor > 0 {
			m.sideCursor--
			m.taskCursor = 0
			m.rebuild()
		}
	} else if m.taskCursor > 0 {
		m.taskCursor--
	}
}

func (m *Model) handleDown() {
	if m.pane == PaneSidebar {
		if m.sideCursor < len(m.entries)-1 {
			m.sideCursor++
			m.taskCursor = 0
			m.rebuild()
		}
	} else if m.taskCursor < len(m.flat)-1 {
		m.taskCursor++
	}
}

func (m Model) startAddTask() (tea.Model, tea.Cmd) {
	m.mode = ModeAddTask
	m.input.SetValue("")
	m.input.Placeholder = "Enter task..."
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) startAddProject() (tea.Model, tea.Cmd) {
	m.mode = ModeAddProject
	m.input.SetValue("")
	m.input.Placeholder = "Enter project name..."
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) handleToggleDone() (tea.Model, tea.Cmd) {
	if m.pane != PaneTaskList {
		return m, nil
	}
	task := m.currentTask()
	if task == nil {
		return m, nil
	}

	id := task.ID
	return m, func() tea.Msg {
		_, err := m.data.ToggleTask(context.Background(), id)
		return mutatedMsg{action: "Toggle", err: err}
	}
}

func (m Model) handleDelete() (tea.Model, tea.Cmd) {
	if m.pane != PaneTaskList {
		return m, nil
	}
	task := m.currentTask()
	if task == nil {
		return m, nil
	}

	id := task.ID
	if m.taskCursor >= len(m.flat)-1 && m.taskCursor > 0 {
		m.taskCursor--
	}
	return m, func() tea.Msg {
		err := m.data.DeleteTask(context.Background(), id)
		return mutatedMsg{action: "Delete", err: err}
	}
}

// updateInput handles text entry for the add-task and add-project modals
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := m.input.Value()
		mode := m.mode
		m.mode = ModeNormal
		m.input.Blur()
		if value == "" {
			return m, nil
		}

		if mode == ModeAddProject {
			return m, func() tea.Msg {
				_, err := m.data.CreateProject(context.Background(), model.ProjectDraft{Name: value})
				return mutatedMsg{action: "Create project", err: err}
			}
		}

		draft := model.ItemDraft{Title: value}
		if entry := m.currentEntry(); entry != nil {
			switch entry.kind {
			case viewProject:
				id := entry.project.ID
				draft.ProjectID = &id
			case viewToday:
				due := today()
				draft.DueDate = &due
			}
		}
		return m, func() tea.Msg {
			_, err := m.data.CreateTask(context.Background(), draft)
			return mutatedMsg{action: "Create", err: err}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
