package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/persimmonlabs/PARA-DAP/internal/cache"
	"github.com/persimmonlabs/PARA-DAP/internal/logger"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/persimmonlabs/PARA-DAP/internal/view"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneSidebar Pane = iota
	PaneTaskList
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeAddProject
	ModeHelp
)

// viewKind selects what the task list shows
type viewKind int

const (
	viewInbox viewKind = iota
	viewToday
	viewAll
	viewProject
)

// sidebarEntry is one selectable row in the sidebar: a fixed view or a
// project.
type sidebarEntry struct {
	kind    viewKind
	name    string
	project model.Project // set when kind == viewProject
}

// Model is the main TUI model
type Model struct {
	data *cache.Cache

	// Derived render state, rebuilt from the cache mirror after every
	// load or mutation.
	entries []sidebarEntry
	grouped view.Grouped
	flat    []model.Item // grouped buckets concatenated, for cursor math

	loaded bool

	// UI state
	width      int
	height     int
	pane       Pane
	mode       Mode
	sideCursor int
	taskCursor int

	// Input
	input textinput.Model

	message string
}

// NewModel creates a new TUI model over the client cache. Data arrives via
// the Init command.
func NewModel(data *cache.Cache) Model {
	logger.Info("initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Enter task..."
	ti.CharLimit = 256
	ti.Width = 50

	return Model{
		data:  data,
		pane:  PaneSidebar,
		mode:  ModeNormal,
		input: ti,
	}
}

// rebuild refreshes sidebar entries and the grouped task list from the
// cache mirror.
func (m *Model) rebuild() {
	projects := m.data.Projects()

	m.entries = []sidebarEntry{
		{kind: viewInbox, name: "Inbox"},
		{kind: viewToday, name: "Today"},
		{kind: viewAll, name: "All Tasks"},
	}
	for _, p := range projects {
		m.entries = append(m.entries, sidebarEntry{kind: viewProject, name: p.Name, project: p})
	}
	if m.sideCursor >= len(m.entries) {
		m.sideCursor = 0
	}

	m.grouped = view.GroupByDate(m.visibleTasks())
	m.flat = nil
	m.flat = append(m.flat, m.grouped.Overdue...)
	m.flat = append(m.flat, m.grouped.Today...)
	m.flat = append(m.flat, m.grouped.Upcoming...)
	m.flat = append(m.flat, m.grouped.NoDate...)

	if m.taskCursor >= len(m.flat) {
		m.taskCursor = 0
	}
}

// visibleTasks filters the cache mirror for the selected sidebar entry.
// Filtering happens client-side against the mirror, so optimistic changes
// show immediately.
func (m *Model) visibleTasks() []model.Item {
	tasks := m.data.Tasks()
	entry := m.currentEntry()
	if entry == nil {
		return tasks
	}

	var out []model.Item
	for _, t := range tasks {
		if t.Completed() || t.Archived() {
			continue
		}
		switch entry.kind {
		case viewInbox:
			if t.ProjectID == nil && t.Area == nil {
				out = append(out, t)
			}
		case viewToday:
			if t.DueDate != nil && *t.DueDate == today() {
				out = append(out, t)
			}
		case viewProject:
			if t.ProjectID != nil && *t.ProjectID == entry.project.ID {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}
	return out
}

func (m *Model) currentEntry() *sidebarEntry {
	if m.sideCursor < len(m.entries) {
		return &m.entries[m.sideCursor]
	}
	return nil
}

func (m *Model) currentTask() *model.Item {
	if m.taskCursor < len(m.flat) {
		return &m.flat[m.taskCursor]
	}
	return nil
}
