package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if !m.loaded {
		return TaskListStyle.Render("Loading tasks...")
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()
	main := m.renderTaskList()

	content := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("PARA"))
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.mode == ModeAddTask || m.mode == ModeAddProject {
		return m.renderModal()
	}

	return b.String()
}

func (m Model) renderSidebar() string {
	var b strings.Builder

	for i, entry := range m.entries {
		label := entry.name
		if entry.kind == viewProject {
			emoji := "📁"
			if entry.project.Emoji != nil && *entry.project.Emoji != "" {
				emoji = *entry.project.Emoji
			}
			label = fmt.Sprintf("%s %s (%d)", emoji, truncate(entry.name, 14), entry.project.ActiveTaskCount)
			if entry.project.Area != nil {
				label = AreaDot(entry.project.Area) + " " + label
			}
		}

		style := SidebarItemStyle
		if i == m.sideCursor {
			style = SidebarItemSelectedStyle
			if m.pane == PaneSidebar {
				label = "> " + label
			}
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")

		// Separator between the fixed views and the project list
		if entry.kind == viewAll && i < len(m.entries)-1 {
			b.WriteString(HelpStyle.Render(" ─ projects ─"))
			b.WriteString("\n")
		}
	}

	height := m.height - 4
	if height < 1 {
		height = 1
	}
	return SidebarStyle.Height(height).Render(b.String())
}

func (m Model) renderTaskList() string {
	if len(m.flat) == 0 {
		return TaskListStyle.Render(HelpStyle.Render("No tasks. Press 'a' to add one."))
	}

	var b strings.Builder
	idx := 0

	sections := []struct {
		title string
		color lipgloss.Color
		items []model.Item
	}{
		{"Overdue", OverdueColor, m.grouped.Overdue},
		{"Today", TodayColor, m.grouped.Today},
		{"Upcoming", UpcomingColor, m.grouped.Upcoming},
		{"No Date", NoDateColor, m.grouped.NoDate},
	}

	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		header := SectionHeaderStyle.Foreground(sec.color).Render(
			fmt.Sprintf("%s (%d)", sec.title, len(sec.items)))
		b.WriteString(header)
		b.WriteString("\n")

		for _, item := range sec.items {
			b.WriteString(m.renderTask(item, idx == m.taskCursor))
			b.WriteString("\n")
			idx++
		}
		b.WriteString("\n")
	}

	return TaskListStyle.Render(b.String())
}

func (m Model) renderTask(item model.Item, selected bool) string {
	check := "[ ]"
	if item.Completed() {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %s %s", check, AreaDot(item.Area), truncate(item.Title, 48))
	if item.DueDate != nil {
		line += HelpStyle.Render("  " + *item.DueDate)
	}

	style := TaskItemStyle
	if item.Completed() {
		style = TaskDoneStyle
	}
	if selected && m.pane == PaneTaskList {
		style = TaskItemSelectedStyle
		line = "> " + line
	}
	return style.Render(line)
}

func (m Model) renderStatusBar() string {
	if m.message != "" {
		return StatusBarStyle.Width(m.width).Render(m.message)
	}
	help := "a: add • x: done • d: delete • p: project • tab: pane • R: refresh • ?: help • q: quit"
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderModal() string {
	title := "New Task"
	if m.mode == ModeAddProject {
		title = "New Project"
	}
	if entry := m.currentEntry(); entry != nil && m.mode == ModeAddTask && entry.kind == viewProject {
		title = "New Task in " + entry.name
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("enter: save • esc: cancel"))

	modal := ModalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"↑/k, ↓/j", "move cursor"},
		{"tab, ←/h, →/l", "switch pane"},
		{"a", "add task to current view"},
		{"p", "new project"},
		{"x, enter", "toggle complete"},
		{"d", "delete task"},
		{"R", "refresh from server"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", r.key, r.desc))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ModalStyle.Render(b.String()))
}
