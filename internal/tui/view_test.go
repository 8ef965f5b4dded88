package tui

import (
	"strings"
	"testing"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

func TestRenderSidebarProjectEmoji(t *testing.T) {
	emoji := "🎾"
	m := Model{
		height: 20,
		entries: []sidebarEntry{
			{kind: viewInbox, name: "Inbox"},
			{kind: viewToday, name: "Today"},
			{kind: viewAll, name: "All Tasks"},
			{kind: viewProject, name: "Tennis", project: model.Project{
				ID: "p1", Name: "Tennis", Emoji: &emoji, ActiveTaskCount: 3,
			}},
			{kind: viewProject, name: "Plain", project: model.Project{
				ID: "p2", Name: "Plain",
			}},
		},
	}

	out := m.renderSidebar()

	if !strings.Contains(out, "🎾") {
		t.Error("sidebar missing the project's own emoji")
	}
	if !strings.Contains(out, "📁") {
		t.Error("sidebar missing the fallback glyph for a project without emoji")
	}
	if !strings.Contains(out, "(3)") {
		t.Error("sidebar missing the active task count")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q", got)
	}
	if got := truncate("a very long task title", 10); got != "a very ..." {
		t.Errorf("truncate long = %q, want 10 chars with ellipsis", got)
	}
}
