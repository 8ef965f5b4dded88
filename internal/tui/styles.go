package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

// Color palette
var (
	// Area colors
	AreaTennisColor       = lipgloss.Color("#95E1A3") // Green
	AreaRoseColor         = lipgloss.Color("#FF6B6B") // Red
	AreaProfessionalColor = lipgloss.Color("#4ECDC4") // Teal
	AreaPersonalColor     = lipgloss.Color("#C792EA") // Purple

	// Bucket colors
	OverdueColor  = lipgloss.Color("#FF6B6B")
	TodayColor    = lipgloss.Color("#FFE66D")
	UpcomingColor = lipgloss.Color("#4ECDC4")
	NoDateColor   = lipgloss.Color("#6C757D")

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	SidebarStyle = lipgloss.NewStyle().
			Width(24).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(Border).
			Padding(1, 1)

	TaskListStyle = lipgloss.NewStyle().
			Padding(1, 2)

	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarItemSelectedStyle = lipgloss.NewStyle().
					Padding(0, 1).
					Background(Surface).
					Bold(true)

	TaskItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TaskItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Strikethrough(true).
			Padding(0, 1)

	SectionHeaderStyle = lipgloss.NewStyle().Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// AreaColor returns the display color for an area.
func AreaColor(a model.Area) lipgloss.Color {
	switch a {
	case model.AreaTennis:
		return AreaTennisColor
	case model.AreaRose:
		return AreaRoseColor
	case model.AreaProfessional:
		return AreaProfessionalColor
	default:
		return AreaPersonalColor
	}
}

// AreaDot renders the colored dot marking an item's area.
func AreaDot(a *model.Area) string {
	if a == nil {
		return " "
	}
	return lipgloss.NewStyle().Foreground(AreaColor(*a)).Render("●")
}
