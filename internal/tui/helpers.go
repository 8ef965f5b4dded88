package tui

import (
	"time"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

// today returns the current local calendar day as YYYY-MM-DD.
func today() string {
	return time.Now().Format(model.DateFormat)
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
