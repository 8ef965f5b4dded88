// Package view derives render-ready groupings from the task mirror. The
// functions here are pure; they never touch the store or the network.
package view

import (
	"sort"
	"time"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

// Grouped partitions items into the four date buckets the task list renders.
type Grouped struct {
	Overdue  []model.Item
	Today    []model.Item
	Upcoming []model.Item
	NoDate   []model.Item
}

// GroupByDate partitions items by due date relative to the current local
// calendar day.
func GroupByDate(items []model.Item) Grouped {
	return GroupOn(items, time.Now())
}

// GroupOn partitions items by due date relative to the given instant's
// calendar day. Comparison is on YYYY-MM-DD strings, so an item due today
// is never misclassified as overdue by time of day or timezone. Dated
// buckets are sorted ascending by due date; NoDate keeps input order.
func GroupOn(items []model.Item, now time.Time) Grouped {
	today := now.Format(model.DateFormat)

	var g Grouped
	for _, item := range items {
		switch {
		case item.DueDate == nil:
			g.NoDate = append(g.NoDate, item)
		case *item.DueDate < today:
			g.Overdue = append(g.Overdue, item)
		case *item.DueDate == today:
			g.Today = append(g.Today, item)
		default:
			g.Upcoming = append(g.Upcoming, item)
		}
	}

	SortByDueDate(g.Overdue)
	SortByDueDate(g.Today)
	SortByDueDate(g.Upcoming)
	return g
}

// SortByDueDate orders items ascending by due date in place. Items without
// a due date sort after items with one.
func SortByDueDate(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].DueDate, items[j].DueDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})
}
