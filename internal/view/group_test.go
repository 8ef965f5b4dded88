package view

import (
	"testing"
	"time"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
)

func due(title, date string) model.Item {
	return model.Item{ID: title, Title: title, DueDate: &date}
}

func undated(title string) model.Item {
	return model.Item{ID: title, Title: title}
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGroupOnPartitions(t *testing.T) {
	now := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)

	g := GroupOn([]model.Item{
		due("late", "2024-06-08"),
		due("later", "2024-06-20"),
		undated("someday"),
		due("today", "2024-06-10"),
		due("yesterday", "2024-06-09"),
		due("tomorrow", "2024-06-11"),
		undated("whenever"),
	}, now)

	if got := ids(g.Overdue); !equal(got, []string{"late", "yesterday"}) {
		t.Errorf("Overdue = %v, want sorted ascending [late yesterday]", got)
	}
	if got := ids(g.Today); !equal(got, []string{"today"}) {
		t.Errorf("Today = %v, want [today]", got)
	}
	if got := ids(g.Upcoming); !equal(got, []string{"tomorrow", "later"}) {
		t.Errorf("Upcoming = %v, want sorted ascending [tomorrow later]", got)
	}
	if got := ids(g.NoDate); !equal(got, []string{"someday", "whenever"}) {
		t.Errorf("NoDate = %v, want input order preserved", got)
	}
}

func TestGroupOnTodayIsNeverOverdue(t *testing.T) {
	// Late in the evening an item due today still belongs to Today
	now := time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC)
	g := GroupOn([]model.Item{due("deadline", "2024-06-10")}, now)

	if len(g.Overdue) != 0 {
		t.Error("item due today classified as overdue")
	}
	if len(g.Today) != 1 {
		t.Error("item due today missing from Today")
	}
}

func TestGroupOnEmpty(t *testing.T) {
	g := GroupOn(nil, time.Now())
	if len(g.Overdue)+len(g.Today)+len(g.Upcoming)+len(g.NoDate) != 0 {
		t.Error("empty input produced non-empty buckets")
	}
}

func TestSortByDueDate(t *testing.T) {
	items := []model.Item{
		undated("b-none"),
		due("late", "2024-07-01"),
		undated("a-none"),
		due("early", "2024-01-01"),
		due("mid", "2024-03-15"),
	}

	SortByDueDate(items)

	want := []string{"early", "mid", "late", "b-none", "a-none"}
	if got := ids(items); !equal(got, want) {
		t.Errorf("sorted = %v, want %v (undated last, stable)", got, want)
	}
}
