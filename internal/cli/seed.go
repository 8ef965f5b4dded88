package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with the sample PARA data set",
	RunE:  runSeed,
}

type seedProject struct {
	name  string
	emoji string
	area  model.Area
}

type seedItem struct {
	title   string
	project string
	area    model.Area
	due     string // weekday name resolved to the next such date, or empty
}

var seedProjects = []seedProject{
	{"PLC", "📘", model.AreaRose},
	{"CompArch", "🖥️", model.AreaRose},
	{"Capstone", "🍳", model.AreaRose},
	{"IMENSIAH", "🚀", model.AreaProfessional},
	{"Alpha Grit", "📚", model.AreaProfessional},
	{"Job Search", "💼", model.AreaProfessional},
	{"Tennis", "🎾", model.AreaTennis},
	{"Winter Arc", "❄️", model.AreaPersonal},
}

var seedItems = []seedItem{
	{"A7a, A7b", "PLC", model.AreaRose, "monday"},
	{"Exam 1", "PLC", model.AreaRose, "tuesday"},
	{"Review HW1", "CompArch", model.AreaRose, ""},
	{"Complete HW2", "CompArch", model.AreaRose, "tuesday"},
	{"Memo", "CompArch", model.AreaRose, "thursday"},
	{"Topic", "CompArch", model.AreaRose, "friday"},
	{"BL Grooming", "Capstone", model.AreaRose, "tuesday"},
	{"Siri Code Demo", "Capstone", model.AreaRose, "wednesday"},
	{"Week 3 Comp", "Capstone", model.AreaRose, "sunday"},
	{"Week 4 Planning", "Capstone", model.AreaRose, "sunday"},
	{"Landing page copy", "IMENSIAH", model.AreaProfessional, "wednesday"},
	{"Investor update", "IMENSIAH", model.AreaProfessional, "friday"},
	{"Chapter outline", "Alpha Grit", model.AreaProfessional, ""},
	{"Apply to 3 roles", "Job Search", model.AreaProfessional, "friday"},
	{"Restring racket", "Tennis", model.AreaTennis, ""},
	{"Saturday match", "Tennis", model.AreaTennis, "saturday"},
	{"Morning run", "Winter Arc", model.AreaPersonal, "monday"},
	{"Read 20 pages", "Winter Arc", model.AreaPersonal, ""},
}

func runSeed(cmd *cobra.Command, args []string) error {
	database, st, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()

	fmt.Println("Seeding projects...")
	projectIDs := make(map[string]string, len(seedProjects))
	for _, p := range seedProjects {
		emoji, area := p.emoji, p.area
		created, err := st.CreateProject(ctx, model.ProjectDraft{
			Name:  p.name,
			Emoji: &emoji,
			Area:  &area,
		})
		if err != nil {
			return fmt.Errorf("failed to seed project %q: %w", p.name, err)
		}
		projectIDs[p.name] = created.ID
		fmt.Printf("  ✓ %s %s\n", p.emoji, p.name)
	}

	fmt.Println("Seeding items...")
	for _, it := range seedItems {
		area := it.area
		draft := model.ItemDraft{Title: it.title, Area: &area}
		if id, ok := projectIDs[it.project]; ok {
			draft.ProjectID = &id
		}
		if it.due != "" {
			due := nextWeekday(it.due)
			draft.DueDate = &due
		}
		if _, err := st.CreateItem(ctx, draft); err != nil {
			return fmt.Errorf("failed to seed item %q: %w", it.title, err)
		}
		fmt.Printf("  ✓ %s\n", it.title)
	}

	fmt.Printf("Seeded %d projects and %d items.\n", len(seedProjects), len(seedItems))
	return nil
}

// nextWeekday resolves a weekday name to the next occurrence of that day,
// always in the future (today rolls over to next week), as YYYY-MM-DD.
func nextWeekday(day string) string {
	days := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	target, ok := days[strings.ToLower(day)]
	if !ok {
		return day // assume it is already a date string
	}

	now := time.Now()
	diff := int(target) - int(now.Weekday())
	if diff <= 0 {
		diff += 7
	}
	return now.AddDate(0, 0, diff).Format(model.DateFormat)
}
