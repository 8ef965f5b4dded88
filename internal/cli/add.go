package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task, optionally assigned to a project or area.

Examples:
  para add "Buy groceries"
  para add "Restring racket" --area tennis --due 2026-09-05
  para add "Memo" --project CompArch --notes "one page"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addProject string
	addArea    string
	addDue     string
	addNotes   string
)

func init() {
	addCmd.Flags().StringVarP(&addProject, "project", "P", "", "Project to add the task to (name or id)")
	addCmd.Flags().StringVarP(&addArea, "area", "a", "", "Area (tennis, rose, professional, personal)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Free-form notes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	database, st, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	draft := model.ItemDraft{Title: strings.Join(args, " ")}

	if addProject != "" {
		project, err := resolveProject(ctx, st, addProject)
		if err != nil {
			return err
		}
		draft.ProjectID = &project.ID
	}
	if addArea != "" {
		area, err := model.ParseArea(addArea)
		if err != nil {
			return err
		}
		draft.Area = &area
	}
	if addDue != "" {
		draft.DueDate = &addDue
	}
	if addNotes != "" {
		draft.Notes = &addNotes
	}

	item, err := st.CreateItem(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	where := "inbox"
	if item.ProjectID != nil {
		project, err := st.GetProject(ctx, *item.ProjectID)
		if err == nil {
			where = project.Name
		}
	} else if item.Area != nil {
		where = string(*item.Area)
	}

	fmt.Printf("✓ Added to [%s]: \"%s\" (%s)\n", where, item.Title, shortID(item.ID))
	return nil
}
