package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
	"github.com/persimmonlabs/PARA-DAP/internal/view"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List open tasks",
	Long: `List open tasks grouped by due date, optionally filtered.

Examples:
  para list
  para list --today
  para list --inbox
  para list --project Capstone --overdue`,
	RunE: runList,
}

var (
	listProject string
	listArea    string
	listInbox   bool
	listToday   bool
	listOverdue bool
)

func init() {
	listCmd.Flags().StringVarP(&listProject, "project", "P", "", "Filter by project (name or id)")
	listCmd.Flags().StringVarP(&listArea, "area", "a", "", "Filter by area")
	listCmd.Flags().BoolVar(&listInbox, "inbox", false, "Only items with neither project nor area")
	listCmd.Flags().BoolVar(&listToday, "today", false, "Only items due today")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "Only items past their due date")
}

func runList(cmd *cobra.Command, args []string) error {
	database, st, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	filter := store.ItemFilter{
		Area:    listArea,
		Inbox:   listInbox,
		Today:   listToday,
		Overdue: listOverdue,
	}

	if listProject != "" {
		project, err := resolveProject(ctx, st, listProject)
		if err != nil {
			return err
		}
		filter.ProjectID = project.ID
	}

	items, err := st.ListItems(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("No tasks found. Add one with: para add \"Your task\"")
		return nil
	}

	grouped := view.GroupByDate(items)
	printSection("Overdue", grouped.Overdue)
	printSection("Today", grouped.Today)
	printSection("Upcoming", grouped.Upcoming)
	printSection("No Date", grouped.NoDate)
	return nil
}

func printSection(title string, items []model.Item) {
	if len(items) == 0 {
		return
	}

	fmt.Printf("\n%s (%d)\n", title, len(items))
	fmt.Println(strings.Repeat("─", 60))
	for _, item := range items {
		printItem(item)
	}
}

func printItem(item model.Item) {
	due := ""
	if item.DueDate != nil {
		due = *item.DueDate
	}

	tag := ""
	if item.Area != nil {
		tag = "@" + string(*item.Area)
	}

	title := item.Title
	if len(title) > 40 {
		title = title[:37] + "..."
	}

	fmt.Printf("  [ ]  %-8s  %-40s  %-10s  %s\n", shortID(item.ID), title, due, tag)
}
