package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  `Create, list, and archive projects for organizing tasks.`,
}

var projectNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new project",
	Long: `Create a new project.

Examples:
  para project new "Capstone" --area rose --emoji 🍳
  para project new "Job Search" --area professional`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectNew,
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all projects",
	RunE:    runProjectList,
}

var projectDeleteCmd = &cobra.Command{
	Use:     "delete [project]",
	Aliases: []string{"rm"},
	Short:   "Archive a project",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectDelete,
}

var (
	projectEmoji        string
	projectArea         string
	projectShowArchived bool
)

func init() {
	projectNewCmd.Flags().StringVarP(&projectEmoji, "emoji", "e", "", "Display glyph")
	projectNewCmd.Flags().StringVarP(&projectArea, "area", "a", "", "Area (tennis, rose, professional, personal)")
	projectListCmd.Flags().BoolVar(&projectShowArchived, "archived", false, "Include archived projects")

	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

func runProjectNew(cmd *cobra.Command, args []string) error {
	database, st, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	draft := model.ProjectDraft{Name: args[0]}
	if projectEmoji != "" {
		draft.Emoji = &projectEmoji
	}
	if projectArea != "" {
		area, err := model.ParseArea(projectArea)
		if err != nil {
			return err
		}
		draft.Area = &area
	}

	project, err := st.CreateProject(context.Background(), draft)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	fmt.Printf("✓ Created project \"%s\" (%s)\n", project.Name, shortID(project.ID))
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	database, st, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	projects, err := st.ListProjects(context.Background(), store.ProjectListOptions{
		IncludeArchived: projectShowArchived,
	})
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects. Create one with: para project new \"Name\"")
		return nil
	}

	fmt.Printf("\nProjects (%d)\n", len(projects))
	fmt.Println(strings.Repeat("─", 60))
	for _, p := range projects {
		emoji := "  "
		if p.Emoji != nil {
			emoji = *p.Emoji
		}
		area := ""
		if p.Area != nil {
			area = "@" + string(*p.Area)
		}
		status := ""
		if p.Archived() {
			status = "(archived)"
		}
		fmt.Printf("  %s %-8s  %-20s  %2d open  %-14s %s\n",
			emoji, shortID(p.ID), p.Name, p.ActiveTaskCount, area, status)
	}
	fmt.Println()
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	database, st, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	project, err := resolveProject(ctx, st, args[0])
	if err != nil {
		return err
	}

	if err := st.ArchiveProject(ctx, project.ID); err != nil {
		return fmt.Errorf("failed to archive project: %w", err)
	}

	fmt.Printf("🗑️  Archived project \"%s\" (tasks keep their reference)\n", project.Name)
	return nil
}
