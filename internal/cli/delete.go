package cli

import (
	"context"
	"fmt"

	"github.com/persimmonlabs/PARA-DAP/internal/config"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Archive a task",
	Long: `Archive a task by its ID. Archived tasks disappear from every
listing but are never physically removed.

Examples:
  para delete abc123
  para rm abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	database, st, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	task, err := resolveItem(ctx, st, args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if cfg.ConfirmDelete {
		fmt.Printf("About to archive: \"%s\" (ID: %s)\n", task.Title, task.ID)
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := st.ArchiveItem(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to archive task: %w", err)
	}

	fmt.Printf("🗑️  Archived: \"%s\"\n", task.Title)
	return nil
}
