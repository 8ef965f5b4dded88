package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/persimmonlabs/PARA-DAP/internal/model"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as done",
	Long: `Mark a task as completed, or reopen it.

Examples:
  para done abc123
  para done abc123 --undo`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

var doneUndo bool

func init() {
	doneCmd.Flags().BoolVar(&doneUndo, "undo", false, "Mark task as not done")
}

func runDone(cmd *cobra.Command, args []string) error {
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

	var patch model.ItemPatch
	if doneUndo {
		patch.CompletedAt = model.Null[string]()
	} else {
		patch.CompletedAt = model.Some(time.Now().Format(time.RFC3339))
	}

	if _, err := st.UpdateItem(ctx, task.ID, patch); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if doneUndo {
		fmt.Printf("○ Reopened: \"%s\"\n", task.Title)
	} else {
		fmt.Printf("✓ Completed: \"%s\"\n", task.Title)
	}
	return nil
}
