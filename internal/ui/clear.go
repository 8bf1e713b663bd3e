package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) clearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear [pick-id]",
		Short: "Delete saved picks",
		Long: `Delete a single pick by its ID, or the whole history when no
ID is given.

Example:
  rango clear 42
  rango clear --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid pick ID: %w", err)
				}
				if err := a.repo.DeletePick(ctx, id); err != nil {
					return fmt.Errorf("deleting pick: %w", err)
				}
				fmt.Printf("Deleted pick #%d\n", id)
				return nil
			}

			if !force && !promptYesNo("Delete the entire pick history?") {
				fmt.Println("Aborted.")
				return nil
			}

			n, err := a.repo.ClearPicks(ctx)
			if err != nil {
				return fmt.Errorf("clearing picks: %w", err)
			}
			fmt.Printf("Deleted %d picks\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
