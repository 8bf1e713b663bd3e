package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	var (
		limit   int
		all     bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved picks",
		Long: `List saved picks, newest first.

Shows the most recent picks by default; use --all for the full
history.`,
		Example: `  rango list
  rango list --limit=25
  rango list --all`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if all {
				limit = 0
			}
			picks, err := a.repo.ListPicks(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("listing picks: %w", err)
			}

			if len(picks) == 0 {
				fmt.Println("No picks saved yet.")
				return nil
			}

			noteWidth := maxNoteWidth()
			for _, p := range picks {
				printPickRow(p, noteWidth)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of picks to show")
	cmd.Flags().BoolVar(&all, "all", false, "Show the full history")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}
