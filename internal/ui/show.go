package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [pick-id]",
		Short: "Show a saved pick",
		Long: `Display a single saved pick with its full note.

Example:
  rango show 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pick ID: %w", err)
			}

			p, err := a.repo.GetPick(context.Background(), id)
			if err != nil {
				return fmt.Errorf("fetching pick: %w", err)
			}
			if p == nil {
				return fmt.Errorf("pick #%d not found", id)
			}

			fmt.Printf("%s #%d\n", formatHeader("Pick"), p.ID)
			if p.IsSingleDay() {
				fmt.Printf("  Date:    %s\n", formatRange(p.Start.String()))
			} else {
				fmt.Printf("  Range:   %s\n", formatRange(fmt.Sprintf("%s .. %s", p.Start, p.End)))
			}
			fmt.Printf("  Length:  %s\n", formatStats(FormatDays(p.Days())))
			if p.Note != "" {
				fmt.Printf("  Note:    %s\n", p.Note)
			}
			fmt.Printf("  Saved:   %s\n", formatMuted(p.CreatedAt.Local().Format(time.RFC1123)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
