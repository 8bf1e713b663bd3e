package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rango/internal/calendar"
	"github.com/javiermolinar/rango/internal/pick"
	"github.com/javiermolinar/rango/internal/selection"
)

func (a *App) pickCmd() *cobra.Command {
	var (
		start string
		end   string
		note  string
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Save a date range without opening the picker",
		Long: `Save a date range directly from the command line.

The range is validated against the configured bounds and blocked days
exactly like an interactive selection. Omitting --end saves a
single-day pick.`,
		Example: `  rango pick --start=2026-08-24 --end=2026-08-28
  rango pick --start=2026-08-24 --note="conference"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			startDate, err := calendar.Parse(start)
			if err != nil {
				return fmt.Errorf("start date: %w", err)
			}

			r := selection.Open(startDate)
			if end != "" {
				endDate, err := calendar.Parse(end)
				if err != nil {
					return fmt.Errorf("end date: %w", err)
				}
				r = selection.Closed(startDate, endDate)
			}

			// Construction rejects out-of-bounds or inverted ranges.
			picker, err := pickerFromConfig(a.config, selection.WithInitialRange(r))
			if err != nil {
				return err
			}
			for _, d := range picker.Confirm() {
				if !picker.Selectable(d) {
					return fmt.Errorf("date %s is blocked by the configuration", d)
				}
			}

			p, err := pick.FromDates(picker.Confirm(), note)
			if err != nil {
				return err
			}
			if err := a.repo.SavePick(context.Background(), p); err != nil {
				return fmt.Errorf("saving pick: %w", err)
			}

			fmt.Printf("Saved pick #%d: %s .. %s (%s)\n",
				p.ID, p.Start, p.End, FormatDays(p.Days()))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note stored with the pick")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}
