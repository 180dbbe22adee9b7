package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ftracker/internal/models"
	"github.com/misterclayt0n/ftracker/internal/training"
	"github.com/spf13/cobra"
)

var (
	filterType   string
	historyLimit int
)

// historyCmd shows stored workouts, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display stored workout summaries, optionally filtered by type",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		workouts, err := st.ListWorkouts(resolveTypeFilter(filterType), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		printHistory(cmd.OutOrStdout(), workouts)
		return nil
	},
}

// resolveTypeFilter maps a workout code such as RUN to its stored label.
// Anything else is used as given.
func resolveTypeFilter(filter string) string {
	if name, ok := training.TypeName(strings.ToUpper(filter)); ok {
		return name
	}
	return filter
}

func printHistory(w io.Writer, workouts []models.Workout) {
	if len(workouts) == 0 {
		fmt.Fprintln(w, "No workouts stored yet")
		return
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	for _, wk := range workouts {
		msg := training.InfoMessage{
			TrainingType: wk.WorkoutType,
			Duration:     wk.Duration,
			Distance:     wk.Distance,
			Speed:        wk.Speed,
			Calories:     wk.Calories,
		}
		fmt.Fprintf(w, "%s %s\n", yellow(wk.CreatedAt.Format("2006-01-02 15:04")), msg.Message())
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterType, "type", "t", "", "Filter by workout code or type, e.g. RUN or Running (case insensitive)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show at most n workouts")
}
