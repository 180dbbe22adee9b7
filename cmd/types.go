package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ftracker/internal/training"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List known workout codes and their parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cyan := color.New(color.FgCyan).SprintFunc()
		for _, code := range training.WorkoutTypes() {
			params, _ := training.Params(code)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", cyan(code), strings.Join(params, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
