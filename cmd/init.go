package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the workout history schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Open already runs the schema migration.
		st, err := openStorage()
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
