// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grant-reporter/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent tool invocations",
	Long: `History lists recent tool invocations from the local invocation log.
The log is enabled by setting history.path in the configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if cfg.History.Path == "" {
			return fmt.Errorf("no invocation log configured: set history.path")
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		n, _ := cmd.Flags().GetInt("limit")
		if n <= 0 {
			n = cfg.History.MaxEntries
		}

		entries, err := store.Recent(cmd.Context(), n)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No invocations recorded.")
			return nil
		}

		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s  total=%-8d  %.2fs  %s\n",
				e.Timestamp.Format("2006-01-02 15:04:05"), e.Tool, e.Total, e.Seconds, e.Criteria)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "number of entries to list (default 20)")

	rootCmd.AddCommand(historyCmd)
}
