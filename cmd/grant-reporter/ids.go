// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grant-reporter/internal/reporter"
)

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List project numbers matching search criteria",
	Long: `Ids issues a single bounded query and prints up to 500 matching project
numbers with overview distributions. When has_more_results is true, add
filters to narrow the search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		crit, err := criteriaFromFlags(cmd)
		if err != nil {
			return err
		}

		cfg := loadConfig(cmd)
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		svc, closer, err := newService(cfg, logger, reporter.WriterProgress(os.Stderr))
		if err != nil {
			return err
		}
		defer closer()

		out, err := svc.FindProjectIDs(cmd.Context(), crit)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	addCriteriaFlags(idsCmd)

	rootCmd.AddCommand(idsCmd)
}
