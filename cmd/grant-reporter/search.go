// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grant-reporter/internal/queryfile"
	"github.com/pdiddy/grant-reporter/internal/reporter"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Quick preview of grants matching search criteria",
	Long: `Search issues a single bounded query (first 500 results) and prints the
total match count plus distributions by year, institute, activity code,
organization, funding mechanism, and active status, with award-amount
statistics sampled from the first page.`,
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

		out, err := svc.SearchProjects(cmd.Context(), crit)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetString("save"); save != "" {
			if err := queryfile.Write(save, crit, out); err != nil {
				return err
			}
		}

		return writeJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	addCriteriaFlags(searchCmd)
	searchCmd.Flags().String("save", "", "save the query and summary to a YAML file")

	rootCmd.AddCommand(searchCmd)
}
