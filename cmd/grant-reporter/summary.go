// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grant-reporter/internal/queryfile"
	"github.com/pdiddy/grant-reporter/internal/reporter"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Complete summary of all grants matching search criteria",
	Long: `Summary pages through every matching project and prints exact statistics:
total count, per-dimension distributions, and award-amount aggregates.
Unlike search, no sampling is involved; large result sets take longer.

A query saved earlier with --save can be re-run with --from-file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		crit, err := criteriaFromFlags(cmd)
		if err != nil {
			return err
		}

		if fromFile, _ := cmd.Flags().GetString("from-file"); fromFile != "" {
			qf, err := queryfile.Read(fromFile)
			if err != nil {
				return err
			}
			crit, err = qf.Query.ToCriteria()
			if err != nil {
				return err
			}
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

		out, err := svc.SearchSummary(cmd.Context(), crit)
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
	addCriteriaFlags(summaryCmd)
	summaryCmd.Flags().String("save", "", "save the query and summary to a YAML file")
	summaryCmd.Flags().String("from-file", "", "load the query from a previously saved YAML file")

	rootCmd.AddCommand(summaryCmd)
}
