// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/grant-reporter/internal/reporter"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Fetch chosen metadata fields for explicit project numbers",
	Long: `Project looks up the given project numbers and prints the requested
fields, e.g.:

  grant-reporter project --ids 7R01DA034777-04 --include ProjectNum,AwardAmount`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, _ := cmd.Flags().GetStringSlice("ids")
		fields, _ := cmd.Flags().GetStringSlice("include")

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

		set, err := svc.ProjectInformation(cmd.Context(), ids, fields)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), set)
	},
}

func init() {
	projectCmd.Flags().StringSlice("ids", nil, "project numbers to look up")
	projectCmd.Flags().StringSlice("include", nil, "field names to return (e.g. ProjectNum, AwardAmount)")
	projectCmd.MarkFlagRequired("ids")
	projectCmd.MarkFlagRequired("include")

	rootCmd.AddCommand(projectCmd)
}
