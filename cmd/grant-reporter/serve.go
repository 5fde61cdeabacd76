// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/grant-reporter/internal/mcpserver"
	"github.com/pdiddy/grant-reporter/internal/reporter"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the grant tools as an MCP server",
	Long: `Serve registers the four grant tools with a Model Context Protocol
server. By default it speaks MCP over stdin/stdout for a local client;
with --http it serves streamable HTTP on the configured address, with a
/health endpoint for deployment checks.

When server.auth_token_secret names a loaded secret, HTTP requests must
carry its value as a bearer token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		svc, closer, err := newService(cfg, logger, reporter.ZapProgress(logger.Named("pager")))
		if err != nil {
			return err
		}
		defer closer()

		var authToken string
		if cfg.Server.AuthTokenSecret != "" {
			authToken = loadedSecrets[cfg.Server.AuthTokenSecret]
		}

		srv := mcpserver.NewServer(svc, version, authToken, logger)

		if useHTTP, _ := cmd.Flags().GetBool("http"); useHTTP {
			return srv.ListenAndServe(cfg.Server.Addr)
		}
		return srv.ServeStdio()
	},
}

func init() {
	serveCmd.Flags().Bool("http", false, "serve streamable HTTP instead of stdio")

	rootCmd.AddCommand(serveCmd)
}
