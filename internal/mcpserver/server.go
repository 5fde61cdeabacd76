// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the grant search tools over the Model
// Context Protocol, on stdio for local clients and streamable HTTP for
// hosted deployments.
package mcpserver

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	srv "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/pdiddy/grant-reporter/internal/tools"
)

const serverName = "grant-reporter"

// Server wraps the MCP server state for both transports.
type Server struct {
	mcpServer *srv.MCPServer
	handler   http.Handler
	logger    *zap.Logger
}

// NewServer constructs the MCP server and registers the four grant
// tools and the workflow prompt. A non-empty authToken guards the HTTP
// transport with bearer authentication; stdio is never guarded.
func NewServer(svc *tools.Service, version, authToken string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := srv.NewMCPServer(
		serverName,
		version,
		srv.WithToolCapabilities(true),
		srv.WithPromptCapabilities(true),
		srv.WithInstructions("Search NIH RePORTER grant metadata: preview with search_projects, "+
			"get exact statistics with get_search_summary, list project numbers with find_project_ids, "+
			"and fetch per-project details with get_project_information."),
		srv.WithRecovery(),
		srv.WithHooks(newHooks(logger.Named("mcp_hooks"))),
	)

	for _, t := range []interface {
		Definition() mcp.Tool
		Handle(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	}{
		tools.NewSearchProjectsTool(svc),
		tools.NewSearchSummaryTool(svc),
		tools.NewFindProjectIDsTool(svc),
		tools.NewProjectInformationTool(svc),
	} {
		mcpServer.AddTool(t.Definition(), t.Handle)
	}

	registerPrompts(mcpServer)

	streamable := srv.NewStreamableHTTPServer(mcpServer)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.Handle("/", guard(streamable, authToken, logger))

	return &Server{
		mcpServer: mcpServer,
		handler:   mux,
		logger:    logger.Named("mcp"),
	}
}

// Handler returns the HTTP handler serving MCP traffic and the health
// check.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServeStdio runs the server on stdin/stdout until the client
// disconnects. Used when a local MCP client launches the binary.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP on stdio")
	return srv.ServeStdio(s.mcpServer)
}

// ListenAndServe runs the HTTP transport on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("serving MCP over HTTP", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.handler)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": serverName,
	})
}

// guard enforces bearer authentication when a token is configured.
func guard(next http.Handler, authToken string, logger *zap.Logger) http.Handler {
	if authToken == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(authToken)) != 1 {
			logger.Warn("rejected unauthenticated request", zap.String("remote_addr", r.RemoteAddr))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// newHooks logs request lifecycle events.
func newHooks(logger *zap.Logger) *srv.Hooks {
	hooks := &srv.Hooks{}

	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcp.MCPMethod, message any) {
		logger.Debug("mcp request received",
			zap.Any("request_id", id),
			zap.String("method", string(method)))
	})

	hooks.AddOnSuccess(func(ctx context.Context, id any, method mcp.MCPMethod, message any, result any) {
		logger.Info("mcp request succeeded",
			zap.Any("request_id", id),
			zap.String("method", string(method)))
	})

	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.Error("mcp request failed",
			zap.Any("request_id", id),
			zap.String("method", string(method)),
			zap.Error(err))
	})

	return hooks
}
