package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hmiq/internal/adapters/catalogfile"
	mcpadapter "hmiq/internal/adapters/mcp"
	"hmiq/internal/config"
	"hmiq/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("hmiq-mcp: %v", err)
	}

	catalogFlag := flag.String("catalog", cfg.Catalog.Path, "path to a catalog YAML file (default: bundled catalog)")
	flag.Parse()

	// stdout carries the protocol, so logs go to stderr
	logger := logging.New(cfg.Log, os.Stderr)

	repo, err := catalogfile.Load(*catalogFlag, logger)
	if err != nil {
		log.Fatalf("hmiq-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"hmiq-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo)

	logger.Info("serving MCP over stdio", "catalog", repo.Source())
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("hmiq-mcp: %v", err)
	}
}
