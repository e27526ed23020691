package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/mcp"
)

// Version is set during build
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Falling back to default config", "error", err)
		cfg = config.Default()
	}

	closeLog, err := logger.Setup(cfg)
	if err != nil {
		logger.Warn("Failed to set up log file", "error", err)
	}
	defer closeLog()

	logger.Info("Starting MCP Go Calculator", "version", Version, "name", cfg.ServerName)

	calcServer := mcp.NewMCPCalculatorServer(cfg, Version)

	// Start the stdio server
	logger.Info("Starting MCP server...")
	if err := server.ServeStdio(calcServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		closeLog()
		os.Exit(1)
	}
}
