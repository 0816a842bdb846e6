// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Memscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"Memscope Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{}

	// --- 1. Tool: score_firmware ---
	s.AddTool(mcp.NewTool("score_firmware",
		mcp.WithDescription("Score a firmware source file against the memory optimization rubric (0-100)."),
		mcp.WithString("file_path", mcp.Description("Path to the firmware source file to score."), mcp.Required()),
	), h.handleScoreFirmware)

	// --- 2. Tool: compare_firmware ---
	s.AddTool(mcp.NewTool("compare_firmware",
		mcp.WithDescription("Compare the estimated memory footprint of an original firmware source against an optimized version."),
		mcp.WithString("original_path", mcp.Description("Path to the original firmware source file."), mcp.Required()),
		mcp.WithString("optimized_path", mcp.Description("Path to the optimized firmware source file."), mcp.Required()),
	), h.handleCompareFirmware)

	return s
}

// StartMCPServer starts the Memscope MCP server.
func StartMCPServer(_ context.Context) error {
	s := NewMCPServer()
	return server.ServeStdio(s)
}
