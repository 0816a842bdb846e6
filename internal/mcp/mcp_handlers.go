package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/farmtech/memscope/core"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct{}

func (h *toolHandler) handleScoreFirmware(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("file_path", "")
	if path == "" {
		return mcp.NewToolResultError("file_path is required"), nil
	}

	report, err := core.GetScoreReport(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareFirmware(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	originalPath := request.GetString("original_path", "")
	optimizedPath := request.GetString("optimized_path", "")
	if originalPath == "" || optimizedPath == "" {
		return mcp.NewToolResultError("original_path and optimized_path are required"), nil
	}

	report, err := core.GetComparisonReport(originalPath, optimizedPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
