package cmd

import (
	"github.com/spf13/cobra"

	"github.com/farmtech/memscope/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Memscope MCP server",
	Long:  `Launch an MCP server that allows AI agents to score and compare firmware sources via standard tools.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		// No header logs in MCP mode to avoid polluting stdio
		// which is used for the protocol.
		return mcp.StartMCPServer(rootCtx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
