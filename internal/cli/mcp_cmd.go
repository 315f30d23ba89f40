package cli

import (
	xpmcp "github.com/alexanderramin/xpcalc/internal/mcp"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculator as MCP tools over stdio",
		Long: `Serve the calculator as MCP tools over stdio.

Tools: calculate_xp, calculate_category_xp, level_table, rate_table.
Logs go to stderr and the configured log file; stdout carries only protocol
messages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := xpmcp.NewServer(app.Calc, app.Logger, app.Version)
			return server.Run(cmd.Context(), &sdk.StdioTransport{})
		},
	}
}
