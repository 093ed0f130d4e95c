package cmd

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/abhisek/tutord/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: "Serve exposes the tutoring engine as MCP tools on stdin/stdout so an " +
		"LLM client can drive sessions, record attempts, and ask for assessments.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		srv := mcp.NewServer(svc, version)
		return srv.Run(cmd.Context(), &sdkmcp.StdioTransport{})
	},
}
