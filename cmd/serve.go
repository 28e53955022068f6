package cmd

import (
	"log/slog"

	"github.com/mj1618/winfind/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the window locator",
	Long: `Start a Model Context Protocol (MCP) server that exposes the window locator
as tools. The target window set through set_target is kept for the whole
session, so later list_windows calls can rank against it.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  winfind serve
  winfind serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", server.TransportStdio, "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	srv := server.New(s.provider, settings.MaxOwnerDepth, slog.Default())
	return srv.Serve(transport, port)
}
