// Package server exposes the window locator as MCP tools so agents driving
// a UI test can list, rank and pick windows without spawning the CLI.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/winfind/internal/locator"
	"github.com/mj1618/winfind/internal/platform"
	"github.com/mj1618/winfind/internal/version"
)

// Transports accepted by Serve.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

// Server holds one locator for the lifetime of the MCP session, so a target
// set by one tool call is seen by the next.
type Server struct {
	provider *platform.Provider
	log      *slog.Logger

	mu      sync.Mutex
	locator *locator.Locator

	mcp *mcpserver.MCPServer
}

// New creates a server over provider with all tools registered.
func New(provider *platform.Provider, maxOwnerDepth int, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	l := locator.New(provider.Toolkit)
	if maxOwnerDepth > 0 {
		l.MaxOwnerDepth = maxOwnerDepth
	}
	s := &Server{
		provider: provider,
		log:      log.With("component", "mcp"),
		locator:  l,
		mcp:      mcpserver.NewMCPServer("winfind", version.Version),
	}
	s.registerTools()
	return s
}

// Serve blocks serving MCP requests on the given transport.
func (s *Server) Serve(transport string, port int) error {
	s.log.Info("serving", "transport", transport, "port", port)
	switch transport {
	case TransportStdio:
		return mcpserver.ServeStdio(s.mcp)
	case TransportHTTP:
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *Server) registerTools() {
	// list_windows
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List open windows, newest first. With ordered, rank them by proximity to the target window: the target, then windows that own it, then the rest."),
			mcp.WithBoolean("ordered", mcp.Description("Rank by proximity to the target window")),
		),
		s.handleListWindows,
	)

	// get_window
	s.mcp.AddTool(
		mcp.NewTool("get_window",
			mcp.WithDescription("Pick one window by list index, full-match title regex, or the scene it hosts"),
			mcp.WithNumber("index", mcp.Description("Position in the newest-first list")),
			mcp.WithString("title", mcp.Description("Regular expression that must match the whole title")),
			mcp.WithNumber("scene", mcp.Description("Scene ID; returns the window hosting it")),
		),
		s.handleGetWindow,
	)

	// set_target
	s.mcp.AddTool(
		mcp.NewTool("set_target",
			mcp.WithDescription("Remember a window as the target for proximity ordering"),
			mcp.WithNumber("id", mcp.Description("System window ID")),
			mcp.WithNumber("index", mcp.Description("Position in the newest-first list")),
			mcp.WithString("title", mcp.Description("Regular expression that must match the whole title")),
			mcp.WithBoolean("clear", mcp.Description("Unset the target")),
		),
		s.handleSetTarget,
	)

	// get_target
	s.mcp.AddTool(
		mcp.NewTool("get_target",
			mcp.WithDescription("Show the current target window, if any"),
		),
		s.handleGetTarget,
	)

	// focus_window
	s.mcp.AddTool(
		mcp.NewTool("focus_window",
			mcp.WithDescription("Raise and focus a window picked by index or title"),
			mcp.WithNumber("index", mcp.Description("Position in the newest-first list")),
			mcp.WithString("title", mcp.Description("Regular expression that must match the whole title")),
		),
		s.handleFocusWindow,
	)
}
