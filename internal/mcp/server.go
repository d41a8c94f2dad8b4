package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mitsuba/clubport/internal/app"
)

// Run serves the operator tools over stdio. The MCP surface is read-mostly:
// it can inspect delivery configuration and fire a test notification, but
// it cannot mutate settings.
func Run(c *app.Container) error {
	s := server.NewMCPServer(
		"Clubport MCP Server",
		app.Version,
		server.WithLogging(),
	)

	registerTools(s, c)

	return server.ServeStdio(s)
}
