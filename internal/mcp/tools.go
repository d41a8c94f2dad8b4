package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mitsuba/clubport/internal/app"
	"github.com/mitsuba/clubport/internal/domain"
	"github.com/mitsuba/clubport/internal/port"
)

func registerTools(s *server.MCPServer, c *app.Container) {
	s.AddTool(mcp.NewTool("clubport_delivery_status",
		mcp.WithDescription("Resolve the current delivery mode (broadcast/multicast/skip) and where each setting came from."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := c.SvcNotifier.DeliveryStatus(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(resp), nil
	})

	s.AddTool(mcp.NewTool("clubport_send_test",
		mcp.WithDescription("Run a test notification through the full dispatch pipeline."),
		mcp.WithString("category", mcp.Description("Category tag: report | request | notice | eventlog. Defaults to notice.")),
		mcp.WithString("title", mcp.Description("Test message title.")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		category := strings.TrimSpace(argString(args, "category"))
		if category == "" {
			category = domain.CategoryNotice
		}
		req := port.DispatchNotificationRequest{
			Title:      argString(args, "title"),
			Body:       "Test notification issued from the operator console.",
			Category:   category,
			AuthorName: "clubport-admin",
		}
		resp, err := c.SvcNotifier.DispatchNotification(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(map[string]any{
			"success":    resp.Success,
			"statusCode": resp.StatusCode,
			"mode":       resp.Mode,
			"deliveryId": resp.DeliveryID,
			"message":    resp.Message,
			"error":      resp.Error,
		}), nil
	})

	s.AddTool(mcp.NewTool("clubport_health",
		mcp.WithDescription("Service version and configured integrations."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]any{
			"status":              "ok",
			"version":             app.Version,
			"settings_store":      c.DB != nil,
			"push_credential_set": c.Config.LineChannelToken != "",
		}), nil
	})
}

func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
