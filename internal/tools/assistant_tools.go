package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/voicecal/voicecal/internal/server"
)

// RegisterAssistantTools registers the calendar intent tools with the MCP server
func RegisterAssistantTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Query tool (read-only, always available)
	queryTool := mcp.NewTool("calendar_query_events",
		mcp.WithDescription("List the calendar events of a day described in natural language ('today', 'tomorrow', 'next Friday')"),
		mcp.WithString("dateText",
			mcp.Required(),
			mcp.Description("Natural-language description of the day to query"),
		),
	)

	s.AddTool(queryTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleQueryEvents(ctx, request, sc)
	})

	// Write tools are only registered when write operations are enabled
	if !readOnly {
		createTool := mcp.NewTool("calendar_create_event",
			mcp.WithDescription("Create a calendar event from a natural-language sentence, e.g. 'lunch with Sam tomorrow at noon'"),
			mcp.WithString("eventText",
				mcp.Required(),
				mcp.Description("Natural-language description of the event including its date or time"),
			),
		)

		s.AddTool(createTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		})

		deleteTool := mcp.NewTool("calendar_delete_event",
			mcp.WithDescription("Delete the calendar event best matching a natural-language sentence, e.g. 'cancel my dentist appointment'"),
			mcp.WithString("eventText",
				mcp.Required(),
				mcp.Description("Natural-language description of the event to remove, optionally naming the day"),
			),
		)

		s.AddTool(deleteTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteEvent(ctx, request, sc)
		})
	}

	return nil
}

// textArg extracts a required string argument from the request
func textArg(request mcp.CallToolRequest, name string) (string, error) {
	args := request.GetArguments()
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	eventText, err := textArg(request, "eventText")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome := sc.Assistant().Create(ctx, eventText)
	if outcome.Err != nil {
		return mcp.NewToolResultError(outcome.Spoken), nil
	}
	return mcp.NewToolResultText(outcome.Spoken), nil
}

func handleQueryEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	dateText, err := textArg(request, "dateText")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome := sc.Assistant().Query(ctx, dateText)
	if outcome.Err != nil {
		return mcp.NewToolResultError(outcome.Spoken), nil
	}
	return mcp.NewToolResultText(outcome.Spoken), nil
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	eventText, err := textArg(request, "eventText")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome := sc.Assistant().Delete(ctx, eventText)
	if outcome.Err != nil {
		return mcp.NewToolResultError(outcome.Spoken), nil
	}
	return mcp.NewToolResultText(outcome.Spoken), nil
}
