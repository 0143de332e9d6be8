// Package tools defines the MCP tool surface: one tool per gateway
// operation, with declarative input schemas mirroring the domain
// model's closed sets. Handlers decode and validate arguments, call the
// gateway, and render either the broker payload as JSON or a uniform
// error result. A broker failure never crashes the process.
package tools

import (
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kite-mcp-gateway/internal/gateway"
)

// Tool pairs an MCP tool definition with its handler factory.
type Tool interface {
	Tool() mcp.Tool
	Handler(*gateway.Gateway) server.ToolHandlerFunc
}

// AllTools returns every tool available for registration.
func AllTools() []Tool {
	return []Tool{
		// Session setup
		&LoginURLTool{},
		&SetAccessTokenTool{},

		// Account and portfolio reads
		&OrdersTool{},
		&TradesTool{},
		&PositionsTool{},
		&HoldingsTool{},
		&MarginsTool{},
		&ProfileTool{},
		&MFHoldingsTool{},
		&OrderHistoryTool{},
		&OrderTradesTool{},
		&GTTsTool{},

		// Market data
		&QuoteTool{},
		&OHLCTool{},
		&LTPTool{},
		&HistoricalDataTool{},
		&InstrumentsSearchTool{},

		// Trading actions
		&PlaceOrderTool{},
		&ModifyOrderTool{},
		&CancelOrderTool{},
		&ConvertPositionTool{},
		&PlaceGTTTool{},
		&ModifyGTTTool{},
		&DeleteGTTTool{},

		// Margin calculators
		&InstrumentMarginsTool{},
		&OrderMarginsTool{},
		&BasketMarginsTool{},
	}
}

// ParseExcludedTools parses a comma-separated tool name list into a
// lookup set.
func ParseExcludedTools(excluded string) map[string]bool {
	set := make(map[string]bool)
	for _, name := range strings.Split(excluded, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = true
		}
	}
	return set
}

// NewServer builds the MCP server with every non-excluded tool
// registered against the given gateway.
func NewServer(gw *gateway.Gateway, version string, excluded map[string]bool) *server.MCPServer {
	s := server.NewMCPServer("kite-mcp-gateway", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, t := range AllTools() {
		def := t.Tool()
		if excluded[def.Name] {
			continue
		}
		s.AddTool(def, t.Handler(gw))
	}
	return s
}

// jsonResult marshals a broker payload into a text result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError("Failed to encode response data"), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// argString extracts an optional string argument.
func argString(args map[string]interface{}, key string) string {
	if s, ok := args[key].(string); ok {
		return s
	}
	return ""
}

// argStrings extracts a string array argument.
func argStrings(args map[string]interface{}, key string) []string {
	arr, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
