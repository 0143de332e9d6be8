package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kite-mcp-gateway/internal/gateway"
)

type OrdersTool struct{}

func (*OrdersTool) Tool() mcp.Tool {
	return mcp.NewTool("get_orders",
		mcp.WithDescription("Get the list of orders for the day."),
	)
}

func (*OrdersTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orders, err := gw.Orders(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(orders)
	}
}

type TradesTool struct{}

func (*TradesTool) Tool() mcp.Tool {
	return mcp.NewTool("get_trades",
		mcp.WithDescription("Get the list of trades for the day."),
	)
}

func (*TradesTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		trades, err := gw.Trades(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(trades)
	}
}

type PositionsTool struct{}

func (*PositionsTool) Tool() mcp.Tool {
	return mcp.NewTool("get_positions",
		mcp.WithDescription("Get the user's day and net positions."),
	)
}

func (*PositionsTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		positions, err := gw.Positions(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(positions)
	}
}

type HoldingsTool struct{}

func (*HoldingsTool) Tool() mcp.Tool {
	return mcp.NewTool("get_holdings",
		mcp.WithDescription("Get the user's delivery holdings."),
	)
}

func (*HoldingsTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		holdings, err := gw.Holdings(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(holdings)
	}
}

type MarginsTool struct{}

func (*MarginsTool) Tool() mcp.Tool {
	return mcp.NewTool("get_margins",
		mcp.WithDescription("Get the user's margins, account-wide or for one segment."),
		mcp.WithString("segment",
			mcp.Description("Optional segment (equity or commodity)"),
			mcp.Enum("equity", "commodity"),
		),
	)
}

func (*MarginsTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		segment := argString(request.GetArguments(), "segment")
		margins, err := gw.Margins(ctx, segment)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(margins)
	}
}

type ProfileTool struct{}

func (*ProfileTool) Tool() mcp.Tool {
	return mcp.NewTool("get_profile",
		mcp.WithDescription("Get the user's profile."),
	)
}

func (*ProfileTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		profile, err := gw.Profile(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(profile)
	}
}

type MFHoldingsTool struct{}

func (*MFHoldingsTool) Tool() mcp.Tool {
	return mcp.NewTool("get_mf_holdings",
		mcp.WithDescription("Get the user's mutual fund holdings."),
	)
}

func (*MFHoldingsTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		holdings, err := gw.MFHoldings(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(holdings)
	}
}

type OrderHistoryTool struct{}

func (*OrderHistoryTool) Tool() mcp.Tool {
	return mcp.NewTool("get_order_history",
		mcp.WithDescription("Get the state history of an order."),
		mcp.WithString("order_id",
			mcp.Description("Order ID"),
			mcp.Required(),
		),
	)
}

func (*OrderHistoryTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orderID := argString(request.GetArguments(), "order_id")
		history, err := gw.OrderHistory(ctx, orderID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(history)
	}
}

type OrderTradesTool struct{}

func (*OrderTradesTool) Tool() mcp.Tool {
	return mcp.NewTool("get_order_trades",
		mcp.WithDescription("Get the trades generated by an order."),
		mcp.WithString("order_id",
			mcp.Description("Order ID"),
			mcp.Required(),
		),
	)
}

func (*OrderTradesTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orderID := argString(request.GetArguments(), "order_id")
		trades, err := gw.OrderTrades(ctx, orderID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(trades)
	}
}

type GTTsTool struct{}

func (*GTTsTool) Tool() mcp.Tool {
	return mcp.NewTool("get_gtts",
		mcp.WithDescription("Get all GTT (Good Till Triggered) orders."),
	)
}

func (*GTTsTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		gtts, err := gw.GTTs(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(gtts)
	}
}
