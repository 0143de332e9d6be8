package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kite-mcp-gateway/internal/gateway"
	"kite-mcp-gateway/internal/models"
)

type InstrumentMarginsTool struct{}

func (*InstrumentMarginsTool) Tool() mcp.Tool {
	return mcp.NewTool("get_instrument_margins",
		mcp.WithDescription("Get margins for a trading segment."),
		mcp.WithString("segment",
			mcp.Description("Trading segment"),
			mcp.Required(),
			mcp.Enum("equity", "commodity"),
		),
	)
}

func (*InstrumentMarginsTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		margins, err := gw.InstrumentMargins(ctx, argString(request.GetArguments(), "segment"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(margins)
	}
}

type OrderMarginsTool struct{}

func (*OrderMarginsTool) Tool() mcp.Tool {
	return mcp.NewTool("get_order_margins",
		mcp.WithDescription("Calculate the margin required for a single proposed order."),
		mcp.WithString("variety",
			mcp.Description("Order variety"),
			mcp.Required(),
			mcp.Enum("regular", "co", "amo", "iceberg", "auction"),
		),
		mcp.WithString("exchange",
			mcp.Description("Exchange"),
			mcp.Required(),
			mcp.Enum("NSE", "BSE", "NFO", "CDS", "BFO", "MCX", "BCD"),
		),
		mcp.WithString("tradingsymbol",
			mcp.Description("Trading symbol"),
			mcp.Required(),
		),
		mcp.WithString("transaction_type",
			mcp.Description("Transaction type"),
			mcp.Required(),
			mcp.Enum("BUY", "SELL"),
		),
		mcp.WithNumber("quantity",
			mcp.Description("Order quantity"),
			mcp.Required(),
			mcp.Min(1),
		),
		mcp.WithString("product",
			mcp.Description("Product type"),
			mcp.Required(),
			mcp.Enum("MIS", "CNC", "NRML", "CO"),
		),
		mcp.WithString("order_type",
			mcp.Description("Order type"),
			mcp.Required(),
			mcp.Enum("MARKET", "LIMIT", "SL-M", "SL"),
		),
		mcp.WithNumber("price",
			mcp.Description("Order price, required for LIMIT and SL orders"),
		),
		mcp.WithNumber("trigger_price",
			mcp.Description("Trigger price, required for SL and SL-M orders"),
		),
	)
}

func (*OrderMarginsTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := models.DecodePlaceOrderRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		margins, err := gw.OrderMargins(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(margins)
	}
}

type BasketMarginsTool struct{}

func (*BasketMarginsTool) Tool() mcp.Tool {
	return mcp.NewTool("get_basket_margins",
		mcp.WithDescription("Calculate the aggregate margin required for a basket of proposed orders."),
		mcp.WithArray("orders",
			mcp.Description("Orders in the basket"),
			mcp.Required(),
			mcp.Items(basketOrderSchema()),
		),
		mcp.WithBoolean("consider_positions",
			mcp.Description("Offset margins against existing open positions (default true)"),
		),
		mcp.WithString("mode",
			mcp.Description("Margin calculation mode"),
			mcp.Enum("compact"),
		),
	)
}

func (*BasketMarginsTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := models.DecodeBasketMarginRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		margins, err := gw.BasketMargins(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(margins)
	}
}

// basketOrderSchema is the JSON schema for one order inside a basket
// margin request. It mirrors the place_order parameters.
func basketOrderSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"variety": map[string]any{
				"type": "string",
				"enum": []string{"regular", "co", "amo", "iceberg", "auction"},
			},
			"exchange": map[string]any{
				"type": "string",
				"enum": []string{"NSE", "BSE", "NFO", "CDS", "BFO", "MCX", "BCD"},
			},
			"tradingsymbol": map[string]any{
				"type": "string",
			},
			"transaction_type": map[string]any{
				"type": "string",
				"enum": []string{"BUY", "SELL"},
			},
			"quantity": map[string]any{
				"type": "integer",
			},
			"product": map[string]any{
				"type": "string",
				"enum": []string{"MIS", "CNC", "NRML", "CO"},
			},
			"order_type": map[string]any{
				"type": "string",
				"enum": []string{"MARKET", "LIMIT", "SL-M", "SL"},
			},
			"price": map[string]any{
				"type": "number",
			},
			"trigger_price": map[string]any{
				"type": "number",
			},
		},
		"required": []string{"variety", "exchange", "tradingsymbol", "transaction_type", "quantity", "product", "order_type"},
	}
}
