package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kite-mcp-gateway/internal/gateway"
	"kite-mcp-gateway/internal/models"
)

// gttOrderSchema is the JSON schema for a single GTT order leg, shared
// by place_gtt and modify_gtt. The instrument lives at trigger level;
// legs carry only the order shape. Legs fire as LIMIT orders and every
// leg of a trigger shares one transaction type and product.
func gttOrderSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"transaction_type": map[string]any{
				"type": "string",
				"enum": []string{"BUY", "SELL"},
			},
			"quantity": map[string]any{
				"type": "integer",
			},
			"order_type": map[string]any{
				"type": "string",
				"enum": []string{"LIMIT"},
			},
			"product": map[string]any{
				"type": "string",
				"enum": []string{"MIS", "CNC", "NRML", "CO"},
			},
			"price": map[string]any{
				"type": "number",
			},
		},
		"required": []string{"transaction_type", "quantity", "order_type", "product", "price"},
	}
}

type PlaceGTTTool struct{}

func (*PlaceGTTTool) Tool() mcp.Tool {
	return mcp.NewTool("place_gtt",
		mcp.WithDescription("Place a GTT (good till triggered) order."),
		mcp.WithString("tradingsymbol",
			mcp.Description("Trading symbol"),
			mcp.Required(),
		),
		mcp.WithString("exchange",
			mcp.Description("Exchange"),
			mcp.Required(),
			mcp.Enum("NSE", "BSE", "NFO", "CDS", "BFO", "MCX", "BCD"),
		),
		mcp.WithString("trigger_type",
			mcp.Description("Trigger type: single or two-leg (OCO)"),
			mcp.Required(),
			mcp.Enum("single", "two-leg"),
		),
		mcp.WithArray("trigger_values",
			mcp.Description("Trigger prices, one per leg"),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "number"}),
		),
		mcp.WithNumber("last_price",
			mcp.Description("Last traded price of the instrument"),
			mcp.Required(),
		),
		mcp.WithArray("orders",
			mcp.Description("Orders to fire on trigger, one per leg. All legs share one transaction type and product and are placed as LIMIT orders."),
			mcp.Required(),
			mcp.Items(gttOrderSchema()),
		),
	)
}

func (*PlaceGTTTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := models.DecodePlaceGTTRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		resp, err := gw.PlaceGTT(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("GTT order placed successfully. Trigger ID: %d", resp.TriggerID)), nil
	}
}

type ModifyGTTTool struct{}

func (*ModifyGTTTool) Tool() mcp.Tool {
	return mcp.NewTool("modify_gtt",
		mcp.WithDescription("Modify an existing GTT order."),
		mcp.WithString("trigger_id",
			mcp.Description("Trigger ID of the GTT order to modify"),
			mcp.Required(),
		),
		mcp.WithString("tradingsymbol",
			mcp.Description("Trading symbol"),
			mcp.Required(),
		),
		mcp.WithString("exchange",
			mcp.Description("Exchange"),
			mcp.Required(),
			mcp.Enum("NSE", "BSE", "NFO", "CDS", "BFO", "MCX", "BCD"),
		),
		mcp.WithString("trigger_type",
			mcp.Description("Trigger type: single or two-leg (OCO)"),
			mcp.Required(),
			mcp.Enum("single", "two-leg"),
		),
		mcp.WithArray("trigger_values",
			mcp.Description("Trigger prices, one per leg"),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "number"}),
		),
		mcp.WithNumber("last_price",
			mcp.Description("Last traded price of the instrument"),
			mcp.Required(),
		),
		mcp.WithArray("orders",
			mcp.Description("Orders to fire on trigger, one per leg. All legs share one transaction type and product and are placed as LIMIT orders."),
			mcp.Required(),
			mcp.Items(gttOrderSchema()),
		),
	)
}

func (*ModifyGTTTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := models.DecodeModifyGTTRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		resp, err := gw.ModifyGTT(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("GTT order modified successfully. Trigger ID: %d", resp.TriggerID)), nil
	}
}

type DeleteGTTTool struct{}

func (*DeleteGTTTool) Tool() mcp.Tool {
	return mcp.NewTool("delete_gtt",
		mcp.WithDescription("Delete a GTT order."),
		mcp.WithString("trigger_id",
			mcp.Description("Trigger ID of the GTT order to delete"),
			mcp.Required(),
		),
	)
}

func (*DeleteGTTTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		triggerID := argString(request.GetArguments(), "trigger_id")
		if _, err := gw.DeleteGTT(ctx, triggerID); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("GTT order deleted successfully."), nil
	}
}
