package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kite-mcp-gateway/internal/gateway"
	"kite-mcp-gateway/internal/models"
)

type PlaceOrderTool struct{}

func (*PlaceOrderTool) Tool() mcp.Tool {
	return mcp.NewTool("place_order",
		mcp.WithDescription("Place an order."),
		mcp.WithString("variety",
			mcp.Description("Order variety"),
			mcp.Required(),
			mcp.Enum("regular", "co", "amo", "iceberg", "auction"),
		),
		mcp.WithString("exchange",
			mcp.Description("Exchange to place the order on"),
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
		mcp.WithString("validity",
			mcp.Description("Order validity"),
			mcp.Enum("DAY", "IOC", "TTL"),
		),
		mcp.WithNumber("validity_ttl",
			mcp.Description("Life span in minutes, required for TTL validity"),
		),
		mcp.WithNumber("disclosed_quantity",
			mcp.Description("Quantity to disclose publicly"),
		),
		mcp.WithNumber("trigger_price",
			mcp.Description("Trigger price, required for SL and SL-M orders"),
		),
		mcp.WithNumber("iceberg_legs",
			mcp.Description("Number of legs, required for iceberg variety"),
		),
		mcp.WithNumber("iceberg_quantity",
			mcp.Description("Quantity per leg, required for iceberg variety"),
		),
		mcp.WithNumber("auction_number",
			mcp.Description("Auction number, required for auction variety"),
		),
		mcp.WithString("tag",
			mcp.Description("Optional order tag (alphanumeric, max 20 chars)"),
			mcp.MaxLength(20),
		),
	)
}

func (*PlaceOrderTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := models.DecodePlaceOrderRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		resp, err := gw.PlaceOrder(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Order placed successfully. Order ID: %s", resp.OrderID)), nil
	}
}

type ModifyOrderTool struct{}

func (*ModifyOrderTool) Tool() mcp.Tool {
	return mcp.NewTool("modify_order",
		mcp.WithDescription("Modify an existing order. Fields left out stay unchanged."),
		mcp.WithString("variety",
			mcp.Description("Order variety"),
			mcp.Required(),
			mcp.Enum("regular", "co", "amo", "iceberg", "auction"),
		),
		mcp.WithString("order_id",
			mcp.Description("Order ID"),
			mcp.Required(),
		),
		mcp.WithString("parent_order_id",
			mcp.Description("Parent order ID for cover order legs"),
		),
		mcp.WithNumber("quantity",
			mcp.Description("New quantity"),
		),
		mcp.WithNumber("price",
			mcp.Description("New price"),
		),
		mcp.WithString("order_type",
			mcp.Description("New order type"),
			mcp.Enum("MARKET", "LIMIT", "SL-M", "SL"),
		),
		mcp.WithNumber("trigger_price",
			mcp.Description("New trigger price"),
		),
		mcp.WithString("validity",
			mcp.Description("New validity"),
			mcp.Enum("DAY", "IOC", "TTL"),
		),
		mcp.WithNumber("disclosed_quantity",
			mcp.Description("New disclosed quantity"),
		),
	)
}

func (*ModifyOrderTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := models.DecodeModifyOrderRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		resp, err := gw.ModifyOrder(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Order modified successfully. Order ID: %s", resp.OrderID)), nil
	}
}

type CancelOrderTool struct{}

func (*CancelOrderTool) Tool() mcp.Tool {
	return mcp.NewTool("cancel_order",
		mcp.WithDescription("Cancel an existing order."),
		mcp.WithString("variety",
			mcp.Description("Order variety"),
			mcp.Required(),
			mcp.Enum("regular", "co", "amo", "iceberg", "auction"),
		),
		mcp.WithString("order_id",
			mcp.Description("Order ID"),
			mcp.Required(),
		),
		mcp.WithString("parent_order_id",
			mcp.Description("Parent order ID for cover order legs"),
		),
	)
}

func (*CancelOrderTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		variety := models.OrderVariety(argString(args, "variety"))
		orderID := argString(args, "order_id")
		var parentOrderID *string
		if parent := argString(args, "parent_order_id"); parent != "" {
			parentOrderID = &parent
		}

		resp, err := gw.CancelOrder(ctx, variety, orderID, parentOrderID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Order cancelled successfully. Order ID: %s", resp.OrderID)), nil
	}
}

type ConvertPositionTool struct{}

func (*ConvertPositionTool) Tool() mcp.Tool {
	return mcp.NewTool("convert_position",
		mcp.WithDescription("Convert a position's product type."),
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
		mcp.WithString("position_type",
			mcp.Description("Position bucket"),
			mcp.Required(),
			mcp.Enum("day", "overnight"),
		),
		mcp.WithNumber("quantity",
			mcp.Description("Quantity to convert"),
			mcp.Required(),
			mcp.Min(1),
		),
		mcp.WithString("old_product",
			mcp.Description("Current product type"),
			mcp.Required(),
			mcp.Enum("MIS", "CNC", "NRML", "CO"),
		),
		mcp.WithString("new_product",
			mcp.Description("Target product type"),
			mcp.Required(),
			mcp.Enum("MIS", "CNC", "NRML", "CO"),
		),
	)
}

func (*ConvertPositionTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := models.DecodeConvertPositionRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := gw.ConvertPosition(ctx, req); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("Position converted successfully."), nil
	}
}
