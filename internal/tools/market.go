package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kite-mcp-gateway/internal/gateway"
	"kite-mcp-gateway/internal/models"
)

func instrumentsParam() mcp.ToolOption {
	return mcp.WithArray("instruments",
		mcp.Description("Instrument keys in EXCHANGE:TRADINGSYMBOL form, e.g. NSE:INFY"),
		mcp.Required(),
		mcp.Items(map[string]any{"type": "string"}),
	)
}

type QuoteTool struct{}

func (*QuoteTool) Tool() mcp.Tool {
	return mcp.NewTool("get_quote",
		mcp.WithDescription("Get full market quotes for instruments."),
		instrumentsParam(),
	)
}

func (*QuoteTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		quotes, err := gw.Quote(ctx, argStrings(request.GetArguments(), "instruments"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(quotes)
	}
}

type OHLCTool struct{}

func (*OHLCTool) Tool() mcp.Tool {
	return mcp.NewTool("get_ohlc",
		mcp.WithDescription("Get OHLC snapshots for instruments."),
		instrumentsParam(),
	)
}

func (*OHLCTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ohlc, err := gw.OHLC(ctx, argStrings(request.GetArguments(), "instruments"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(ohlc)
	}
}

type LTPTool struct{}

func (*LTPTool) Tool() mcp.Tool {
	return mcp.NewTool("get_ltp",
		mcp.WithDescription("Get last traded prices for instruments."),
		instrumentsParam(),
	)
}

func (*LTPTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ltp, err := gw.LTP(ctx, argStrings(request.GetArguments(), "instruments"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(ltp)
	}
}

type InstrumentsSearchTool struct{}

func (*InstrumentsSearchTool) Tool() mcp.Tool {
	return mcp.NewTool("search_instruments",
		mcp.WithDescription("Search the tradable instrument list by a case-insensitive substring match. Returns at most 200 matches."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("filter_on",
			mcp.Description("Field to match: id (exchange:tradingsymbol, default), name, or tradingsymbol"),
			mcp.Enum("id", "name", "tradingsymbol"),
		),
		mcp.WithString("exchange",
			mcp.Description("Restrict the search to one exchange"),
			mcp.Enum("NSE", "BSE", "NFO", "CDS", "BFO", "MCX", "BCD"),
		),
	)
}

func (*InstrumentsSearchTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		instruments, err := gw.SearchInstruments(ctx,
			argString(args, "query"), argString(args, "filter_on"), argString(args, "exchange"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(instruments)
	}
}

type HistoricalDataTool struct{}

func (*HistoricalDataTool) Tool() mcp.Tool {
	return mcp.NewTool("get_historical_data",
		mcp.WithDescription("Get historical OHLC candles for an instrument."),
		mcp.WithNumber("instrument_token",
			mcp.Description("Numeric instrument token"),
			mcp.Required(),
		),
		mcp.WithString("from_date",
			mcp.Description("Range start, yyyy-mm-dd or yyyy-mm-dd hh:mm:ss"),
			mcp.Required(),
		),
		mcp.WithString("to_date",
			mcp.Description("Range end, yyyy-mm-dd or yyyy-mm-dd hh:mm:ss"),
			mcp.Required(),
		),
		mcp.WithString("interval",
			mcp.Description("Candle interval"),
			mcp.Required(),
			mcp.Enum("minute", "day", "3minute", "5minute", "10minute", "15minute", "30minute", "60minute"),
		),
		mcp.WithBoolean("continuous",
			mcp.Description("Stitch futures contracts across expiries"),
		),
		mcp.WithBoolean("oi",
			mcp.Description("Include open interest"),
		),
	)
}

func (*HistoricalDataTool) Handler(gw *gateway.Gateway) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := models.DecodeHistoricalDataRequest(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		candles, err := gw.HistoricalData(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(candles)
	}
}
