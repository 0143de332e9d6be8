package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"kite-mcp-gateway/internal/broker"
	"kite-mcp-gateway/internal/gateway"
)

// stubBroker overrides only the methods a test exercises; calling
// anything else panics on the nil embedded interface.
type stubBroker struct {
	broker.Client
	err error
}

func (s *stubBroker) PlaceOrder(ctx context.Context, variety string, params kiteconnect.OrderParams) (kiteconnect.OrderResponse, error) {
	if s.err != nil {
		return kiteconnect.OrderResponse{}, s.err
	}
	return kiteconnect.OrderResponse{OrderID: "240830000012345"}, nil
}

func (s *stubBroker) DeleteGTT(ctx context.Context, triggerID int) (kiteconnect.GTTResponse, error) {
	if s.err != nil {
		return kiteconnect.GTTResponse{}, s.err
	}
	return kiteconnect.GTTResponse{TriggerID: triggerID}, nil
}

func (s *stubBroker) Orders(ctx context.Context) ([]kiteconnect.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []kiteconnect.Order{{OrderID: "1"}}, nil
}

func newToolGateway(b broker.Client) *gateway.Gateway {
	return gateway.New(b, zerolog.Nop())
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestAllToolNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range AllTools() {
		def := tool.Tool()
		assert.NotEmpty(t, def.Name)
		assert.False(t, seen[def.Name], "duplicate tool name %s", def.Name)
		seen[def.Name] = true
	}
	assert.Len(t, seen, 27)
}

func TestParseExcludedTools(t *testing.T) {
	assert.Empty(t, ParseExcludedTools(""))

	set := ParseExcludedTools("place_order, cancel_order,,delete_gtt ")
	assert.Len(t, set, 3)
	assert.True(t, set["place_order"])
	assert.True(t, set["cancel_order"])
	assert.True(t, set["delete_gtt"])
	assert.False(t, set["modify_order"])
}

func TestNewServerRegistersTools(t *testing.T) {
	gw := newToolGateway(&stubBroker{})
	s := NewServer(gw, "test", ParseExcludedTools("place_order"))
	require.NotNil(t, s)
}

func TestPlaceOrderTool(t *testing.T) {
	tool := &PlaceOrderTool{}

	t.Run("success", func(t *testing.T) {
		handler := tool.Handler(newToolGateway(&stubBroker{}))
		result, err := handler(context.Background(), callRequest("place_order", map[string]interface{}{
			"variety":          "regular",
			"exchange":         "NSE",
			"tradingsymbol":    "INFY",
			"transaction_type": "BUY",
			"quantity":         float64(10),
			"product":          "CNC",
			"order_type":       "MARKET",
		}))
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "Order placed successfully. Order ID: 240830000012345", resultText(t, result))
	})

	t.Run("validation failure is a tool error, not a transport error", func(t *testing.T) {
		handler := tool.Handler(newToolGateway(&stubBroker{}))
		result, err := handler(context.Background(), callRequest("place_order", map[string]interface{}{
			"variety":          "regular",
			"exchange":         "NSE",
			"tradingsymbol":    "INFY",
			"transaction_type": "BUY",
			"quantity":         float64(10),
			"product":          "CNC",
			"order_type":       "LIMIT", // no price
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "price")
	})

	t.Run("broker rejection surfaces the failure", func(t *testing.T) {
		handler := tool.Handler(newToolGateway(&stubBroker{err: errors.New("insufficient funds")}))
		result, err := handler(context.Background(), callRequest("place_order", map[string]interface{}{
			"variety":          "regular",
			"exchange":         "NSE",
			"tradingsymbol":    "INFY",
			"transaction_type": "BUY",
			"quantity":         float64(10),
			"product":          "CNC",
			"order_type":       "MARKET",
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		text := resultText(t, result)
		assert.Contains(t, text, "Failed to place order")
		assert.Contains(t, text, "insufficient funds")
	})
}

func TestDeleteGTTTool(t *testing.T) {
	tool := &DeleteGTTTool{}

	t.Run("success", func(t *testing.T) {
		handler := tool.Handler(newToolGateway(&stubBroker{}))
		result, err := handler(context.Background(), callRequest("delete_gtt", map[string]interface{}{
			"trigger_id": "12345",
		}))
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "GTT order deleted successfully.", resultText(t, result))
	})

	t.Run("failure references the trigger", func(t *testing.T) {
		handler := tool.Handler(newToolGateway(&stubBroker{err: errors.New("trigger not found")}))
		result, err := handler(context.Background(), callRequest("delete_gtt", map[string]interface{}{
			"trigger_id": "12345",
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "12345")
	})
}

func TestOrdersToolRendersJSON(t *testing.T) {
	tool := &OrdersTool{}
	handler := tool.Handler(newToolGateway(&stubBroker{}))
	result, err := handler(context.Background(), callRequest("get_orders", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), `"order_id":"1"`)
}
