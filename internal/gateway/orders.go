package gateway

import (
	"context"
	"strconv"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"kite-mcp-gateway/internal/errors"
	"kite-mcp-gateway/internal/models"
)

// placeOrderParams maps a validated request onto the broker's parameter
// set. Unset optional fields stay at their zero value, which the broker
// client's encoding omits from the wire.
func placeOrderParams(req *models.PlaceOrderRequest) kiteconnect.OrderParams {
	params := kiteconnect.OrderParams{
		Exchange:        string(req.Exchange),
		Tradingsymbol:   req.TradingSymbol,
		TransactionType: string(req.TransactionType),
		Quantity:        req.Quantity,
		Product:         string(req.Product),
		OrderType:       string(req.OrderType),
	}
	if req.Price != nil {
		params.Price = *req.Price
	}
	if req.Validity != nil {
		params.Validity = string(*req.Validity)
	}
	if req.ValidityTTL != nil {
		params.ValidityTTL = *req.ValidityTTL
	}
	if req.DisclosedQuantity != nil {
		params.DisclosedQuantity = *req.DisclosedQuantity
	}
	if req.TriggerPrice != nil {
		params.TriggerPrice = *req.TriggerPrice
	}
	if req.IcebergLegs != nil {
		params.IcebergLegs = *req.IcebergLegs
	}
	if req.IcebergQuantity != nil {
		params.IcebergQty = *req.IcebergQuantity
	}
	if req.AuctionNumber != nil {
		params.AuctionNumber = strconv.Itoa(*req.AuctionNumber)
	}
	if req.Tag != nil {
		params.Tag = *req.Tag
	}
	return params
}

// PlaceOrder places a new order and returns the broker's response. On
// failure the rejected parameter set travels with the error.
func (g *Gateway) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (kiteconnect.OrderResponse, error) {
	params := placeOrderParams(req)
	resp, err := g.broker.PlaceOrder(ctx, string(req.Variety), params)
	if err != nil {
		return kiteconnect.OrderResponse{}, g.fail("place_order", "Failed to place order", params, err)
	}
	g.log.Info().Str("operation", "place_order").Str("order_id", resp.OrderID).
		Str("tradingsymbol", req.TradingSymbol).Msg("order placed")
	return resp, nil
}

// ModifyOrder applies a partial update to an open order. Only fields
// set in the request reach the broker; untouched fields stay at their
// zero value and are excluded from the wire call.
//
// parent_order_id is accepted for symmetry with cancel but the broker
// client's modify call has no slot for it.
func (g *Gateway) ModifyOrder(ctx context.Context, req *models.ModifyOrderRequest) (kiteconnect.OrderResponse, error) {
	params := kiteconnect.OrderParams{}
	if req.Quantity != nil {
		params.Quantity = *req.Quantity
	}
	if req.Price != nil {
		params.Price = *req.Price
	}
	if req.OrderType != nil {
		params.OrderType = string(*req.OrderType)
	}
	if req.TriggerPrice != nil {
		params.TriggerPrice = *req.TriggerPrice
	}
	if req.Validity != nil {
		params.Validity = string(*req.Validity)
	}
	if req.DisclosedQuantity != nil {
		params.DisclosedQuantity = *req.DisclosedQuantity
	}

	resp, err := g.broker.ModifyOrder(ctx, string(req.Variety), req.OrderID, params)
	if err != nil {
		return kiteconnect.OrderResponse{}, g.fail("modify_order", "Failed to modify order", params, err)
	}
	g.log.Info().Str("operation", "modify_order").Str("order_id", resp.OrderID).Msg("order modified")
	return resp, nil
}

// CancelOrder cancels an open order. parentOrderID is required only for
// cover-order legs.
func (g *Gateway) CancelOrder(ctx context.Context, variety models.OrderVariety, orderID string, parentOrderID *string) (kiteconnect.OrderResponse, error) {
	if !variety.Valid() {
		return kiteconnect.OrderResponse{}, errors.NewValidationError(errors.KindInvalidEnumValue, "variety", variety,
			"must be one of [regular co amo iceberg auction]")
	}
	if orderID == "" {
		return kiteconnect.OrderResponse{}, errors.NewValidationError(errors.KindMissingRequiredField, "order_id", nil, "is required")
	}

	resp, err := g.broker.CancelOrder(ctx, string(variety), orderID, parentOrderID)
	if err != nil {
		return kiteconnect.OrderResponse{}, g.fail("cancel_order", "Failed to cancel order", nil, err)
	}
	g.log.Info().Str("operation", "cancel_order").Str("order_id", resp.OrderID).Msg("order cancelled")
	return resp, nil
}

// ConvertPosition converts a position's product type.
func (g *Gateway) ConvertPosition(ctx context.Context, req *models.ConvertPositionRequest) (bool, error) {
	params := kiteconnect.ConvertPositionParams{
		Exchange:        string(req.Exchange),
		TradingSymbol:   req.TradingSymbol,
		OldProduct:      string(req.OldProduct),
		NewProduct:      string(req.NewProduct),
		PositionType:    string(req.PositionType),
		TransactionType: string(req.TransactionType),
		Quantity:        req.Quantity,
	}
	ok, err := g.broker.ConvertPosition(ctx, params)
	if err != nil {
		return false, g.fail("convert_position", "Failed to convert position", params, err)
	}
	g.log.Info().Str("operation", "convert_position").Str("tradingsymbol", req.TradingSymbol).Msg("position converted")
	return ok, nil
}

// OrderHistory returns the state transitions of one order.
func (g *Gateway) OrderHistory(ctx context.Context, orderID string) ([]kiteconnect.Order, error) {
	if orderID == "" {
		return nil, errors.NewValidationError(errors.KindMissingRequiredField, "order_id", nil, "is required")
	}
	history, err := g.broker.OrderHistory(ctx, orderID)
	if err != nil {
		return nil, g.fail("get_order_history", "Failed to get order history", nil, err)
	}
	return history, nil
}

// OrderTrades returns the trades generated by one order.
func (g *Gateway) OrderTrades(ctx context.Context, orderID string) ([]kiteconnect.Trade, error) {
	if orderID == "" {
		return nil, errors.NewValidationError(errors.KindMissingRequiredField, "order_id", nil, "is required")
	}
	trades, err := g.broker.OrderTrades(ctx, orderID)
	if err != nil {
		return nil, g.fail("get_order_trades", "Failed to get order trades", nil, err)
	}
	return trades, nil
}
