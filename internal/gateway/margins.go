package gateway

import (
	"context"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"kite-mcp-gateway/internal/models"
)

// marginParam maps an order request onto the margin calculator's
// parameter shape. Optional price and trigger fields are forwarded only
// when set.
func marginParam(req *models.PlaceOrderRequest) kiteconnect.OrderMarginParam {
	param := kiteconnect.OrderMarginParam{
		Exchange:        string(req.Exchange),
		Tradingsymbol:   req.TradingSymbol,
		TransactionType: string(req.TransactionType),
		Variety:         string(req.Variety),
		Product:         string(req.Product),
		OrderType:       string(req.OrderType),
		Quantity:        float64(req.Quantity),
	}
	if req.Price != nil {
		param.Price = *req.Price
	}
	if req.TriggerPrice != nil {
		param.TriggerPrice = *req.TriggerPrice
	}
	return param
}

// OrderMargins calculates the margin requirement for a single proposed
// order.
func (g *Gateway) OrderMargins(ctx context.Context, req *models.PlaceOrderRequest) ([]kiteconnect.OrderMargins, error) {
	params := kiteconnect.GetMarginParams{
		OrderParams: []kiteconnect.OrderMarginParam{marginParam(req)},
	}
	margins, err := g.broker.OrderMargins(ctx, params)
	if err != nil {
		return nil, g.fail("get_order_margins", "Failed to get order margins", params, err)
	}
	return margins, nil
}

// BasketMargins calculates the aggregate margin requirement for a
// basket of proposed orders, optionally offset by open positions.
func (g *Gateway) BasketMargins(ctx context.Context, req *models.BasketMarginRequest) (kiteconnect.BasketMargins, error) {
	orderParams := make([]kiteconnect.OrderMarginParam, len(req.Orders))
	for i := range req.Orders {
		orderParams[i] = marginParam(&req.Orders[i])
	}

	considerPositions := true
	if req.ConsiderPositions != nil {
		considerPositions = *req.ConsiderPositions
	}

	params := kiteconnect.GetBasketParams{
		OrderParams:       orderParams,
		ConsiderPositions: considerPositions,
		Compact:           req.Mode != nil && *req.Mode == "compact",
	}

	margins, err := g.broker.BasketMargins(ctx, params)
	if err != nil {
		return kiteconnect.BasketMargins{}, g.fail("get_basket_margins", "Failed to get basket margins", params, err)
	}
	return margins, nil
}
