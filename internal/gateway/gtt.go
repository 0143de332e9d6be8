package gateway

import (
	"context"
	"fmt"
	"strconv"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"kite-mcp-gateway/internal/errors"
	"kite-mcp-gateway/internal/models"
)

// gttParams maps validated trigger legs onto the broker's GTT shape.
// The broker call carries one transaction type and product for the
// whole trigger and places every leg as a LIMIT order; validation has
// already rejected requests outside that shape, so leg 0 speaks for
// all legs here. For two-leg triggers the first value/leg pair is the
// lower (stoploss) leg and the second the upper, matching the wire
// ordering of trigger_values.
func gttParams(triggerType models.GTTType, tradingSymbol string, exchange models.Exchange,
	lastPrice float64, triggerValues []float64, orders []models.GTTOrderParams) kiteconnect.GTTParams {

	params := kiteconnect.GTTParams{
		Tradingsymbol:   tradingSymbol,
		Exchange:        string(exchange),
		LastPrice:       lastPrice,
		TransactionType: string(orders[0].TransactionType),
		Product:         string(orders[0].Product),
	}

	if triggerType == models.GTTTypeTwoLeg {
		params.Trigger = &kiteconnect.GTTOneCancelsOtherTrigger{
			Lower: kiteconnect.TriggerParams{
				TriggerValue: triggerValues[0],
				LimitPrice:   orders[0].Price,
				Quantity:     float64(orders[0].Quantity),
			},
			Upper: kiteconnect.TriggerParams{
				TriggerValue: triggerValues[1],
				LimitPrice:   orders[1].Price,
				Quantity:     float64(orders[1].Quantity),
			},
		}
		return params
	}

	params.Trigger = &kiteconnect.GTTSingleLegTrigger{
		TriggerParams: kiteconnect.TriggerParams{
			TriggerValue: triggerValues[0],
			LimitPrice:   orders[0].Price,
			Quantity:     float64(orders[0].Quantity),
		},
	}
	return params
}

// parseTriggerID converts the external string trigger ID to the
// broker's numeric form.
func parseTriggerID(triggerID string) (int, error) {
	if triggerID == "" {
		return 0, errors.NewValidationError(errors.KindMissingRequiredField, "trigger_id", nil, "is required")
	}
	id, err := strconv.Atoi(triggerID)
	if err != nil {
		return 0, errors.NewValidationError(errors.KindOutOfRange, "trigger_id", triggerID, "must be numeric")
	}
	return id, nil
}

// PlaceGTT places a new GTT trigger.
func (g *Gateway) PlaceGTT(ctx context.Context, req *models.PlaceGTTRequest) (kiteconnect.GTTResponse, error) {
	params := gttParams(req.TriggerType, req.TradingSymbol, req.Exchange, req.LastPrice, req.TriggerValues, req.Orders)
	resp, err := g.broker.PlaceGTT(ctx, params)
	if err != nil {
		return kiteconnect.GTTResponse{}, g.fail("place_gtt", "Failed to place GTT order", params, err)
	}
	g.log.Info().Str("operation", "place_gtt").Int("trigger_id", resp.TriggerID).
		Str("tradingsymbol", req.TradingSymbol).Msg("GTT placed")
	return resp, nil
}

// ModifyGTT fully replaces an existing GTT trigger.
func (g *Gateway) ModifyGTT(ctx context.Context, req *models.ModifyGTTRequest) (kiteconnect.GTTResponse, error) {
	id, err := parseTriggerID(req.TriggerID)
	if err != nil {
		return kiteconnect.GTTResponse{}, err
	}
	params := gttParams(req.TriggerType, req.TradingSymbol, req.Exchange, req.LastPrice, req.TriggerValues, req.Orders)
	resp, err := g.broker.ModifyGTT(ctx, id, params)
	if err != nil {
		return kiteconnect.GTTResponse{}, g.fail("modify_gtt",
			fmt.Sprintf("Failed to modify GTT order %s", req.TriggerID), params, err)
	}
	g.log.Info().Str("operation", "modify_gtt").Int("trigger_id", resp.TriggerID).Msg("GTT modified")
	return resp, nil
}

// DeleteGTT deletes a GTT trigger.
func (g *Gateway) DeleteGTT(ctx context.Context, triggerID string) (kiteconnect.GTTResponse, error) {
	id, err := parseTriggerID(triggerID)
	if err != nil {
		return kiteconnect.GTTResponse{}, err
	}
	resp, err := g.broker.DeleteGTT(ctx, id)
	if err != nil {
		return kiteconnect.GTTResponse{}, g.fail("delete_gtt",
			fmt.Sprintf("Failed to delete GTT order %s", triggerID), nil, err)
	}
	g.log.Info().Str("operation", "delete_gtt").Str("trigger_id", triggerID).Msg("GTT deleted")
	return resp, nil
}

// GTTs returns all GTT triggers. Status fields are broker state echoed
// back, never computed here.
func (g *Gateway) GTTs(ctx context.Context) (kiteconnect.GTTs, error) {
	gtts, err := g.broker.GTTs(ctx)
	if err != nil {
		return nil, g.fail("get_gtts", "Failed to get GTT orders", nil, err)
	}
	return gtts, nil
}
