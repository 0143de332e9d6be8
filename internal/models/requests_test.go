package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "kite-mcp-gateway/internal/errors"
)

func ptr[T any](v T) *T { return &v }

func validPlaceOrder() PlaceOrderRequest {
	return PlaceOrderRequest{
		Variety:         VarietyRegular,
		Exchange:        NSE,
		TradingSymbol:   "INFY",
		TransactionType: TransactionBuy,
		Quantity:        10,
		Product:         ProductCNC,
		OrderType:       OrderTypeMarket,
	}
}

func requireValidationError(t *testing.T, err error, kind apperrors.ValidationKind, field string) {
	t.Helper()
	require.Error(t, err)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, kind, verr.Kind)
	assert.Equal(t, field, verr.Field)
}

func TestPlaceOrderRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlaceOrderRequest)
		kind   apperrors.ValidationKind
		field  string
	}{
		{
			name:   "valid market order",
			mutate: func(r *PlaceOrderRequest) {},
		},
		{
			name: "valid limit order",
			mutate: func(r *PlaceOrderRequest) {
				r.OrderType = OrderTypeLimit
				r.Price = ptr(1520.5)
			},
		},
		{
			name: "valid stop loss order",
			mutate: func(r *PlaceOrderRequest) {
				r.OrderType = OrderTypeStopLoss
				r.Price = ptr(1500.0)
				r.TriggerPrice = ptr(1495.0)
			},
		},
		{
			name: "valid iceberg order",
			mutate: func(r *PlaceOrderRequest) {
				r.Variety = VarietyIceberg
				r.Quantity = 100
				r.IcebergLegs = ptr(5)
				r.IcebergQuantity = ptr(20)
			},
		},
		{
			name: "valid ttl order",
			mutate: func(r *PlaceOrderRequest) {
				r.Validity = ptr(ValidityTTL)
				r.ValidityTTL = ptr(10)
			},
		},
		{
			name:   "missing variety",
			mutate: func(r *PlaceOrderRequest) { r.Variety = "" },
			kind:   apperrors.KindMissingRequiredField,
			field:  "variety",
		},
		{
			name:   "zero quantity",
			mutate: func(r *PlaceOrderRequest) { r.Quantity = 0 },
			kind:   apperrors.KindMissingRequiredField,
			field:  "quantity",
		},
		{
			name:   "negative quantity",
			mutate: func(r *PlaceOrderRequest) { r.Quantity = -5 },
			kind:   apperrors.KindOutOfRange,
			field:  "quantity",
		},
		{
			name:   "enum matching is case sensitive",
			mutate: func(r *PlaceOrderRequest) { r.Variety = "REGULAR" },
			kind:   apperrors.KindInvalidEnumValue,
			field:  "variety",
		},
		{
			name:   "unknown exchange",
			mutate: func(r *PlaceOrderRequest) { r.Exchange = "NYSE" },
			kind:   apperrors.KindInvalidEnumValue,
			field:  "exchange",
		},
		{
			name:   "limit order without price",
			mutate: func(r *PlaceOrderRequest) { r.OrderType = OrderTypeLimit },
			kind:   apperrors.KindConditionalFieldMissing,
			field:  "price",
		},
		{
			name: "stop loss order without trigger price",
			mutate: func(r *PlaceOrderRequest) {
				r.OrderType = OrderTypeStopLoss
				r.Price = ptr(1500.0)
			},
			kind:  apperrors.KindConditionalFieldMissing,
			field: "trigger_price",
		},
		{
			name:   "sl-m order without trigger price",
			mutate: func(r *PlaceOrderRequest) { r.OrderType = OrderTypeStopLossM },
			kind:   apperrors.KindConditionalFieldMissing,
			field:  "trigger_price",
		},
		{
			name:   "ttl validity without validity_ttl",
			mutate: func(r *PlaceOrderRequest) { r.Validity = ptr(ValidityTTL) },
			kind:   apperrors.KindConditionalFieldMissing,
			field:  "validity_ttl",
		},
		{
			name:   "iceberg without legs",
			mutate: func(r *PlaceOrderRequest) { r.Variety = VarietyIceberg },
			kind:   apperrors.KindConditionalFieldMissing,
			field:  "iceberg_legs",
		},
		{
			name: "iceberg without per-leg quantity",
			mutate: func(r *PlaceOrderRequest) {
				r.Variety = VarietyIceberg
				r.IcebergLegs = ptr(5)
			},
			kind:  apperrors.KindConditionalFieldMissing,
			field: "iceberg_quantity",
		},
		{
			name:   "auction without auction number",
			mutate: func(r *PlaceOrderRequest) { r.Variety = VarietyAuction },
			kind:   apperrors.KindConditionalFieldMissing,
			field:  "auction_number",
		},
		{
			name:   "tag too long",
			mutate: func(r *PlaceOrderRequest) { r.Tag = ptr("this-tag-is-far-too-long") },
			kind:   apperrors.KindOutOfRange,
			field:  "tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPlaceOrder()
			tt.mutate(&req)

			err := req.Validate()
			if tt.kind == "" {
				assert.NoError(t, err)
			} else {
				requireValidationError(t, err, tt.kind, tt.field)
			}

			// Validation is deterministic: a second pass agrees.
			err2 := req.Validate()
			if err == nil {
				assert.NoError(t, err2)
			} else {
				assert.Equal(t, err.Error(), err2.Error())
			}
		})
	}
}

func TestModifyOrderRequestValidate(t *testing.T) {
	req := ModifyOrderRequest{
		Variety: VarietyRegular,
		OrderID: "240830000012345",
	}
	assert.NoError(t, req.Validate())

	req.OrderID = ""
	requireValidationError(t, req.Validate(), apperrors.KindMissingRequiredField, "order_id")

	req.OrderID = "240830000012345"
	req.Price = ptr(-10.0)
	requireValidationError(t, req.Validate(), apperrors.KindOutOfRange, "price")
}

func TestConvertPositionRequestValidate(t *testing.T) {
	req := ConvertPositionRequest{
		Exchange:        NSE,
		TradingSymbol:   "INFY",
		TransactionType: TransactionBuy,
		PositionType:    PositionDay,
		Quantity:        10,
		OldProduct:      ProductMIS,
		NewProduct:      ProductCNC,
	}
	assert.NoError(t, req.Validate())

	req.PositionType = "intraday"
	requireValidationError(t, req.Validate(), apperrors.KindInvalidEnumValue, "position_type")

	req.PositionType = PositionDay
	req.NewProduct = ""
	requireValidationError(t, req.Validate(), apperrors.KindMissingRequiredField, "new_product")
}

func gttLeg(price float64) GTTOrderParams {
	return GTTOrderParams{
		TransactionType: TransactionSell,
		Quantity:        10,
		OrderType:       OrderTypeLimit,
		Product:         ProductCNC,
		Price:           price,
	}
}

func TestPlaceGTTRequestValidate(t *testing.T) {
	single := PlaceGTTRequest{
		TriggerType:   GTTTypeSingle,
		TradingSymbol: "INFY",
		Exchange:      NSE,
		TriggerValues: []float64{1600},
		LastPrice:     1520,
		Orders:        []GTTOrderParams{gttLeg(1600)},
	}
	assert.NoError(t, single.Validate())

	twoLeg := single
	twoLeg.TriggerType = GTTTypeTwoLeg
	twoLeg.TriggerValues = []float64{1400, 1600}
	twoLeg.Orders = []GTTOrderParams{gttLeg(1400), gttLeg(1600)}
	assert.NoError(t, twoLeg.Validate())

	t.Run("single with two trigger values", func(t *testing.T) {
		req := single
		req.TriggerValues = []float64{1400, 1600}
		requireValidationError(t, req.Validate(), apperrors.KindLengthMismatch, "trigger_values")
	})

	t.Run("two-leg with one order", func(t *testing.T) {
		req := twoLeg
		req.Orders = []GTTOrderParams{gttLeg(1600)}
		requireValidationError(t, req.Validate(), apperrors.KindLengthMismatch, "orders")
	})

	t.Run("leg missing product", func(t *testing.T) {
		req := single
		leg := gttLeg(1600)
		leg.Product = ""
		req.Orders = []GTTOrderParams{leg}
		requireValidationError(t, req.Validate(), apperrors.KindMissingRequiredField, "orders[0].product")
	})

	// The broker's trigger carries one transaction type and product and
	// fires legs as LIMIT orders; anything else must be rejected, never
	// quietly reshaped.
	t.Run("non-limit leg", func(t *testing.T) {
		req := single
		leg := gttLeg(1600)
		leg.OrderType = OrderTypeMarket
		req.Orders = []GTTOrderParams{leg}
		requireValidationError(t, req.Validate(), apperrors.KindInvalidEnumValue, "orders[0].order_type")
	})

	t.Run("legs with mixed transaction types", func(t *testing.T) {
		req := twoLeg
		buy := gttLeg(1600)
		buy.TransactionType = TransactionBuy
		req.Orders = []GTTOrderParams{gttLeg(1400), buy}
		requireValidationError(t, req.Validate(), apperrors.KindOutOfRange, "orders[1].transaction_type")
	})

	t.Run("legs with mixed products", func(t *testing.T) {
		req := twoLeg
		mis := gttLeg(1600)
		mis.Product = ProductMIS
		req.Orders = []GTTOrderParams{gttLeg(1400), mis}
		requireValidationError(t, req.Validate(), apperrors.KindOutOfRange, "orders[1].product")
	})

	t.Run("second leg differing in every field", func(t *testing.T) {
		req := twoLeg
		other := GTTOrderParams{
			TransactionType: TransactionBuy,
			Quantity:        10,
			OrderType:       OrderTypeMarket,
			Product:         ProductMIS,
			Price:           1600,
		}
		req.Orders = []GTTOrderParams{gttLeg(1400), other}
		var verr *apperrors.ValidationError
		require.ErrorAs(t, req.Validate(), &verr)
	})
}

func TestModifyGTTRequestValidate(t *testing.T) {
	req := ModifyGTTRequest{
		TriggerID:     "12345",
		TriggerType:   GTTTypeSingle,
		TradingSymbol: "INFY",
		Exchange:      NSE,
		TriggerValues: []float64{1600},
		LastPrice:     1520,
		Orders:        []GTTOrderParams{gttLeg(1600)},
	}
	assert.NoError(t, req.Validate())

	req.TriggerID = ""
	requireValidationError(t, req.Validate(), apperrors.KindMissingRequiredField, "trigger_id")
}

func TestBasketMarginRequestValidate(t *testing.T) {
	req := BasketMarginRequest{
		Orders: []PlaceOrderRequest{validPlaceOrder()},
	}
	assert.NoError(t, req.Validate())

	t.Run("empty basket", func(t *testing.T) {
		req := BasketMarginRequest{Orders: []PlaceOrderRequest{}}
		requireValidationError(t, req.Validate(), apperrors.KindMissingRequiredField, "orders")
	})

	t.Run("conditional rules apply inside the basket", func(t *testing.T) {
		bad := validPlaceOrder()
		bad.OrderType = OrderTypeLimit // no price
		req := BasketMarginRequest{Orders: []PlaceOrderRequest{validPlaceOrder(), bad}}
		requireValidationError(t, req.Validate(), apperrors.KindConditionalFieldMissing, "price")
	})

	t.Run("invalid mode", func(t *testing.T) {
		req := BasketMarginRequest{
			Orders: []PlaceOrderRequest{validPlaceOrder()},
			Mode:   ptr("verbose"),
		}
		requireValidationError(t, req.Validate(), apperrors.KindInvalidEnumValue, "mode")
	})
}

func TestHistoricalDataRequestValidate(t *testing.T) {
	req := HistoricalDataRequest{
		InstrumentToken: 408065,
		FromDate:        "2024-01-01",
		ToDate:          "2024-01-31",
		Interval:        IntervalDay,
	}
	assert.NoError(t, req.Validate())

	t.Run("datetime layout", func(t *testing.T) {
		req := req
		req.FromDate = "2024-01-01 09:15:00"
		req.ToDate = "2024-01-01 15:30:00"
		req.Interval = Interval5Minute
		assert.NoError(t, req.Validate())
	})

	t.Run("unparseable date", func(t *testing.T) {
		req := req
		req.FromDate = "01/01/2024"
		requireValidationError(t, req.Validate(), apperrors.KindOutOfRange, "from_date")
	})

	t.Run("range reversed", func(t *testing.T) {
		req := req
		req.FromDate = "2024-02-01"
		req.ToDate = "2024-01-01"
		requireValidationError(t, req.Validate(), apperrors.KindOutOfRange, "to_date")
	})

	t.Run("unknown interval", func(t *testing.T) {
		req := req
		req.Interval = "2minute"
		requireValidationError(t, req.Validate(), apperrors.KindInvalidEnumValue, "interval")
	})
}

func TestDecodePlaceOrderRequest(t *testing.T) {
	args := map[string]interface{}{
		"variety":          "regular",
		"exchange":         "NSE",
		"tradingsymbol":    "INFY",
		"transaction_type": "BUY",
		"quantity":         float64(10), // JSON numbers arrive as float64
		"product":          "CNC",
		"order_type":       "LIMIT",
		"price":            1520.5,
	}

	req, err := DecodePlaceOrderRequest(args)
	require.NoError(t, err)
	assert.Equal(t, VarietyRegular, req.Variety)
	assert.Equal(t, 10, req.Quantity)
	require.NotNil(t, req.Price)
	assert.Equal(t, 1520.5, *req.Price)
	assert.Nil(t, req.TriggerPrice)
	assert.Nil(t, req.Validity)

	t.Run("missing required field", func(t *testing.T) {
		bad := map[string]interface{}{"variety": "regular"}
		_, err := DecodePlaceOrderRequest(bad)
		requireValidationError(t, err, apperrors.KindMissingRequiredField, "exchange")
	})

	// Weak typing converts float64 to int; a fractional value must be
	// rejected, not truncated into a different quantity.
	t.Run("fractional quantity rejected", func(t *testing.T) {
		bad := map[string]interface{}{
			"variety":          "regular",
			"exchange":         "NSE",
			"tradingsymbol":    "INFY",
			"transaction_type": "BUY",
			"quantity":         10.7,
			"product":          "CNC",
			"order_type":       "MARKET",
		}
		_, err := DecodePlaceOrderRequest(bad)
		require.Error(t, err)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, apperrors.KindOutOfRange, verr.Kind)
		assert.Contains(t, verr.Message, "quantity")
		assert.Contains(t, verr.Message, "whole number")
	})

	t.Run("fractional optional int rejected", func(t *testing.T) {
		bad := map[string]interface{}{
			"variety":            "regular",
			"exchange":           "NSE",
			"tradingsymbol":      "INFY",
			"transaction_type":   "BUY",
			"quantity":           float64(10),
			"product":            "CNC",
			"order_type":         "MARKET",
			"disclosed_quantity": 2.5,
		}
		_, err := DecodePlaceOrderRequest(bad)
		require.Error(t, err)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "disclosed_quantity")
	})

	t.Run("whole float accepted", func(t *testing.T) {
		args := map[string]interface{}{
			"variety":          "regular",
			"exchange":         "NSE",
			"tradingsymbol":    "INFY",
			"transaction_type": "BUY",
			"quantity":         10.0,
			"product":          "CNC",
			"order_type":       "MARKET",
		}
		req, err := DecodePlaceOrderRequest(args)
		require.NoError(t, err)
		assert.Equal(t, 10, req.Quantity)
	})
}

func TestDecodePlaceGTTRequest(t *testing.T) {
	args := map[string]interface{}{
		"trigger_type":   "two-leg",
		"tradingsymbol":  "INFY",
		"exchange":       "NSE",
		"trigger_values": []interface{}{1400.0, 1600.0},
		"last_price":     1520.0,
		"orders": []interface{}{
			map[string]interface{}{
				"transaction_type": "SELL",
				"quantity":         float64(10),
				"order_type":       "LIMIT",
				"product":          "CNC",
				"price":            1400.0,
			},
			map[string]interface{}{
				"transaction_type": "SELL",
				"quantity":         float64(10),
				"order_type":       "LIMIT",
				"product":          "CNC",
				"price":            1600.0,
			},
		},
	}

	req, err := DecodePlaceGTTRequest(args)
	require.NoError(t, err)
	assert.Equal(t, GTTTypeTwoLeg, req.TriggerType)
	require.Len(t, req.Orders, 2)
	assert.Equal(t, 1400.0, req.Orders[0].Price)
	assert.Equal(t, 1600.0, req.Orders[1].Price)
}
