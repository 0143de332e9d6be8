package models

import (
	"fmt"
	"time"

	apperrors "kite-mcp-gateway/internal/errors"
)

// Request types are value objects constructed fresh per call and never
// mutated after validation. Optional fields are pointers so "not
// provided" stays distinguishable from an explicit zero; unset fields
// are never forwarded to the broker.
//
// Conditional-required rules, evaluated once after the structural pass:
//
//	price                           order_type in {LIMIT, SL}
//	trigger_price                   order_type in {SL, SL-M}
//	validity_ttl                    validity = TTL
//	iceberg_legs, iceberg_quantity  variety = iceberg
//	auction_number                  variety = auction

// PlaceOrderRequest describes a new order across all five varieties.
type PlaceOrderRequest struct {
	Variety           OrderVariety    `mapstructure:"variety" validate:"required,oneof=regular co amo iceberg auction"`
	Exchange          Exchange        `mapstructure:"exchange" validate:"required,oneof=NSE BSE NFO CDS BFO MCX BCD"`
	TradingSymbol     string          `mapstructure:"tradingsymbol" validate:"required"`
	TransactionType   TransactionType `mapstructure:"transaction_type" validate:"required,oneof=BUY SELL"`
	Quantity          int             `mapstructure:"quantity" validate:"required,gt=0"`
	Product           ProductType     `mapstructure:"product" validate:"required,oneof=MIS CNC NRML CO"`
	OrderType         OrderType       `mapstructure:"order_type" validate:"required,oneof=MARKET LIMIT SL-M SL"`
	Price             *float64        `mapstructure:"price" validate:"omitempty,gt=0"`
	Validity          *Validity       `mapstructure:"validity" validate:"omitempty,oneof=DAY IOC TTL"`
	ValidityTTL       *int            `mapstructure:"validity_ttl" validate:"omitempty,gt=0"`
	DisclosedQuantity *int            `mapstructure:"disclosed_quantity" validate:"omitempty,gte=0"`
	TriggerPrice      *float64        `mapstructure:"trigger_price" validate:"omitempty,gt=0"`
	IcebergLegs       *int            `mapstructure:"iceberg_legs" validate:"omitempty,gt=0"`
	IcebergQuantity   *int            `mapstructure:"iceberg_quantity" validate:"omitempty,gt=0"`
	AuctionNumber     *int            `mapstructure:"auction_number" validate:"omitempty,gt=0"`
	Tag               *string         `mapstructure:"tag" validate:"omitempty,max=20"`
}

// Validate checks the structural rules and conditional-field
// dependencies. The same input always yields the same outcome.
func (r *PlaceOrderRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	switch r.OrderType {
	case OrderTypeLimit, OrderTypeStopLoss:
		if r.Price == nil {
			return apperrors.NewValidationError(apperrors.KindConditionalFieldMissing, "price", nil,
				fmt.Sprintf("required for %s orders", r.OrderType))
		}
	}
	switch r.OrderType {
	case OrderTypeStopLoss, OrderTypeStopLossM:
		if r.TriggerPrice == nil {
			return apperrors.NewValidationError(apperrors.KindConditionalFieldMissing, "trigger_price", nil,
				fmt.Sprintf("required for %s orders", r.OrderType))
		}
	}
	if r.Validity != nil && *r.Validity == ValidityTTL && r.ValidityTTL == nil {
		return apperrors.NewValidationError(apperrors.KindConditionalFieldMissing, "validity_ttl", nil,
			"required for TTL validity orders")
	}
	if r.Variety == VarietyIceberg {
		if r.IcebergLegs == nil {
			return apperrors.NewValidationError(apperrors.KindConditionalFieldMissing, "iceberg_legs", nil,
				"required for iceberg orders")
		}
		if r.IcebergQuantity == nil {
			return apperrors.NewValidationError(apperrors.KindConditionalFieldMissing, "iceberg_quantity", nil,
				"required for iceberg orders")
		}
	}
	if r.Variety == VarietyAuction && r.AuctionNumber == nil {
		return apperrors.NewValidationError(apperrors.KindConditionalFieldMissing, "auction_number", nil,
			"required for auction orders")
	}
	return nil
}

// ModifyOrderRequest describes a partial update of an open order. Unset
// fields mean "leave unchanged" and are excluded from the forwarded
// parameter set.
type ModifyOrderRequest struct {
	Variety           OrderVariety `mapstructure:"variety" validate:"required,oneof=regular co amo iceberg auction"`
	OrderID           string       `mapstructure:"order_id" validate:"required"`
	ParentOrderID     *string      `mapstructure:"parent_order_id"`
	Quantity          *int         `mapstructure:"quantity" validate:"omitempty,gt=0"`
	Price             *float64     `mapstructure:"price" validate:"omitempty,gt=0"`
	OrderType         *OrderType   `mapstructure:"order_type" validate:"omitempty,oneof=MARKET LIMIT SL-M SL"`
	TriggerPrice      *float64     `mapstructure:"trigger_price" validate:"omitempty,gt=0"`
	Validity          *Validity    `mapstructure:"validity" validate:"omitempty,oneof=DAY IOC TTL"`
	DisclosedQuantity *int         `mapstructure:"disclosed_quantity" validate:"omitempty,gte=0"`
}

// Validate checks the structural rules.
func (r *ModifyOrderRequest) Validate() error {
	return validateStruct(r)
}

// ConvertPositionRequest describes a single atomic product conversion.
// All fields are required.
type ConvertPositionRequest struct {
	Exchange        Exchange        `mapstructure:"exchange" validate:"required,oneof=NSE BSE NFO CDS BFO MCX BCD"`
	TradingSymbol   string          `mapstructure:"tradingsymbol" validate:"required"`
	TransactionType TransactionType `mapstructure:"transaction_type" validate:"required,oneof=BUY SELL"`
	PositionType    PositionType    `mapstructure:"position_type" validate:"required,oneof=day overnight"`
	Quantity        int             `mapstructure:"quantity" validate:"required,gt=0"`
	OldProduct      ProductType     `mapstructure:"old_product" validate:"required,oneof=MIS CNC NRML CO"`
	NewProduct      ProductType     `mapstructure:"new_product" validate:"required,oneof=MIS CNC NRML CO"`
}

// Validate checks the structural rules.
func (r *ConvertPositionRequest) Validate() error {
	return validateStruct(r)
}

// GTTOrderParams describes one order leg of a GTT trigger. All fields
// are required. The broker's trigger contract narrows the leg shape:
// legs fire as LIMIT orders only, and every leg of a trigger shares one
// transaction type and product. Requests outside that shape are
// rejected here rather than silently rewritten on the wire.
type GTTOrderParams struct {
	TransactionType TransactionType `mapstructure:"transaction_type" validate:"required,oneof=BUY SELL"`
	Quantity        int             `mapstructure:"quantity" validate:"required,gt=0"`
	OrderType       OrderType       `mapstructure:"order_type" validate:"required,oneof=LIMIT"`
	Product         ProductType     `mapstructure:"product" validate:"required,oneof=MIS CNC NRML CO"`
	Price           float64         `mapstructure:"price" validate:"required,gt=0"`
}

// PlaceGTTRequest describes a new GTT trigger. Trigger values and order
// legs are positional pairs: one each for single, two each for two-leg.
type PlaceGTTRequest struct {
	TriggerType   GTTType          `mapstructure:"trigger_type" validate:"required,oneof=single two-leg"`
	TradingSymbol string           `mapstructure:"tradingsymbol" validate:"required"`
	Exchange      Exchange         `mapstructure:"exchange" validate:"required,oneof=NSE BSE NFO CDS BFO MCX BCD"`
	TriggerValues []float64        `mapstructure:"trigger_values" validate:"required,dive,gt=0"`
	LastPrice     float64          `mapstructure:"last_price" validate:"required,gt=0"`
	Orders        []GTTOrderParams `mapstructure:"orders" validate:"required,dive"`
}

// Validate checks the structural rules and the leg/trigger pairing.
func (r *PlaceGTTRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return checkGTTLegs(r.TriggerType, r.TriggerValues, r.Orders)
}

func checkGTTLegs(triggerType GTTType, triggerValues []float64, orders []GTTOrderParams) error {
	legs := triggerType.Legs()
	if len(triggerValues) != legs {
		return apperrors.NewValidationError(apperrors.KindLengthMismatch, "trigger_values", len(triggerValues),
			fmt.Sprintf("%s triggers require exactly %d trigger values", triggerType, legs))
	}
	if len(orders) != legs {
		return apperrors.NewValidationError(apperrors.KindLengthMismatch, "orders", len(orders),
			fmt.Sprintf("%s triggers require exactly %d order legs", triggerType, legs))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].TransactionType != orders[0].TransactionType {
			return apperrors.NewValidationError(apperrors.KindOutOfRange,
				fmt.Sprintf("orders[%d].transaction_type", i), orders[i].TransactionType,
				"all legs of a trigger must share one transaction type")
		}
		if orders[i].Product != orders[0].Product {
			return apperrors.NewValidationError(apperrors.KindOutOfRange,
				fmt.Sprintf("orders[%d].product", i), orders[i].Product,
				"all legs of a trigger must share one product")
		}
	}
	return nil
}

// ModifyGTTRequest is a full replacement of an existing trigger: the
// PlaceGTTRequest fields plus the trigger being replaced.
type ModifyGTTRequest struct {
	TriggerID     string           `mapstructure:"trigger_id" validate:"required"`
	TriggerType   GTTType          `mapstructure:"trigger_type" validate:"required,oneof=single two-leg"`
	TradingSymbol string           `mapstructure:"tradingsymbol" validate:"required"`
	Exchange      Exchange         `mapstructure:"exchange" validate:"required,oneof=NSE BSE NFO CDS BFO MCX BCD"`
	TriggerValues []float64        `mapstructure:"trigger_values" validate:"required,dive,gt=0"`
	LastPrice     float64          `mapstructure:"last_price" validate:"required,gt=0"`
	Orders        []GTTOrderParams `mapstructure:"orders" validate:"required,dive"`
}

// Validate checks the structural rules and the leg/trigger pairing.
func (r *ModifyGTTRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return checkGTTLegs(r.TriggerType, r.TriggerValues, r.Orders)
}

// BasketMarginRequest describes a margin calculation across a set of
// proposed orders. ConsiderPositions defaults to true when unset.
type BasketMarginRequest struct {
	Orders            []PlaceOrderRequest `mapstructure:"orders" validate:"required"`
	ConsiderPositions *bool               `mapstructure:"consider_positions"`
	Mode              *string             `mapstructure:"mode" validate:"omitempty,oneof=compact"`
}

// Validate checks the structural rules and every contained order,
// including its conditional-field dependencies.
func (r *BasketMarginRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if len(r.Orders) == 0 {
		return apperrors.NewValidationError(apperrors.KindMissingRequiredField, "orders", nil, "is required")
	}
	for i := range r.Orders {
		if err := r.Orders[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Date layouts accepted for historical data requests, tried in order.
var dateLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

// HistoricalDataRequest describes a candle fetch for one instrument.
type HistoricalDataRequest struct {
	InstrumentToken int           `mapstructure:"instrument_token" validate:"required,gt=0"`
	FromDate        string        `mapstructure:"from_date" validate:"required"`
	ToDate          string        `mapstructure:"to_date" validate:"required"`
	Interval        ChartInterval `mapstructure:"interval" validate:"required,oneof=minute day 3minute 5minute 10minute 15minute 30minute 60minute"`
	Continuous      bool          `mapstructure:"continuous"`
	OI              bool          `mapstructure:"oi"`
}

// Validate checks the structural rules and that both dates parse and
// are ordered.
func (r *HistoricalDataRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	from, err := r.From()
	if err != nil {
		return err
	}
	to, err := r.To()
	if err != nil {
		return err
	}
	if to.Before(from) {
		return apperrors.NewValidationError(apperrors.KindOutOfRange, "to_date", r.ToDate,
			"must not be before from_date")
	}
	return nil
}

// From returns the parsed start of the requested range.
func (r *HistoricalDataRequest) From() (time.Time, error) {
	return parseDate("from_date", r.FromDate)
}

// To returns the parsed end of the requested range.
func (r *HistoricalDataRequest) To() (time.Time, error) {
	return parseDate("to_date", r.ToDate)
}

func parseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(apperrors.KindOutOfRange, field, value,
		fmt.Sprintf("must match one of %v", dateLayouts))
}
