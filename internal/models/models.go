// Package models provides the domain model for trading instructions:
// closed string-valued enumerations and structured request types, each
// matching the broker's wire vocabulary exactly. Enum matching is
// case-sensitive; anything outside the declared set is rejected at the
// boundary before a broker call can happen.
package models

// OrderVariety represents the order submission mode.
type OrderVariety string

const (
	VarietyRegular OrderVariety = "regular"
	VarietyCO      OrderVariety = "co"      // Cover order
	VarietyAMO     OrderVariety = "amo"     // After-market order
	VarietyIceberg OrderVariety = "iceberg" // Split into disclosed legs
	VarietyAuction OrderVariety = "auction"
)

// Valid reports whether the variety is in the closed set.
func (v OrderVariety) Valid() bool {
	switch v {
	case VarietyRegular, VarietyCO, VarietyAMO, VarietyIceberg, VarietyAuction:
		return true
	}
	return false
}

// Exchange represents a stock exchange.
type Exchange string

const (
	NSE Exchange = "NSE"
	BSE Exchange = "BSE"
	NFO Exchange = "NFO" // F&O
	CDS Exchange = "CDS" // Currency
	BFO Exchange = "BFO" // BSE F&O
	MCX Exchange = "MCX" // Commodity
	BCD Exchange = "BCD" // BSE currency
)

// Valid reports whether the exchange is in the closed set.
func (e Exchange) Valid() bool {
	switch e {
	case NSE, BSE, NFO, CDS, BFO, MCX, BCD:
		return true
	}
	return false
}

// TransactionType represents the side of an order.
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// Valid reports whether the transaction type is in the closed set.
func (t TransactionType) Valid() bool {
	return t == TransactionBuy || t == TransactionSell
}

// ProductType represents the margin and settlement treatment of a position.
type ProductType string

const (
	ProductMIS  ProductType = "MIS"  // Intraday
	ProductCNC  ProductType = "CNC"  // Delivery
	ProductNRML ProductType = "NRML" // F&O carry-forward
	ProductCO   ProductType = "CO"   // Cover order
)

// Valid reports whether the product type is in the closed set.
func (p ProductType) Valid() bool {
	switch p {
	case ProductMIS, ProductCNC, ProductNRML, ProductCO:
		return true
	}
	return false
}

// OrderType represents the pricing mode of an order.
type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStopLossM OrderType = "SL-M"
	OrderTypeStopLoss  OrderType = "SL"
)

// Valid reports whether the order type is in the closed set.
func (o OrderType) Valid() bool {
	switch o {
	case OrderTypeMarket, OrderTypeLimit, OrderTypeStopLossM, OrderTypeStopLoss:
		return true
	}
	return false
}

// Validity represents how long an order stays live.
type Validity string

const (
	ValidityDay Validity = "DAY"
	ValidityIOC Validity = "IOC"
	ValidityTTL Validity = "TTL" // Valid for validity_ttl minutes
)

// Valid reports whether the validity is in the closed set.
func (v Validity) Valid() bool {
	switch v {
	case ValidityDay, ValidityIOC, ValidityTTL:
		return true
	}
	return false
}

// PositionType represents the bucket a position is converted within.
type PositionType string

const (
	PositionDay       PositionType = "day"
	PositionOvernight PositionType = "overnight"
)

// Valid reports whether the position type is in the closed set.
func (p PositionType) Valid() bool {
	return p == PositionDay || p == PositionOvernight
}

// GTTType represents the trigger mode of a GTT order.
type GTTType string

const (
	GTTTypeSingle GTTType = "single"
	GTTTypeTwoLeg GTTType = "two-leg" // One-cancels-other
)

// Valid reports whether the GTT type is in the closed set.
func (g GTTType) Valid() bool {
	return g == GTTTypeSingle || g == GTTTypeTwoLeg
}

// Legs returns the number of trigger values and order legs the GTT type
// requires.
func (g GTTType) Legs() int {
	if g == GTTTypeTwoLeg {
		return 2
	}
	return 1
}

// GTTStatus represents the broker-side lifecycle state of a GTT trigger.
// Informational only; this system never sets it.
type GTTStatus string

const (
	GTTStatusActive    GTTStatus = "active"
	GTTStatusTriggered GTTStatus = "triggered"
	GTTStatusDisabled  GTTStatus = "disabled"
	GTTStatusExpired   GTTStatus = "expired"
	GTTStatusCancelled GTTStatus = "cancelled"
	GTTStatusRejected  GTTStatus = "rejected"
	GTTStatusDeleted   GTTStatus = "deleted"
)

// Valid reports whether the status is in the closed set.
func (s GTTStatus) Valid() bool {
	switch s {
	case GTTStatusActive, GTTStatusTriggered, GTTStatusDisabled, GTTStatusExpired,
		GTTStatusCancelled, GTTStatusRejected, GTTStatusDeleted:
		return true
	}
	return false
}

// ChartInterval represents a historical candle interval.
type ChartInterval string

const (
	IntervalMinute   ChartInterval = "minute"
	IntervalDay      ChartInterval = "day"
	Interval3Minute  ChartInterval = "3minute"
	Interval5Minute  ChartInterval = "5minute"
	Interval10Minute ChartInterval = "10minute"
	Interval15Minute ChartInterval = "15minute"
	Interval30Minute ChartInterval = "30minute"
	Interval60Minute ChartInterval = "60minute"
)

// Valid reports whether the interval is in the closed set.
func (c ChartInterval) Valid() bool {
	switch c {
	case IntervalMinute, IntervalDay, Interval3Minute, Interval5Minute,
		Interval10Minute, Interval15Minute, Interval30Minute, Interval60Minute:
		return true
	}
	return false
}
