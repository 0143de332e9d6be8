// Package broker provides the Kite Connect client collaborator used by
// the gateway operations.
package broker

import (
	"context"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"
)

// Client is the broker API surface the gateway depends on. Responses
// are kiteconnect's own types; the gateway forwards them unmodified.
// Implementations must be safe for concurrent read operations once the
// access token is set.
type Client interface {
	// Session
	LoginURL() string
	GenerateSession(ctx context.Context, requestToken string) (kiteconnect.UserSession, error)
	SetAccessToken(token string)

	// Account
	Orders(ctx context.Context) ([]kiteconnect.Order, error)
	Trades(ctx context.Context) ([]kiteconnect.Trade, error)
	Positions(ctx context.Context) (kiteconnect.Positions, error)
	Holdings(ctx context.Context) (kiteconnect.Holdings, error)
	Margins(ctx context.Context) (kiteconnect.AllMargins, error)
	SegmentMargins(ctx context.Context, segment string) (kiteconnect.Margins, error)
	Profile(ctx context.Context) (kiteconnect.UserProfile, error)
	MFHoldings(ctx context.Context) (kiteconnect.MFHoldings, error)

	// Order lifecycle
	PlaceOrder(ctx context.Context, variety string, params kiteconnect.OrderParams) (kiteconnect.OrderResponse, error)
	ModifyOrder(ctx context.Context, variety, orderID string, params kiteconnect.OrderParams) (kiteconnect.OrderResponse, error)
	CancelOrder(ctx context.Context, variety, orderID string, parentOrderID *string) (kiteconnect.OrderResponse, error)
	ConvertPosition(ctx context.Context, params kiteconnect.ConvertPositionParams) (bool, error)
	OrderHistory(ctx context.Context, orderID string) ([]kiteconnect.Order, error)
	OrderTrades(ctx context.Context, orderID string) ([]kiteconnect.Trade, error)

	// GTT lifecycle
	PlaceGTT(ctx context.Context, params kiteconnect.GTTParams) (kiteconnect.GTTResponse, error)
	ModifyGTT(ctx context.Context, triggerID int, params kiteconnect.GTTParams) (kiteconnect.GTTResponse, error)
	DeleteGTT(ctx context.Context, triggerID int) (kiteconnect.GTTResponse, error)
	GTTs(ctx context.Context) (kiteconnect.GTTs, error)

	// Margin calculators
	OrderMargins(ctx context.Context, params kiteconnect.GetMarginParams) ([]kiteconnect.OrderMargins, error)
	BasketMargins(ctx context.Context, params kiteconnect.GetBasketParams) (kiteconnect.BasketMargins, error)

	// Market data
	Instruments(ctx context.Context) (kiteconnect.Instruments, error)
	InstrumentsByExchange(ctx context.Context, exchange string) (kiteconnect.Instruments, error)
	Quote(ctx context.Context, instruments ...string) (kiteconnect.Quote, error)
	OHLC(ctx context.Context, instruments ...string) (kiteconnect.QuoteOHLC, error)
	LTP(ctx context.Context, instruments ...string) (kiteconnect.QuoteLTP, error)
	HistoricalData(ctx context.Context, token int, interval string, from, to time.Time, continuous, oi bool) ([]kiteconnect.HistoricalData, error)
}
