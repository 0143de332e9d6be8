package broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"kite-mcp-gateway/internal/errors"
)

// Kite implements Client on top of the Kite Connect HTTP API. The
// access token is process-wide session state: it must be set once via
// GenerateSession/SetAccessToken before any other call, and is shared
// read-only by concurrent callers afterwards.
type Kite struct {
	client    *kiteconnect.Client
	apiKey    string
	apiSecret string

	mu            sync.RWMutex
	accessToken   string
	authenticated bool
}

// Config holds Kite Connect credentials, read once at process start.
type Config struct {
	APIKey    string
	APISecret string
}

// NewKite creates a new Kite Connect broker client.
func NewKite(cfg Config) *Kite {
	return &Kite{
		client:    kiteconnect.New(cfg.APIKey),
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
	}
}

// LoginURL returns the Kite Connect OAuth login URL.
func (k *Kite) LoginURL() string {
	return k.client.GetLoginURL()
}

// GenerateSession exchanges a request token for an access token and
// activates it on the underlying client.
func (k *Kite) GenerateSession(ctx context.Context, requestToken string) (kiteconnect.UserSession, error) {
	session, err := k.client.GenerateSession(requestToken, k.apiSecret)
	if err != nil {
		return kiteconnect.UserSession{}, fmt.Errorf("failed to generate session: %w", err)
	}
	k.SetAccessToken(session.AccessToken)
	return session, nil
}

// SetAccessToken activates an access token on the underlying client.
func (k *Kite) SetAccessToken(token string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.accessToken = token
	k.authenticated = token != ""
	k.client.SetAccessToken(token)
}

// Authenticated reports whether an access token has been set.
func (k *Kite) Authenticated() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.authenticated
}

func (k *Kite) ready() error {
	if !k.Authenticated() {
		return errors.ErrNotAuthenticated
	}
	return nil
}

// Orders fetches the day's orders.
func (k *Kite) Orders(ctx context.Context) ([]kiteconnect.Order, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetOrders()
}

// Trades fetches the day's trades.
func (k *Kite) Trades(ctx context.Context) ([]kiteconnect.Trade, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetTrades()
}

// Positions fetches day and net positions.
func (k *Kite) Positions(ctx context.Context) (kiteconnect.Positions, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.Positions{}, err
	}
	return k.client.GetPositions()
}

// Holdings fetches delivery holdings.
func (k *Kite) Holdings(ctx context.Context) (kiteconnect.Holdings, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetHoldings()
}

// Margins fetches account-wide margins.
func (k *Kite) Margins(ctx context.Context) (kiteconnect.AllMargins, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.AllMargins{}, err
	}
	return k.client.GetUserMargins()
}

// SegmentMargins fetches margins for one segment.
func (k *Kite) SegmentMargins(ctx context.Context, segment string) (kiteconnect.Margins, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.Margins{}, err
	}
	return k.client.GetUserSegmentMargins(segment)
}

// Profile fetches the user profile.
func (k *Kite) Profile(ctx context.Context) (kiteconnect.UserProfile, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.UserProfile{}, err
	}
	return k.client.GetUserProfile()
}

// MFHoldings fetches mutual fund holdings.
func (k *Kite) MFHoldings(ctx context.Context) (kiteconnect.MFHoldings, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetMFHoldings()
}

// PlaceOrder places a new order.
func (k *Kite) PlaceOrder(ctx context.Context, variety string, params kiteconnect.OrderParams) (kiteconnect.OrderResponse, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.OrderResponse{}, err
	}
	return k.client.PlaceOrder(variety, params)
}

// ModifyOrder modifies an open order.
func (k *Kite) ModifyOrder(ctx context.Context, variety, orderID string, params kiteconnect.OrderParams) (kiteconnect.OrderResponse, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.OrderResponse{}, err
	}
	return k.client.ModifyOrder(variety, orderID, params)
}

// CancelOrder cancels an open order.
func (k *Kite) CancelOrder(ctx context.Context, variety, orderID string, parentOrderID *string) (kiteconnect.OrderResponse, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.OrderResponse{}, err
	}
	return k.client.CancelOrder(variety, orderID, parentOrderID)
}

// ConvertPosition converts a position's product type.
func (k *Kite) ConvertPosition(ctx context.Context, params kiteconnect.ConvertPositionParams) (bool, error) {
	if err := k.ready(); err != nil {
		return false, err
	}
	return k.client.ConvertPosition(params)
}

// OrderHistory fetches the state transitions of one order.
func (k *Kite) OrderHistory(ctx context.Context, orderID string) ([]kiteconnect.Order, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetOrderHistory(orderID)
}

// OrderTrades fetches the trades generated by one order.
func (k *Kite) OrderTrades(ctx context.Context, orderID string) ([]kiteconnect.Trade, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetOrderTrades(orderID)
}

// PlaceGTT places a new GTT trigger.
func (k *Kite) PlaceGTT(ctx context.Context, params kiteconnect.GTTParams) (kiteconnect.GTTResponse, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.GTTResponse{}, err
	}
	return k.client.PlaceGTT(params)
}

// ModifyGTT replaces an existing GTT trigger.
func (k *Kite) ModifyGTT(ctx context.Context, triggerID int, params kiteconnect.GTTParams) (kiteconnect.GTTResponse, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.GTTResponse{}, err
	}
	return k.client.ModifyGTT(triggerID, params)
}

// DeleteGTT deletes a GTT trigger.
func (k *Kite) DeleteGTT(ctx context.Context, triggerID int) (kiteconnect.GTTResponse, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.GTTResponse{}, err
	}
	return k.client.DeleteGTT(triggerID)
}

// GTTs fetches all GTT triggers.
func (k *Kite) GTTs(ctx context.Context) (kiteconnect.GTTs, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetGTTs()
}

// OrderMargins calculates margins for individual orders.
func (k *Kite) OrderMargins(ctx context.Context, params kiteconnect.GetMarginParams) ([]kiteconnect.OrderMargins, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetOrderMargins(params)
}

// BasketMargins calculates the aggregate margin for a basket of orders.
func (k *Kite) BasketMargins(ctx context.Context, params kiteconnect.GetBasketParams) (kiteconnect.BasketMargins, error) {
	if err := k.ready(); err != nil {
		return kiteconnect.BasketMargins{}, err
	}
	return k.client.GetBasketMargins(params)
}

// Instruments fetches the full instrument dump across exchanges.
func (k *Kite) Instruments(ctx context.Context) (kiteconnect.Instruments, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetInstruments()
}

// InstrumentsByExchange fetches the instrument dump for one exchange.
func (k *Kite) InstrumentsByExchange(ctx context.Context, exchange string) (kiteconnect.Instruments, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetInstrumentsByExchange(exchange)
}

// Quote fetches full quotes for the given instruments.
func (k *Kite) Quote(ctx context.Context, instruments ...string) (kiteconnect.Quote, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetQuote(instruments...)
}

// OHLC fetches OHLC snapshots for the given instruments.
func (k *Kite) OHLC(ctx context.Context, instruments ...string) (kiteconnect.QuoteOHLC, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetOHLC(instruments...)
}

// LTP fetches last traded prices for the given instruments.
func (k *Kite) LTP(ctx context.Context, instruments ...string) (kiteconnect.QuoteLTP, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetLTP(instruments...)
}

// HistoricalData fetches candles for one instrument. Ordering is
// whatever the broker returned.
func (k *Kite) HistoricalData(ctx context.Context, token int, interval string, from, to time.Time, continuous, oi bool) ([]kiteconnect.HistoricalData, error) {
	if err := k.ready(); err != nil {
		return nil, err
	}
	return k.client.GetHistoricalData(token, interval, from, to, continuous, oi)
}

// Ensure Kite implements the Client interface
var _ Client = (*Kite)(nil)
