package gateway

import (
	"context"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"
)

// Orders returns the day's orders.
func (g *Gateway) Orders(ctx context.Context) ([]kiteconnect.Order, error) {
	orders, err := g.broker.Orders(ctx)
	if err != nil {
		return nil, g.fail("get_orders", "Failed to get orders", nil, err)
	}
	return orders, nil
}

// Trades returns the day's trades.
func (g *Gateway) Trades(ctx context.Context) ([]kiteconnect.Trade, error) {
	trades, err := g.broker.Trades(ctx)
	if err != nil {
		return nil, g.fail("get_trades", "Failed to get trades", nil, err)
	}
	return trades, nil
}

// Positions returns day and net positions.
func (g *Gateway) Positions(ctx context.Context) (kiteconnect.Positions, error) {
	positions, err := g.broker.Positions(ctx)
	if err != nil {
		return kiteconnect.Positions{}, g.fail("get_positions", "Failed to get positions", nil, err)
	}
	return positions, nil
}

// Holdings returns delivery holdings.
func (g *Gateway) Holdings(ctx context.Context) (kiteconnect.Holdings, error) {
	holdings, err := g.broker.Holdings(ctx)
	if err != nil {
		return nil, g.fail("get_holdings", "Failed to get holdings", nil, err)
	}
	return holdings, nil
}

// Margins returns account margins: account-wide when segment is empty,
// otherwise for the one segment.
func (g *Gateway) Margins(ctx context.Context, segment string) (interface{}, error) {
	if segment == "" {
		margins, err := g.broker.Margins(ctx)
		if err != nil {
			return nil, g.fail("get_margins", "Failed to get margins", nil, err)
		}
		return margins, nil
	}
	margins, err := g.broker.SegmentMargins(ctx, segment)
	if err != nil {
		return nil, g.fail("get_margins", "Failed to get margins", nil, err)
	}
	return margins, nil
}

// InstrumentMargins returns margins for one segment. Kept as a distinct
// operation even though it reuses the segment-margins endpoint backing
// Margins; the broker API draws no finer distinction.
func (g *Gateway) InstrumentMargins(ctx context.Context, segment string) (kiteconnect.Margins, error) {
	margins, err := g.broker.SegmentMargins(ctx, segment)
	if err != nil {
		return kiteconnect.Margins{}, g.fail("get_instrument_margins", "Failed to get instrument margins", nil, err)
	}
	return margins, nil
}

// Profile returns the user profile.
func (g *Gateway) Profile(ctx context.Context) (kiteconnect.UserProfile, error) {
	profile, err := g.broker.Profile(ctx)
	if err != nil {
		return kiteconnect.UserProfile{}, g.fail("get_profile", "Failed to get profile", nil, err)
	}
	return profile, nil
}

// MFHoldings returns mutual fund holdings.
func (g *Gateway) MFHoldings(ctx context.Context) (kiteconnect.MFHoldings, error) {
	holdings, err := g.broker.MFHoldings(ctx)
	if err != nil {
		return nil, g.fail("get_mf_holdings", "Failed to get mutual fund holdings", nil, err)
	}
	return holdings, nil
}
