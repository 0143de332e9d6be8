package gateway

import (
	"context"
	"strings"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"kite-mcp-gateway/internal/errors"
	"kite-mcp-gateway/internal/models"
)

func checkInstruments(instruments []string) error {
	if len(instruments) == 0 {
		return errors.NewValidationError(errors.KindMissingRequiredField, "instruments", nil, "is required")
	}
	return nil
}

// Quote returns full market quotes keyed by exchange:tradingsymbol,
// exactly as the broker returned them.
func (g *Gateway) Quote(ctx context.Context, instruments []string) (kiteconnect.Quote, error) {
	if err := checkInstruments(instruments); err != nil {
		return nil, err
	}
	quotes, err := g.broker.Quote(ctx, instruments...)
	if err != nil {
		return nil, g.fail("get_quote", "Failed to get quote", nil, err)
	}
	return quotes, nil
}

// OHLC returns OHLC snapshots keyed by exchange:tradingsymbol.
func (g *Gateway) OHLC(ctx context.Context, instruments []string) (kiteconnect.QuoteOHLC, error) {
	if err := checkInstruments(instruments); err != nil {
		return nil, err
	}
	ohlc, err := g.broker.OHLC(ctx, instruments...)
	if err != nil {
		return nil, g.fail("get_ohlc", "Failed to get OHLC", nil, err)
	}
	return ohlc, nil
}

// LTP returns last traded prices keyed by exchange:tradingsymbol.
func (g *Gateway) LTP(ctx context.Context, instruments []string) (kiteconnect.QuoteLTP, error) {
	if err := checkInstruments(instruments); err != nil {
		return nil, err
	}
	ltp, err := g.broker.LTP(ctx, instruments...)
	if err != nil {
		return nil, g.fail("get_ltp", "Failed to get LTP", nil, err)
	}
	return ltp, nil
}

// maxInstrumentMatches caps search output; the instrument dump runs to
// tens of thousands of rows and a broad query would otherwise flood the
// response.
const maxInstrumentMatches = 200

// SearchInstruments filters the broker's instrument dump by a
// case-insensitive substring match. filterOn picks the matched field:
// "id" (exchange:tradingsymbol, the default), "name", or
// "tradingsymbol". A non-empty exchange narrows the fetch to that
// exchange's dump.
func (g *Gateway) SearchInstruments(ctx context.Context, query, filterOn string, exchange string) ([]kiteconnect.Instrument, error) {
	if query == "" {
		return nil, errors.NewValidationError(errors.KindMissingRequiredField, "query", nil, "is required")
	}
	switch filterOn {
	case "", "id", "name", "tradingsymbol":
	default:
		return nil, errors.NewValidationError(errors.KindInvalidEnumValue, "filter_on", filterOn,
			"must be one of [id name tradingsymbol]")
	}
	if exchange != "" && !models.Exchange(exchange).Valid() {
		return nil, errors.NewValidationError(errors.KindInvalidEnumValue, "exchange", exchange,
			"must be one of [NSE BSE NFO CDS BFO MCX BCD]")
	}

	var (
		dump kiteconnect.Instruments
		err  error
	)
	if exchange != "" {
		dump, err = g.broker.InstrumentsByExchange(ctx, exchange)
	} else {
		dump, err = g.broker.Instruments(ctx)
	}
	if err != nil {
		return nil, g.fail("search_instruments", "Failed to search instruments", nil, err)
	}

	needle := strings.ToLower(query)
	matches := make([]kiteconnect.Instrument, 0)
	for _, inst := range dump {
		var haystack string
		switch filterOn {
		case "name":
			haystack = inst.Name
		case "tradingsymbol":
			haystack = inst.Tradingsymbol
		default:
			haystack = inst.Exchange + ":" + inst.Tradingsymbol
		}
		if strings.Contains(strings.ToLower(haystack), needle) {
			matches = append(matches, inst)
			if len(matches) == maxInstrumentMatches {
				break
			}
		}
	}
	return matches, nil
}

// HistoricalData returns candles for one instrument in the order the
// broker returned them. Continuity and open-interest flags pass through
// verbatim.
func (g *Gateway) HistoricalData(ctx context.Context, req *models.HistoricalDataRequest) ([]kiteconnect.HistoricalData, error) {
	from, err := req.From()
	if err != nil {
		return nil, err
	}
	to, err := req.To()
	if err != nil {
		return nil, err
	}
	candles, err := g.broker.HistoricalData(ctx, req.InstrumentToken, string(req.Interval), from, to, req.Continuous, req.OI)
	if err != nil {
		return nil, g.fail("get_historical_data", "Failed to get historical data", nil, err)
	}
	return candles, nil
}
