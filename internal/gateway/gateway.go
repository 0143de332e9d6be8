// Package gateway exposes the brokerage's trading operations as
// strongly-typed calls. Each operation validates its request locally,
// invokes the broker client exactly once, and returns the broker's
// payload unmodified on success or a single GatewayError on failure.
// No retry is attempted; broker failures (margin shortfall, closed
// markets) are not safe to retry blindly.
//
// Operations take no locks and hold no per-call state; the only shared
// state is the broker session token, set once during authentication.
package gateway

import (
	"github.com/rs/zerolog"

	"kite-mcp-gateway/internal/broker"
	"kite-mcp-gateway/internal/errors"
)

// Gateway bundles the broker client with a logger. Safe for concurrent
// use once the access token is set.
type Gateway struct {
	broker broker.Client
	log    zerolog.Logger
}

// New creates a Gateway on top of the given broker client.
func New(client broker.Client, logger zerolog.Logger) *Gateway {
	return &Gateway{
		broker: client,
		log:    logger,
	}
}

// fail logs a broker failure and wraps it into the uniform GatewayError
// shape. params is nil for operations that carry no diagnosable
// parameter set.
func (g *Gateway) fail(op, message string, params interface{}, err error) *errors.GatewayError {
	g.log.Error().Str("operation", op).Err(err).Msg(message)
	return errors.NewGatewayError(op, message, params, err)
}
