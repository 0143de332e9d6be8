package gateway

import "context"

// LoginURL returns the broker's OAuth login URL.
func (g *Gateway) LoginURL(ctx context.Context) string {
	return g.broker.LoginURL()
}

// SetAccessToken exchanges a request token for an access token and
// installs it as the process-wide session. Must complete before any
// other operation is invoked in this process lifetime.
func (g *Gateway) SetAccessToken(ctx context.Context, requestToken string) error {
	session, err := g.broker.GenerateSession(ctx, requestToken)
	if err != nil {
		return g.fail("set_access_token", "Failed to set access token", nil, err)
	}
	g.broker.SetAccessToken(session.AccessToken)
	g.log.Info().Str("operation", "set_access_token").Str("user_id", session.UserID).Msg("access token set")
	return nil
}
