package client

import (
	"context"
	"fmt"
	"net/http"
)

// refreshPath is the one endpoint the pipeline itself depends on. A 401 from
// this path is never retried; it is a fatal session failure.
const refreshPath = "/auth/refresh"

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token and persists it. Concurrent callers are coalesced: when several
// in-flight requests hit 401 at once, a single refresh call serves all of
// them (the waiters share its result). The store's writes are
// last-write-wins, so correctness does not depend on the coalescing.
//
// Any failure here is fatal for the session: the store is cleared and the
// expiry hook fires exactly once per coalesced attempt.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	value, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		token, err := c.doRefresh(ctx)
		if err != nil {
			c.expireSession()
			return nil, err
		}
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

func (c *Client) doRefresh(ctx context.Context) (string, error) {
	sess, err := c.store.Load()
	if err != nil {
		return "", fmt.Errorf("[Client.refresh] loading session: %w", err)
	}
	if sess.RefreshToken == "" {
		return "", ErrNoRefreshToken
	}

	// The refresh call goes out bare: no bearer token, and no 401 recovery
	// of its own.
	body, err := c.send(ctx, Request{
		Method: http.MethodPost,
		Path:   refreshPath,
		Body:   refreshRequest{RefreshToken: sess.RefreshToken},
	}, "")
	if err != nil {
		return "", fmt.Errorf("[Client.refresh] refresh call failed: %w", err)
	}

	var refreshed refreshResponse
	if err := DecodeData(body, &refreshed); err != nil {
		return "", fmt.Errorf("[Client.refresh] %w", err)
	}
	if refreshed.AccessToken == "" {
		return "", fmt.Errorf("[Client.refresh] refresh response carries no access token")
	}

	// Only the access token changes; the refresh token and profile stay.
	if err := c.store.SetAccessToken(refreshed.AccessToken); err != nil {
		return "", fmt.Errorf("[Client.refresh] storing refreshed token: %w", err)
	}

	c.logger.Debug().Msg("access token refreshed")
	return refreshed.AccessToken, nil
}

// expireSession destroys the local session and notifies the frontend. The
// clear is unconditional; a failed refresh means re-authentication is the
// only way forward.
func (c *Client) expireSession() {
	if err := c.store.Clear(); err != nil {
		c.logger.Error().Err(err).Msg("clearing expired session failed")
	}
	c.logger.Warn().Msg("session expired, re-authentication required")
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
