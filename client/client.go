package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/staffsync/go-staffsync/session"
)

// defaultTimeout bounds every request when no custom http.Client is given.
const defaultTimeout = 30 * time.Second

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8000/api".
	BaseURL string

	// Store holds the session credentials. Required: the pipeline reads the
	// access token from it on every dispatch.
	Store session.Store

	// HTTPClient is used for all requests. If nil, a client with a 30s
	// timeout is used.
	HTTPClient *http.Client

	// Logger is used for structured diagnostics. If zero, logging is off.
	Logger zerolog.Logger

	// OnSessionExpired is invoked exactly once per fatal session failure
	// (refresh failed or no refresh token), after the store has been
	// cleared. This is where a frontend sends the user back to login.
	OnSessionExpired func()
}

// Client is the authenticated request pipeline for the StaffSync API.
// It attaches the current access token to every request and transparently
// recovers from an expired token by refreshing and retrying once.
//
// Methods are safe for concurrent use; independent requests may run in
// parallel and do not queue behind each other.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	store            session.Store
	logger           zerolog.Logger
	onSessionExpired func()
	refreshGroup     singleflight.Group
}

// New creates a Client.
func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, errors.New("[client.New] BaseURL is required")
	}
	if config.Store == nil {
		return nil, errors.New("[client.New] Store is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:          strings.TrimRight(config.BaseURL, "/"),
		httpClient:       httpClient,
		store:            config.Store,
		logger:           config.Logger,
		onSessionExpired: config.OnSessionExpired,
	}, nil
}

// Do dispatches a request and returns the raw 2xx response body.
//
// The access token is read from the store at dispatch time, never cached
// across calls. A 401 triggers at most one refresh-and-retry; the caller
// only ever observes the retried request's outcome, never the intermediate
// 401. Any other failure is returned as-is: transport errors come back
// wrapped, backend errors come back as *APIError.
func (c *Client) Do(ctx context.Context, request Request) ([]byte, error) {
	sess, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("[Client.Do] loading session: %w", err)
	}

	body, err := c.send(ctx, request, sess.AccessToken)
	if !isUnauthorized(err) || request.Path == refreshPath {
		return body, err
	}

	// Expired access token. Refresh once and replay the original request
	// with the fresh token; a second 401 on the replay propagates.
	c.logger.Debug().Str("path", request.Path).Msg("access token rejected, refreshing")

	newToken, refreshErr := c.refreshAccessToken(ctx)
	if refreshErr != nil {
		if errors.Is(refreshErr, ErrNoRefreshToken) {
			// Nothing to refresh with; the original 401 is the answer.
			return nil, err
		}
		return nil, refreshErr
	}

	return c.send(ctx, request, newToken)
}

// DoDecoded dispatches a request and unmarshals the envelope's data field
// into out. out may be nil for endpoints whose data is not needed.
func (c *Client) DoDecoded(ctx context.Context, request Request, out any) error {
	body, err := c.Do(ctx, request)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return DecodeData(body, out)
}

// send performs one HTTP round trip. token may be empty for unauthenticated
// requests; the backend decides whether that is permitted.
func (c *Client) send(ctx context.Context, request Request, token string) ([]byte, error) {
	var bodyReader io.Reader
	contentType := ""

	switch {
	case request.RawBody != nil:
		bodyReader = bytes.NewReader(request.RawBody)
		contentType = request.ContentType
	case request.Body != nil:
		encoded, err := json.Marshal(request.Body)
		if err != nil {
			return nil, fmt.Errorf("client: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, request.url(c.baseURL), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("client: creating request: %w", err)
	}

	for header, values := range request.Header {
		httpRequest.Header[header] = values
	}
	if contentType != "" {
		httpRequest.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		httpRequest.Header.Set("Authorization", "Bearer "+token)
	}
	httpRequest.Header.Set("X-Request-ID", uuid.New().String())

	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("client: request to %s %s failed: %w", request.Method, request.Path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("client: reading response body: %w", err)
	}

	c.logger.Debug().
		Str("method", request.Method).
		Str("path", request.Path).
		Int("status", response.StatusCode).
		Msg("api request")

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}
	return nil, newAPIError(request.Method, request.Path, response.StatusCode, responseBody)
}

func isUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
