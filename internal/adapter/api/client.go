// Package api implements the Gateway: the single choke point for all
// network calls, with uniform envelope decoding and auth handling.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"crescent-wallet/internal/core/ports"
	"crescent-wallet/pkg/apperror"
	"crescent-wallet/pkg/envelope"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client implements ports.Gateway over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
	creds   ports.CredentialStore
	log     zerolog.Logger

	mu             sync.RWMutex
	onUnauthorized ports.UnauthorizedFunc
}

var _ ports.Gateway = (*Client)(nil)

// NewClient creates a Gateway against baseURL. A zero timeout leaves calls
// uncancelled apart from the caller's context.
func NewClient(baseURL string, timeout time.Duration, creds ports.CredentialStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With().Str("component", "gateway").Logger(),
	}
}

// OnUnauthorized registers the single unauthorized subscriber. The
// composition root uses it to perform the session teardown; the gateway
// itself never reaches into the session store.
func (c *Client) OnUnauthorized(fn ports.UnauthorizedFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) notifyUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// do issues one API call and decodes the envelope's data into out (when both
// are present). The bearer token is read from persisted storage at call
// time, never cached.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperror.Validation(fmt.Sprintf("encoding request body: %v", err))
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return apperror.Validation(fmt.Sprintf("building request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if tok, err := c.creds.LoadToken(); err != nil {
		c.log.Warn().Err(err).Msg("reading persisted token, sending unauthenticated")
	} else if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return apperror.Transient(fmt.Sprintf("%s %s", method, path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Cross-cutting side effect: any 401 invalidates the session,
		// regardless of which caller issued the request.
		if err := c.creds.ClearToken(); err != nil {
			c.log.Error().Err(err).Msg("purging token after 401")
		}
		c.notifyUnauthorized()
		return apperror.Unauthorized()
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Transient(fmt.Sprintf("reading %s response", path), err)
	}

	var env envelope.Envelope
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode)
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return apperror.Transient(msg, fmt.Errorf("http status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return apperror.Transient(fmt.Sprintf("decoding %s response", path), err)
	}
	if !env.OK() {
		return apperror.Remote(env.ErrorCode(), env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperror.Transient(fmt.Sprintf("decoding %s payload", path), err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}
