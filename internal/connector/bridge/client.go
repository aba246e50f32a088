// Package bridge connects to a wallet daemon's JSON-RPC 2.0 surface and
// exposes it as a connector.Capability. It is the concrete stand-in for
// the browser-injected extension object: the wallet runs out of process
// and this package only speaks to its RPC endpoint.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/bochaco/mn-wallet-connect/internal/metrics"
	mnerr "github.com/bochaco/mn-wallet-connect/pkg/errors"
)

// maxResponseBodySize caps how much of a response is read, to guard
// against a misbehaving daemon.
const maxResponseBodySize = 64 * 1024

// Client is a minimal JSON-RPC 2.0 client for the wallet daemon.
type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	idCounter  atomic.Uint64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout, which
// is the default: an enable call legitimately blocks until the user acts
// on the wallet's approval prompt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimit sets the request rate limit and burst for the endpoint.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewClient creates a new bridge client.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(5, 10),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// request represents a JSON-RPC 2.0 request.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

// response represents a JSON-RPC 2.0 response.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error,omitempty"`
}

// rpcError represents a JSON-RPC error.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// Call performs a JSON-RPC call. It waits on the rate limiter first, so a
// canceled ctx aborts before any request is sent.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	result, err := c.call(ctx, method, params)
	metrics.Global.RecordBridgeCall(err)
	return result, err
}

func (c *Client) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, mnerr.Wrap(mnerr.ErrBridgeRequest, "rate limit wait aborted for %s", method)
	}

	if params == nil {
		params = []any{}
	}

	req := request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.idCounter.Add(1),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, mnerr.Wrap(mnerr.ErrBridgeRequest, "calling %s", method)
	}
	// Body.Close error is intentionally ignored as it only fails if the
	// connection is already broken, and there's no recovery action.
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return nil, mnerr.WithDetails(mnerr.ErrBridgeRequest, map[string]string{
			"method": method,
			"status": httpResp.Status,
		})
	}

	limited := io.LimitReader(httpResp.Body, maxResponseBodySize)
	var resp response
	if err := json.NewDecoder(limited).Decode(&resp); err != nil {
		return nil, mnerr.Wrap(mnerr.ErrBridgeResponse, "decoding %s response", method)
	}

	if resp.Error != nil {
		return nil, mnerr.Wrap(resp.Error, "wallet daemon rejected %s", method)
	}

	if resp.Result == nil {
		return nil, mnerr.WithDetails(mnerr.ErrBridgeResponse, map[string]string{
			"method": method,
			"reason": "nil result",
		})
	}

	return resp.Result, nil
}
