// Package etherscan is a typed client for the Etherscan block-explorer HTTP
// API. Every method is one stateless request/response round trip: parameters
// go out as a query string, the {status,message,result} envelope (or the raw
// JSON-RPC body for proxy actions) comes back and is reshaped into Go values.
// The client never retries and never rate-limits; both are left to the
// caller.
package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fystack/etherscan-client/pkg/common/units"
)

const defaultTimeout = 30 * time.Second

// Client issues requests against one Etherscan deployment. The base URL and
// API key are immutable after construction, so a Client is safe for
// concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithNetwork targets a named Etherscan deployment.
func WithNetwork(n Network) Option {
	return func(c *Client) { c.baseURL = n.BaseURL() }
}

// WithBaseURL overrides the API base URL entirely. Test servers use this.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a client for the mainnet deployment unless an option says
// otherwise. The API key is required by the service on every request; an
// empty key surfaces as an InvalidArgumentError from the first call rather
// than a constructor error.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    Mainnet.BaseURL(),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the response wrapper used by every non-proxy action.
// Status "1" means success; "0" carries a service error in Message.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// proxyEnvelope is the raw JSON-RPC shape returned by proxy-module actions,
// which are exempt from the status/message envelope.
type proxyEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *proxyError     `json:"error"`
}

type proxyError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// get performs one HTTP GET against the configured base URL. Empty parameter
// values are dropped; module, action and apikey are always set.
func (c *Client) get(ctx context.Context, module, action string, params map[string]string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, &InvalidArgumentError{Reason: "API key is required"}
	}

	op := module + "/" + action

	q := url.Values{}
	q.Set("module", module)
	q.Set("action", action)
	for k, v := range params {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	c.logger.Debug("etherscan request completed",
		"module", module,
		"action", action,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			Op:  op,
			Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}
	return body, nil
}

// call performs one enveloped request and returns the raw result on status
// "1". A status "0" response becomes a RemoteAPIError with the service
// message verbatim.
func (c *Client) call(ctx context.Context, module, action string, params map[string]string) (json.RawMessage, error) {
	body, err := c.get(ctx, module, action, params)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &TransportError{Op: module + "/" + action, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if env.Status != "1" {
		return nil, &RemoteAPIError{Message: env.Message}
	}
	return env.Result, nil
}

// callInto unmarshals an enveloped result into out.
func (c *Client) callInto(ctx context.Context, module, action string, params map[string]string, out any) error {
	raw, err := c.call(ctx, module, action, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Op: module + "/" + action, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}

// callProxy performs one proxy-module request. A JSON-RPC error object maps
// to RemoteAPIError; a null result means "not found" and comes back as a nil
// message, never an error.
func (c *Client) callProxy(ctx context.Context, action string, params map[string]string) (json.RawMessage, error) {
	body, err := c.get(ctx, "proxy", action, params)
	if err != nil {
		return nil, err
	}

	var env proxyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &TransportError{Op: "proxy/" + action, Err: fmt.Errorf("decode response: %w", err)}
	}
	if env.Error != nil {
		return nil, &RemoteAPIError{Message: env.Error.Message}
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil, nil
	}
	return env.Result, nil
}

// callProxyString unwraps a proxy result that is a single JSON string, the
// common case for hex quantities.
func (c *Client) callProxyString(ctx context.Context, action string, params map[string]string) (string, error) {
	raw, err := c.callProxy(ctx, action, params)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &TransportError{Op: "proxy/" + action, Err: fmt.Errorf("decode result: %w", err)}
	}
	return s, nil
}

// checkAddress validates an address parameter before any request goes out.
func checkAddress(address string) error {
	if !common.IsHexAddress(address) {
		return invalidArgf("malformed address %q", address)
	}
	return nil
}

// convertWei rescales a wei amount taken from a response. The denomination
// was validated before the request, so a failure here means the service sent
// a non-numeric amount.
func convertWei(op, wei string, unit units.Unit) (string, error) {
	out, err := units.Convert(wei, units.Wei, unit)
	if err != nil {
		return "", &TransportError{Op: op, Err: err}
	}
	return out, nil
}

// checkTxHash validates a 32-byte transaction hash parameter.
func checkTxHash(txHash string) error {
	h := strings.TrimPrefix(txHash, "0x")
	if len(h) != 64 {
		return invalidArgf("malformed transaction hash %q", txHash)
	}
	for _, r := range h {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') && (r < 'A' || r > 'F') {
			return invalidArgf("malformed transaction hash %q", txHash)
		}
	}
	return nil
}

// blockTag normalizes a block tag parameter: symbolic tags pass through and
// an empty tag defaults to "latest".
func blockTag(tag string) string {
	if tag == "" {
		return "latest"
	}
	return tag
}
