// Package rpc is the only place that speaks the backend's wire format.
// One exported method per remote procedure; every method does exactly one
// round trip and fails with *Error. Retry policy belongs to the caching
// layer, never here: retrying a mutation could duplicate it.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
	log        *zap.Logger
}

func New(baseURL, key string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        key,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// call posts params as JSON to {base}/rpc/{proc} and decodes the response
// into out (which may be nil for procedures returning nothing useful).
func (c *Client) call(ctx context.Context, proc string, params, out any) error {
	body := []byte("{}")
	if params != nil {
		var err error
		body, err = json.Marshal(params)
		if err != nil {
			return fmt.Errorf("rpc %s: encode params: %w", proc, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rpc/"+proc, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("rpc %s: create request: %w", proc, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("apikey", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("rpc transport failure", zap.String("proc", proc), zap.Error(err))
		return &Error{
			Proc:      proc,
			Code:      CodeTransport,
			Message:   "request failed before reaching the backend",
			transient: true,
			cause:     err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Proc:      proc,
			Code:      CodeTransport,
			Message:   "reading response body",
			transient: true,
			cause:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(proc, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("rpc %s: decode response: %w", proc, err)
	}
	return nil
}

// decodeError maps a non-2xx body into *Error. The backend answers with
// {code, message, details?, hint?}; anything else (a proxy error page, an
// empty body) still gets a usable shape.
func (c *Client) decodeError(proc string, status int, raw []byte) error {
	e := &Error{Proc: proc}
	if err := json.Unmarshal(raw, e); err != nil || e.Message == "" {
		e.Code = fmt.Sprintf("http_%d", status)
		e.Message = strings.TrimSpace(string(raw))
		if e.Message == "" {
			e.Message = http.StatusText(status)
		}
	}
	e.transient = status >= 500 || status == http.StatusTooManyRequests || status == http.StatusRequestTimeout
	c.log.Debug("rpc backend error",
		zap.String("proc", proc),
		zap.Int("status", status),
		zap.String("code", e.Code),
		zap.Bool("transient", e.transient),
	)
	return e
}
