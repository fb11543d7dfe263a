// internal/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/appdevg6/boost-web/internal/config"
)

// Error kinds the client distinguishes for callers.
const (
	KindNetwork    = "NETWORK_FAILURE"
	KindHTTP       = "HTTP_ERROR"
	KindNotFound   = "NOT_FOUND"
	KindValidation = "VALIDATION_ERROR"
)

// APIError is the single error value every non-2xx response is normalized
// into. Message holds the body's "error" field when present, otherwise the
// raw body text, otherwise a generic fallback.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == KindNotFound
}

// Client is the shared core every resource client wraps. It speaks plain
// JSON-over-HTTP with no retries; cancellation comes from the caller's
// context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func New(cfg config.BackendConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		log: log,
	}
}

// do issues a request and decodes the response into out (when non-nil).
// Response bodies are decoded as JSON first, falling back to raw text; the
// backend mixes JSON entities with plain-text error bodies.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &APIError{Code: KindNetwork, Message: err.Error()}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Code: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).WithError(err).Warn("Backend request failed")
		return &APIError{Code: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Code: KindNetwork, Message: err.Error()}
	}

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Milliseconds(),
	}).Debug("Backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{
			Status:  resp.StatusCode,
			Code:    KindHTTP,
			Message: fmt.Sprintf("unexpected response body: %s", strings.TrimSpace(string(raw))),
		}
	}
	return nil
}

func normalizeError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status, Code: codeForStatus(status), Message: messageFromBody(raw)}
	return apiErr
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindHTTP
	}
}

// messageFromBody extracts the "error" field from a JSON object body. A JSON
// object carrying neither "error" nor "message" yields the generic fallback;
// only non-JSON bodies surface as raw text.
func messageFromBody(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return "Request failed"
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err == nil {
		if msg, ok := decoded["error"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := decoded["message"].(string); ok && msg != "" {
			return msg
		}
		return "Request failed"
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil && asString != "" {
		return asString
	}

	return trimmed
}
