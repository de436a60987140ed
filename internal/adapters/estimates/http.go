package estimates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"snailmail-delivery/internal/platform/obs"
	"strings"

	"github.com/google/uuid"
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	path string,
	body any,
) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		r = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	reqID := obs.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// post sends body to path and returns the decoded envelope of a successful
// calculation. It never retries.
func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("request %s: %v", path, err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("read response (status %d): %v", resp.StatusCode, err),
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.StatusCode),
		}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("decode response (status %d): %v", resp.StatusCode, err),
			Err:        err,
		}
	}

	if !env.Success {
		msg := env.Error
		if strings.TrimSpace(msg) == "" {
			msg = defaultCalculationMessage
		}
		return nil, &CalculationError{Message: msg}
	}

	return env.Data, nil
}

// errorMessage prefers the server's "error" field and falls back to a
// status-derived message when the body is empty or not JSON.
func errorMessage(raw []byte, code int) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if strings.TrimSpace(body.Error) != "" {
			return body.Error
		}
	}
	return statusMessage(code)
}
