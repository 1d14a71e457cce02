// Package gateway is the HTTP client for the backend API gateway that fronts
// the event and registration services.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/farellandr/eventportal/internal/monitoring"
	"github.com/farellandr/eventportal/internal/session"
)

var ErrNotFound = errors.New("not found")

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: backend returned status %d: %s", e.Op, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// StatusCode extracts the backend status from err, or 0 when err did not come
// from a backend response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// Client implements EventService and RegistrationService over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do sends one request on behalf of s and decodes a JSON response into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, s *session.Session, op, method, path string, body, out interface{}) (err error) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if err != nil && outcome == "ok" {
			outcome = "error"
		}
		monitoring.RecordGatewayCall(op, outcome, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setSessionHeaders(req, s)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = strconv.Itoa(resp.StatusCode)
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Op: op, Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func setSessionHeaders(req *http.Request, s *session.Session) {
	if s == nil {
		return
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	if s.UserID > 0 {
		req.Header.Set("X-User-Id", strconv.FormatInt(s.UserID, 10))
	}
	if s.Role != "" {
		req.Header.Set("X-User-Role", s.Role)
	}
}
