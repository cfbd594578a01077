// Package gateway is the only component permitted to perform network I/O.
// It maps the domain operations the views need onto HTTP calls against the
// remote backend and normalizes every response into one error shape.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/config"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/rs/zerolog"
)

// Client is a thin typed wrapper around the backend REST API.
// No retries, no deduplication, no caching: every call is a fresh round
// trip, and the backend independently authorizes each one.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// NewClient builds a gateway client for the configured backend.
// The HTTP client timeout surfaces as a network-kind error on expiry.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		base: cfg.BackendBaseURL,
		http: &http.Client{Timeout: cfg.BackendTimeout},
		log:  log,
	}
}

type bearerKey struct{}

// WithBearer attaches the session's bearer token to a request context.
// Requests without one are fine; some endpoints are public.
func WithBearer(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, bearerKey{}, token)
}

func bearerFrom(ctx context.Context) string {
	token, _ := ctx.Value(bearerKey{}).(string)
	return token
}

// do performs one backend call: marshal body (if any), attach the bearer
// token, normalize the response, decode into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)

	return c.send(req, out)
}

// upload performs the multipart payment-slip upload.
func (c *Client) upload(ctx context.Context, path string, file io.Reader, filename string, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload: %w", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.authorize(ctx, req)

	return c.send(req, out)
}

// authorize carries per-request metadata onto the outbound call: the
// session bearer token and the frontend request ID, so a page render is
// traceable across both services.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if token := bearerFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := response.RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
}

// send executes the request and applies the three-way normalization:
// 4xx → client, 5xx → server, no response → network.
func (c *Client) send(req *http.Request, out interface{}) error {
	log := c.callLogger(req)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("backend unreachable")
		return &Error{Kind: KindNetwork, Message: "Network error. Please check your connection."}
	}
	defer resp.Body.Close()

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend call")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "Network error. Please check your connection."}
	}

	switch {
	case resp.StatusCode >= 500:
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: bodyMessage(raw, "Server error. Please try again later.")}
	case resp.StatusCode >= 400:
		return &Error{Kind: KindClient, Status: resp.StatusCode, Message: bodyMessage(raw, http.StatusText(resp.StatusCode))}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// callLogger scopes the client logger to one outbound call, including
// the propagated request ID when present.
func (c *Client) callLogger(req *http.Request) zerolog.Logger {
	lctx := c.log.With().
		Str("method", req.Method).
		Str("path", req.URL.Path)
	if id := req.Header.Get("X-Request-ID"); id != "" {
		lctx = lctx.Str("request_id", id)
	}
	return lctx.Logger()
}

// bodyMessage pulls a {"message": ...} field out of an error body when the
// backend provides one; otherwise the fallback applies.
func bodyMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && strings.TrimSpace(body.Message) != "" {
		return body.Message
	}
	return fallback
}
