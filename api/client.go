// Package api is the typed client for the QuickKart backend. Every
// operation performs exactly one HTTP round trip and reports its outcome
// through the Result envelope; network and decode failures are returned,
// never raised.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/codesbysuraj/Quickart/middlewares"
	"github.com/codesbysuraj/Quickart/session"
	"github.com/codesbysuraj/Quickart/ui"
	"github.com/codesbysuraj/Quickart/utils"
)

const (
	defaultRedirectDelay = 2 * time.Second
	defaultLoginTarget   = "/login"
)

// Result is the normalized outcome of every operation: either Data on
// success or an error string, mirroring the backend contract of raw body
// text on non-2xx responses.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Error: message}
}

// Config wires the client's collaborators. Sessions is required for the
// operations that read or write the signed-in user; everything else has a
// usable default.
type Config struct {
	BaseURL  string
	Sessions session.Store
	Toasts   *ui.NotificationCenter

	// Redirect sends the user to an application entry point, invoked on the
	// stale-session path after RedirectDelay.
	Redirect      func(target string)
	RedirectDelay time.Duration
	LoginTarget   string

	Logger *utils.Logger
}

type Client struct {
	http     *resty.Client
	sessions session.Store
	toasts   *ui.NotificationCenter
	redirect func(target string)
	delay    time.Duration
	loginTo  string
	log      *utils.Logger
}

func New(cfg Config) *Client {
	log := cfg.Logger
	if log == nil {
		log = utils.NewLogger(os.Stdout, "quickkart")
	}
	if cfg.Redirect == nil {
		cfg.Redirect = func(string) {}
	}
	if cfg.RedirectDelay <= 0 {
		cfg.RedirectDelay = defaultRedirectDelay
	}
	if cfg.LoginTarget == "" {
		cfg.LoginTarget = defaultLoginTarget
	}
	if cfg.Toasts == nil {
		cfg.Toasts = ui.NewNotificationCenter(io.Discard)
	}

	httpClient := resty.New().SetBaseURL(cfg.BaseURL)
	httpClient.OnBeforeRequest(middlewares.RequestLogger(log))
	httpClient.OnAfterResponse(middlewares.ResponseLogger(log))

	return &Client{
		http:     httpClient,
		sessions: cfg.Sessions,
		toasts:   cfg.Toasts,
		redirect: cfg.Redirect,
		delay:    cfg.RedirectDelay,
		loginTo:  cfg.LoginTarget,
		log:      log,
	}
}

// Sessions exposes the injected session store for host-side gating checks.
func (c *Client) Sessions() session.Store {
	return c.sessions
}

// execute performs the single round trip shared by all operations. A 2xx
// response decodes into T, an empty 2xx body is pure success, a non-2xx
// response surfaces its body text, and transport or decode failures surface
// their message.
func execute[T any](c *Client, ctx context.Context, method, path string, body any) Result[T] {
	req := c.http.R().SetContext(ctx).SetHeader("Accept", "application/json")
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fail[T](err.Error())
	}
	if !resp.IsSuccess() {
		return fail[T](string(resp.Body()))
	}

	var data T
	if _, discardBody := any(data).(struct{}); discardBody {
		// delete-style operations: a 2xx is pure success, whatever the body
		return ok(data)
	}
	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 {
		return ok(data)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return fail[T](err.Error())
	}
	return ok(data)
}
