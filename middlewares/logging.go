// Package middlewares holds transport-level hooks attached to the resty
// client. They provide observability only; no hook alters a request or a
// response.
package middlewares

import (
	"github.com/go-resty/resty/v2"

	"github.com/codesbysuraj/Quickart/utils"
)

// RequestLogger logs every outgoing request before it is sent.
func RequestLogger(log *utils.Logger) resty.RequestMiddleware {
	return func(c *resty.Client, r *resty.Request) error {
		log.Info("HTTP request", "method", r.Method, "url", r.URL)
		return nil
	}
}

// ResponseLogger logs the raw status of every response, successful or not.
func ResponseLogger(log *utils.Logger) resty.ResponseMiddleware {
	return func(c *resty.Client, r *resty.Response) error {
		log.Info("HTTP response", "status", r.StatusCode(), "url", r.Request.URL)
		return nil
	}
}
