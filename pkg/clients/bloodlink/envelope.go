package bloodlink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// envelope is the response shape every BloodLink endpoint uses.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// APIError is returned for any response the API itself rejected: a non-2xx
// status or an envelope with success=false. The message is the server's own,
// falling back to the HTTP status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// IsUnauthorized reports whether the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether the error is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// request issues a call and unwraps the envelope. Every service method in
// this package funnels through here, so envelope-shape knowledge never
// reaches call sites: they get data or a typed error, nothing in between.
func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	raw, status, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if status < 200 || status >= 300 {
				return zero, &APIError{Status: status, Message: http.StatusText(status)}
			}
			return zero, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	// An empty body on a 2xx is success with no payload, not a failed
	// envelope. Without this a 204-style endpoint would trip the Success
	// check below.
	if len(raw) == 0 && status >= 200 && status < 300 {
		return zero, nil
	}

	if status < 200 || status >= 300 || !env.Success {
		message := env.Message
		if message == "" {
			message = http.StatusText(status)
		}
		return zero, &APIError{Status: status, Message: message}
	}

	return env.Data, nil
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return request[T](ctx, c, http.MethodGet, path, query, nil)
}

func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return request[T](ctx, c, http.MethodPost, path, nil, body)
}

func patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return request[T](ctx, c, http.MethodPatch, path, nil, body)
}

func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return request[T](ctx, c, http.MethodPut, path, nil, body)
}

// del issues a DELETE and discards the payload.
func del(ctx context.Context, c *Client, path string) error {
	_, err := request[json.RawMessage](ctx, c, http.MethodDelete, path, nil, nil)
	return err
}
