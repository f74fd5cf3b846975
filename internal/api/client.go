// Package api implements the typed client for the external commerce API.
// Every dashboard component talks to the backend exclusively through this
// package: it injects the bearer token from the configured TokenStore,
// tags each request with a correlation ID, decodes the standard `{"data": ...}`
// response envelope, and translates error responses into pkg/errors values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/shopview/dashboard/pkg/errors"
	"github.com/shopview/dashboard/pkg/httpclient"
	"github.com/shopview/dashboard/pkg/logger"
)

const tracerName = "github.com/shopview/dashboard/internal/api"

// Client is the commerce API client.
type Client struct {
	baseURL string
	http    *httpclient.CircuitBreakerClient
	tokens  TokenStore
	logger  *slog.Logger
}

// New creates a new commerce API client.
func New(baseURL string, hc *httpclient.CircuitBreakerClient, tokens TokenStore, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		tokens:  tokens,
		logger:  log,
	}
}

// Authenticated reports whether a bearer token is currently available.
// Components use this to reject operations before issuing any network call.
func (c *Client) Authenticated() bool {
	_, ok := c.tokens.Token()
	return ok
}

// Identity returns the identity claims decoded from the current bearer token,
// or an Unauthenticated error when no token is available.
func (c *Client) Identity() (*Identity, error) {
	token, ok := c.tokens.Token()
	if !ok {
		return nil, apperrors.Unauthenticated("sign in to continue")
	}
	return DecodeIdentity(token)
}

// dataEnvelope is the standard success envelope of the commerce API.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// do executes a single API call. The operation name labels the span and the
// request metrics; out, when non-nil, receives the decoded response body.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	correlationID := logger.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = uuid.New().String()
		ctx = logger.WithCorrelationID(ctx, correlationID)
	}
	req.Header.Set("X-Correlation-ID", correlationID)

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "api."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := c.http.Do(ctx, req)
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	observeRequest(operation, method, status, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WithContext(ctx, c.logger).WarnContext(ctx, "commerce api request failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return apperrors.Network(err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := httpclient.ParseResponseError(resp)
		span.SetStatus(codes.Error, apiErr.Error())
		return apiErr
	}

	defer func() { _ = resp.Body.Close() }()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

// get is a convenience wrapper for GET calls.
func (c *Client) get(ctx context.Context, operation, path string, query url.Values, out any) error {
	return c.do(ctx, operation, http.MethodGet, path, query, nil, out)
}
