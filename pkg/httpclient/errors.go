package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/shopview/dashboard/pkg/errors"
)

// apiErrorBody mirrors the error payload returned by the commerce API:
// a status code on the response and a message in the body.
type apiErrorBody struct {
	Message string `json:"message"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into the matching AppError. If the body carries the commerce API's
// `{"message": ...}` payload the message is preserved; otherwise the raw body
// is used.
//
// The caller should only invoke this when resp.StatusCode indicates an error
// (i.e., not 2xx). The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("commerce api returned status %d (failed to read body: %w)", resp.StatusCode, err)
	}

	var body apiErrorBody
	if json.Unmarshal(bodyBytes, &body) == nil && body.Message != "" {
		return apperrors.FromStatus(resp.StatusCode, body.Message)
	}

	// Fallback: unstructured error body.
	return apperrors.FromStatus(resp.StatusCode, fmt.Sprintf("commerce api returned status %d: %s", resp.StatusCode, string(bodyBytes)))
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
