package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnexpectedResponse = errors.New("unexpected response")

	// errSession marks failures reading the local session inside the transport,
	// so they are not mistaken for network errors.
	errSession = errors.New("session store")
)

// genericMessageKeys are tried in order when summarising an error body.
var genericMessageKeys = []string{"message", "detail", "error", "non_field_errors"}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	// Message is a human-readable summary extracted from Body, possibly empty.
	Message string
	Body    []byte
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Message: extractMessage(body), Body: body}
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) hold for 401 answers.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Field returns the string under key in the body. For DRF-style list values
// the first element is returned.
func (e *APIError) Field(key string) string {
	return stringField(gjson.GetBytes(e.Body, gjson.Escape(key)))
}

// MessageOr picks the first non-empty body field among keys from an *APIError
// in err's chain, or returns fallback.
func MessageOr(err error, fallback string, keys ...string) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return fallback
	}
	for _, k := range keys {
		if v := apiErr.Field(k); v != "" {
			return v
		}
	}
	return fallback
}

func stringField(v gjson.Result) string {
	if v.IsArray() {
		v = v.Get("0")
	}
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.Str)
}

// extractMessage summarises a JSON error body: a well-known message key if
// present, otherwise the first error of every field joined with "; ".
func extractMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return stringField(root)
	}

	for _, k := range genericMessageKeys {
		if v := stringField(root.Get(k)); v != "" {
			return v
		}
	}

	var parts []string
	root.ForEach(func(k, v gjson.Result) bool {
		if s := stringField(v); s != "" {
			parts = append(parts, k.String()+": "+s)
		}
		return true
	})
	return strings.Join(parts, "; ")
}
