// Package llm provides text generation clients for remote model providers.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Client generates text for a prompt. Each call is a single blocking request,
// no retries and no caching.
type Client interface {
	// Name returns the provider identifier
	Name() string
	// Generate returns the raw text produced for the prompt
	Generate(ctx context.Context, prompt string, options Options) (string, error)
}

var (
	// ErrAuth is returned when the provider rejects the credentials
	ErrAuth = errors.New("authentication failed")
	// ErrRateLimit is returned when the provider throttles or the quota is exhausted
	ErrRateLimit = errors.New("rate limited")
	// ErrNetwork is returned when the provider could not be reached
	ErrNetwork = errors.New("network failure")
	// ErrEmptyResponse is returned when the provider answered without text
	ErrEmptyResponse = errors.New("empty response")
	// ErrRemote is returned for any other provider side failure
	ErrRemote = errors.New("remote failure")
)

// classifyStatus maps an HTTP status code to a remote error kind
func classifyStatus(statusCode int) error {
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return ErrAuth
	case statusCode == http.StatusTooManyRequests || statusCode == http.StatusPaymentRequired:
		return ErrRateLimit
	default:
		return ErrRemote
	}
}

// remoteError wraps err with the provider name and its error kind
func remoteError(provider string, kind error, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", provider, kind)
	}
	return fmt.Errorf("%s: %w: %w", provider, kind, err)
}

// transportError classifies errors raised before a status code was received
func transportError(provider string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", provider, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return remoteError(provider, ErrNetwork, err)
	}
	return remoteError(provider, ErrRemote, err)
}

// joinText concatenates non empty fragments, reporting ErrEmptyResponse when nothing is left
func joinText(provider string, fragments []string) (string, error) {
	text := strings.Join(fragments, "")
	if strings.TrimSpace(text) == "" {
		return "", remoteError(provider, ErrEmptyResponse, nil)
	}
	return text, nil
}
