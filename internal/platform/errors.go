// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package platform

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// Error is a typed upstream platform failure carrying the HTTP status and
// the platform's error body. StatusCode 0 means the call never reached the
// platform (network error, timeout).
type Error struct {
	Platform   string
	Operation  string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: request failed: %s", e.Platform, e.Operation, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Platform, e.Operation, e.StatusCode, e.Body)
}

// Retryable reports whether the failure is transient. Client errors are
// final, except 408 and 429.
func (e *Error) Retryable() bool {
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= 500:
		return true
	}
	return false
}

// IsRetryable reports whether err is a transient platform error.
func IsRetryable(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	return false
}

// wrapOAuthError normalizes oauth2 transport failures into *Error.
// A *oauth2.RetrieveError keeps the upstream status and body.
func wrapOAuthError(platform, operation string, err error) *Error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		return &Error{
			Platform:   platform,
			Operation:  operation,
			StatusCode: status,
			Body:       string(re.Body),
		}
	}

	return &Error{
		Platform:  platform,
		Operation: operation,
		Body:      err.Error(),
	}
}
