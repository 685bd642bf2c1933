// Package netutil classifies transport errors for the Telegram HTTP client.
package netutil

import (
	"errors"
	"net"
	"net/url"
)

// ShouldRetry reports whether a request failure is transient enough to try
// again. Only dial and timeout failures qualify; anything that may have
// reached the API is not retried, since a duplicate send is worse than a
// dropped one.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		if urlErr.Err != nil && !errors.Is(urlErr.Err, err) {
			return ShouldRetry(urlErr.Err)
		}
	}

	return false
}
