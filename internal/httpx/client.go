// Package httpx builds the short-timeout HTTP clients shared by the remote
// data-source tiers.
package httpx

import (
	"net"
	"net/http"
	"time"
)

// NewClient returns an *http.Client with a fixed dial timeout and a fixed
// overall request timeout. The timeouts are kept short on purpose: a hung
// remote source must degrade to the next tier promptly instead of blocking
// the calling worker indefinitely.
func NewClient(connectTimeout, requestTimeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
			TLSHandshakeTimeout: connectTimeout,
		},
	}
}
