package api

import (
	"errors"
	"fmt"
	"strings"
)

// Construction/configuration failures.
var ErrNoUserAgent = errors.New("a user agent identifying you or your script must be supplied")

// An authenticated operation was attempted without any credential available,
// neither on the request itself nor as the client default.
var ErrNoCredential = errors.New("this operation requires an authenticated credential")

// The remote rejected the supplied credentials (HTTP 403).
var ErrInvalidCredentials = errors.New("remote API rejected the supplied credentials")

// The remote requires a PIN because a password login happened too recently (HTTP 409).
var ErrRecentLogin = errors.New("last password login too recent, log in with a PIN")

// A private shard was requested without a credential to authenticate it.
type AuthenticationError struct {
	Shard string // wire token of the offending shard
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("shard %q is private and requires a credential on the request", e.Shard)
}

// One or more declared-required arguments were empty at send time.
// Raised before any network activity.
type MissingArgsError struct {
	Names []string
}

func (e *MissingArgsError) Error() string {
	return fmt.Sprintf("required arguments missing or empty: %s", strings.Join(e.Names, ", "))
}

// The remote reported a failure: a root ERROR tag, an unrecognized non-2xx
// status, or a body that could not be parsed at all.
type RemoteError struct {
	Message    string
	StatusCode int // 0 when the HTTP layer reported success
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote API error (HTTP %d): %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("remote API error: %s", e.Message)
}
