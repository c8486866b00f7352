package api

import (
	"net/http"
	"sync"
)

// Login details for a single nation. A credential is passed by reference into
// requests and lives as long as the caller retains it; the transport refreshes
// the autologin token and PIN from response headers after every successful
// authenticated call.
//
// All field access goes through the internal mutex, so concurrent requests
// sharing one credential never see a torn read. If several refreshes race,
// the last writer wins; the remote hands out equivalent tokens either way.
type Credential struct {
	mu        sync.Mutex
	password  string
	autologin string
	pin       string
}

// Builds a credential from a raw nation password.
func NewCredential(password string) *Credential {
	return &Credential{password: password}
}

// Builds a credential from a previously issued autologin token, avoiding
// a fresh password login (and the PIN requirement that follows one).
func NewAutologinCredential(token string) *Credential {
	return &Credential{autologin: token}
}

// The current autologin token, if the server has issued one.
func (c *Credential) Autologin() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.autologin
}

// The current session PIN, if the server has issued one.
func (c *Credential) Pin() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pin
}

// Attaches whichever auth headers this credential can currently supply.
func (c *Credential) applyHeaders(h http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.password != "" {
		h.Set("X-Password", c.password)
	}
	if c.autologin != "" {
		h.Set("X-Autologin", c.autologin)
	}
	if c.pin != "" {
		h.Set("X-Pin", c.pin)
	}
}

// Absorbs rotated tokens from a successful response. Headers the server did
// not send leave the current values untouched.
func (c *Credential) refreshFromHeaders(h http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v := h.Get("X-Autologin"); v != "" {
		c.autologin = v
	}
	if v := h.Get("X-Pin"); v != "" {
		c.pin = v
	}
}
