package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nsgo/api/shards"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const API_URL = "https://www.nationstates.net/cgi-bin/api.cgi"

// Owns the user agent, the optional default credential and the rate limiter
// shared by every request obtained from it. Stateless beyond those; one
// client per script is the intended shape.
type Client struct {
	// Endpoint the client posts to. Overridable for tests; defaults to API_URL.
	URL string

	agent   string
	cred    *Credential
	limiter *RateLimiter
	http    *http.Client
}

// Creates a client identified by the given user agent. The remote requires
// one on every call, so construction fails without it.
func NewClient(userAgent string) (*Client, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, ErrNoUserAgent
	}

	return &Client{
		URL:     API_URL,
		agent:   userAgent,
		limiter: NewRateLimiter(RATE_QUOTA, RATE_PERIOD),
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Sets the credential applied automatically to nation-scoped requests and
// commands that were not given one of their own.
func (c *Client) SetDefaultCredential(cred *Credential) *Client {
	c.cred = cred
	return c
}

// Serializes the request's accumulated arguments into a URL-encoded POST
// body, attaches auth headers, awaits rate-limiter admission, performs the
// HTTP call and classifies failures. On success the request's credential (if
// any) absorbs rotated tokens from the response headers before the raw body
// is returned.
func (c *Client) SendRequest(r *apiRequest) (string, error) {
	if c.agent == "" {
		return "", ErrNoUserAgent
	}

	cred := r.cred
	if cred == nil && (r.scope == scopeNation || r.scope == scopeCommand) {
		cred = c.cred
	}

	// Private shards are known ahead of time, so an unauthenticated request
	// for one fails here instead of wasting a network call.
	if r.scope == scopeNation && cred == nil && r.shards != nil {
		for _, token := range r.shards.tokens() {
			if shards.PRIVATE_NATION_SHARDS.Has(shards.NationShard(token)) {
				return "", &AuthenticationError{Shard: token}
			}
		}
	}

	body := r.args.Encode()

	req, err := http.NewRequest(http.MethodPost, c.URL, strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build API request: %w", err)
	}

	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cred != nil {
		cred.applyHeaders(req.Header)
	}

	reqID := uuid.NewString()[:8]
	log.WithFields(log.Fields{"id": reqID, "args": r.args.Names()}).Debug("sending API request")

	c.limiter.Acquire()

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request %s failed: %w", reqID, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response of API request %s: %w", reqID, err)
	}

	switch {
	case res.StatusCode == http.StatusForbidden:
		return "", ErrInvalidCredentials
	case res.StatusCode == http.StatusConflict:
		return "", ErrRecentLogin
	case res.StatusCode < 200 || res.StatusCode > 299:
		return "", &RemoteError{StatusCode: res.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	if cred != nil {
		cred.refreshFromHeaders(res.Header)
	}

	return string(raw), nil
}
