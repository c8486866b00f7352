package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nsgo/api/shards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A client pointed at a local test server, with the limiter's sleep neutered
// so tests never actually block.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("nsgo test runner")
	require.NoError(t, err)

	c.URL = srv.URL
	c.limiter.sleep = func(time.Duration) {}

	return c
}

func TestSendRequestHeaders(t *testing.T) {
	var gotAgent, gotContentType, gotBody string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")

		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		fmt.Fprint(w, `<NATION id="testlandia"><NAME>Testlandia</NAME></NATION>`)
	})

	nation, err := c.Nation("Testlandia").Shards(shards.NATION_NAME).Send()
	require.NoError(t, err)

	assert.Equal(t, "nsgo test runner", gotAgent)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "nation=testlandia&q=name", gotBody)

	require.NotNil(t, nation.Name)
	assert.Equal(t, "Testlandia", *nation.Name)
}

func TestSendRequestStatusClassification(t *testing.T) {
	status := http.StatusForbidden
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, "denied")
	})
	c.SetDefaultCredential(NewCredential("hunter2"))

	_, err := c.Nation("Testlandia").Shards(shards.NATION_NAME).Send()
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	status = http.StatusConflict
	_, err = c.Nation("Testlandia").Shards(shards.NATION_NAME).Send()
	assert.ErrorIs(t, err, ErrRecentLogin)

	status = http.StatusTeapot
	_, err = c.Nation("Testlandia").Shards(shards.NATION_NAME).Send()

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusTeapot, remote.StatusCode)
	assert.Equal(t, "denied", remote.Message)
}

func TestSendRequestErrorTagIn200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<ERROR>Unknown nation.</ERROR>`)
	})

	_, err := c.Nation("Nonexistent").Shards(shards.NATION_NAME).Send()

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 0, remote.StatusCode)
	assert.Equal(t, "Unknown nation.", remote.Message)
}

func TestPrivateShardPreflight(t *testing.T) {
	hit := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hit = true
	})

	_, err := c.Nation("Testlandia").Shards(shards.NATION_NAME, shards.NATION_ISSUES).Send()

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, string(shards.NATION_ISSUES), authErr.Shard)
	assert.False(t, hit, "unauthenticated private-shard request must not touch the network")
}

func TestCredentialRefreshFromHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hunter2", r.Header.Get("X-Password"))

		w.Header().Set("X-Autologin", "token-1")
		w.Header().Set("X-Pin", "12345")
		fmt.Fprint(w, `<NATION id="testlandia"><NAME>Testlandia</NAME></NATION>`)
	})

	cred := NewCredential("hunter2")
	_, err := c.Nation("Testlandia").Shards(shards.NATION_NAME).Credential(cred).Send()
	require.NoError(t, err)

	assert.Equal(t, "token-1", cred.Autologin())
	assert.Equal(t, "12345", cred.Pin())
}

func TestDefaultCredentialFallback(t *testing.T) {
	var gotPin string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPin = r.Header.Get("X-Pin")
		fmt.Fprint(w, `<NATION id="testlandia"><PACKS>3</PACKS></NATION>`)
	})

	cred := NewAutologinCredential("token-1")
	cred.refreshFromHeaders(http.Header{"X-Pin": []string{"9999"}})
	c.SetDefaultCredential(cred)

	// Private shard, no per-request credential: the default one must apply.
	nation, err := c.Nation("Testlandia").Shards(shards.NATION_PACKS).Send()
	require.NoError(t, err)

	assert.Equal(t, "9999", gotPin)
	require.NotNil(t, nation.Packs)
	assert.Equal(t, 3, *nation.Packs)
}
