package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scripted two-step remote: serves the prepare response first, then the
// execute response, recording each decoded form body it saw.
func newCommandServer(t *testing.T, prepareBody, executeBody string) (*Client, *[]url.Values) {
	t.Helper()

	requests := []url.Values{}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(raw))
		require.NoError(t, err)

		requests = append(requests, form)

		if len(requests) == 1 {
			fmt.Fprint(w, prepareBody)
		} else {
			fmt.Fprint(w, executeBody)
		}
	})

	return c, &requests
}

func TestTwoStepCommandProtocol(t *testing.T) {
	c, requests := newCommandServer(t,
		`<NATION id="testlandia"><SUCCESS>tok-abc123</SUCCESS></NATION>`,
		`<NATION id="testlandia"><SUCCESS>Your dispatch was created! id=1234567</SUCCESS></NATION>`,
	)

	cmd, err := c.AddDispatch(NewCredential("hunter2"), "Testlandia", "Title", "Body text", "Factbook", 100)
	require.NoError(t, err)
	assert.Equal(t, COMMAND_UNSENT, cmd.State())

	id, err := cmd.Send()
	require.NoError(t, err)

	assert.Equal(t, 1234567, id)
	assert.Equal(t, COMMAND_EXECUTED, cmd.State())

	// Exactly two sends: prepare, then execute carrying the literal token.
	require.Len(t, *requests, 2)
	assert.Equal(t, "prepare", (*requests)[0].Get("mode"))
	assert.Equal(t, "", (*requests)[0].Get("token"))
	assert.Equal(t, "execute", (*requests)[1].Get("mode"))
	assert.Equal(t, "tok-abc123", (*requests)[1].Get("token"))
}

func TestTwoStepStopsWithoutToken(t *testing.T) {
	c, requests := newCommandServer(t,
		`<NATION id="testlandia"><UNRELATED>no token here</UNRELATED></NATION>`,
		`<NATION id="testlandia"><SUCCESS>should never be reached</SUCCESS></NATION>`,
	)

	cmd, err := c.RemoveDispatch(NewCredential("hunter2"), "Testlandia", 42)
	require.NoError(t, err)

	err = cmd.Send()

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, COMMAND_FAILED, cmd.State())

	// The missing token is a hard stop, no execute request goes out.
	assert.Len(t, *requests, 1)
}

func TestCommandRequiresCredential(t *testing.T) {
	c, err := NewClient("nsgo test runner")
	require.NoError(t, err)

	_, err = c.AnswerIssue(nil, "Testlandia", 100, 1)
	assert.ErrorIs(t, err, ErrNoCredential)

	// A client-level default credential satisfies the requirement.
	c.SetDefaultCredential(NewCredential("hunter2"))
	cmd, err := c.AnswerIssue(nil, "Testlandia", 100, 1)
	require.NoError(t, err)
	assert.Equal(t, "issue", cmd.GetArgument("c"))
	assert.Equal(t, "100", cmd.GetArgument("issue"))
	assert.Equal(t, "1", cmd.GetArgument("option"))
}

func TestPostRMBPostID(t *testing.T) {
	// The remote repeats the post id in the success message, so the digit
	// run is the id twice over and only the first half counts.
	c, _ := newCommandServer(t,
		`<NATION id="testlandia"><SUCCESS>tok-1</SUCCESS></NATION>`,
		`<NATION id="testlandia"><SUCCESS>Your message has been lodged! View it at page=rmb/postid=408810408810</SUCCESS></NATION>`,
	)

	cmd, err := c.PostRMB(NewCredential("hunter2"), "Testlandia", "The South Pacific", "hello world")
	require.NoError(t, err)

	id, err := cmd.Send()
	require.NoError(t, err)
	assert.Equal(t, 408810, id)
}

func TestAnswerIssueDecodesOutcome(t *testing.T) {
	c, _ := newCommandServer(t,
		`<NATION id="testlandia"><SUCCESS>tok-1</SUCCESS></NATION>`,
		`<NATION id="testlandia"><ISSUE id="100" choice="1"><OK>1</OK><DESC>the economy soars</DESC></ISSUE></NATION>`,
	)

	cmd, err := c.AnswerIssue(NewCredential("hunter2"), "Testlandia", 100, 1)
	require.NoError(t, err)

	outcome, err := cmd.Send()
	require.NoError(t, err)
	assert.True(t, outcome.OK)
	assert.Equal(t, "the economy soars", outcome.Desc)
}
