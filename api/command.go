package api

import (
	"strings"

	"github.com/beevik/etree"
)

// Lifecycle of a two-step command. There is no automatic retry out of the
// failed state; the caller decides whether to build a fresh command.
type commandState int

const (
	COMMAND_UNSENT commandState = iota
	COMMAND_PREPARED
	COMMAND_EXECUTED
	COMMAND_FAILED
)

// Base of every mutating command. Commands always act on a nation, always
// carry a fixed "c" argument and can only be constructed with a credential.
type CommandRequest struct {
	apiRequest
	state commandState
}

// Builds the shared command skeleton. The credential falls back to the
// client's default; with neither available construction fails.
func (c *Client) newCommand(nation string, cred *Credential, command string) (*CommandRequest, error) {
	if cred == nil {
		cred = c.cred
	}
	if cred == nil {
		return nil, ErrNoCredential
	}

	r := &CommandRequest{apiRequest: newRequest(c, scopeCommand, "nation", "c")}
	r.cred = cred
	r.args.Set("nation", NormalizeName(nation))
	r.args.Set("c", command)

	return r, nil
}

// Current position in the prepare/execute lifecycle.
func (r *CommandRequest) State() commandState {
	return r.state
}

// Runs the two-step protocol: a prepare send must yield a one-time execution
// token, which is passed back verbatim on the execute send. A prepare
// response without a token is a hard stop; no execute is attempted.
// Returns the unwrapped NATION element of the execute response.
func (r *CommandRequest) executeTwoStep() (*etree.Element, error) {
	r.args.Set("mode", "prepare")

	root, err := r.sendXML()
	if err != nil {
		r.state = COMMAND_FAILED
		return nil, err
	}

	token := strings.TrimSpace(childText(root, "SUCCESS"))
	if token == "" {
		r.state = COMMAND_FAILED
		return nil, &RemoteError{Message: "prepare step did not yield an execution token"}
	}

	r.state = COMMAND_PREPARED
	r.args.Set("mode", "execute")
	r.args.Set("token", token)

	root, err = r.sendXML()
	if err != nil {
		r.state = COMMAND_FAILED
		return nil, err
	}

	r.state = COMMAND_EXECUTED
	return root, nil
}

func childText(el *etree.Element, tag string) string {
	c := el.SelectElement(tag)
	if c == nil {
		return ""
	}

	return c.Text()
}
