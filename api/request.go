package api

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Which resource family a request targets. The transport uses this to decide
// whether auth headers and the private-shard pre-flight check apply.
type scope int

const (
	scopeNation scope = iota
	scopeRegion
	scopeWorld
	scopeWA
	scopeCommand
)

// Lowers a human identifier and replaces spaces with underscores, producing
// the wire form the remote expects ("New Leftopia" becomes "new_leftopia").
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// The accumulating state every request builder shares: the client it was
// obtained from, its ordered argument map and the argument names that must be
// non-empty before a send is allowed. A request is a builder, not a
// transaction record; its arguments persist, so it can be sent again.
type apiRequest struct {
	client   *Client
	scope    scope
	args     *Args
	required []string
	cred     *Credential
	shards   *shardList // nil when the resource is not shardable
}

func newRequest(c *Client, sc scope, required ...string) apiRequest {
	return apiRequest{
		client:   c,
		scope:    sc,
		args:     NewArgs(),
		required: required,
	}
}

// Sets a raw argument, joining multiple values with "+". Overwrites on repeat.
func (r *apiRequest) SetArgument(name string, values ...string) {
	r.args.Set(name, values...)
}

func (r *apiRequest) GetArgument(name string) string {
	return r.args.Get(name)
}

func (r *apiRequest) AppendArgument(name string, values ...string) {
	r.args.Append(name, values...)
}

func (r *apiRequest) RemoveArgument(name string) {
	r.args.Remove(name)
}

func (r *apiRequest) ArgumentNames() []string {
	return r.args.Names()
}

// Pins the remote API version this request is answered with.
func (r *apiRequest) UseVersion(v int) {
	r.args.Set("v", strconv.Itoa(v))
}

func (r *apiRequest) missingArgs() (missing []string) {
	for _, name := range r.required {
		if strings.TrimSpace(r.args.Get(name)) == "" {
			missing = append(missing, name)
		}
	}

	return
}

// Validates required arguments and hands the request to the transport.
// Validation failures surface before any network activity.
func (r *apiRequest) sendRaw() (string, error) {
	if missing := r.missingArgs(); len(missing) > 0 {
		return "", &MissingArgsError{Names: missing}
	}

	return r.client.SendRequest(r)
}

// Sends the request and parses the textual response into a generic XML tree.
// A root-level ERROR tag is an application-level failure regardless of the
// HTTP status the transport saw.
func (r *apiRequest) sendXML() (*etree.Element, error) {
	body, err := r.sendRaw()
	if err != nil {
		return nil, err
	}

	return parseResponseXML(body)
}

func parseResponseXML(body string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, &RemoteError{Message: "response body is not parseable XML: " + err.Error()}
	}

	root := doc.Root()
	if root == nil {
		return nil, &RemoteError{Message: "response body is empty"}
	}

	if root.Tag == "ERROR" {
		return nil, &RemoteError{Message: strings.TrimSpace(root.Text())}
	}
	if errEl := root.SelectElement("ERROR"); errEl != nil {
		return nil, &RemoteError{Message: strings.TrimSpace(errEl.Text())}
	}

	return root, nil
}
