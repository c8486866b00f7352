package api

import (
	"strings"

	"nsgo/api/objs"
	"nsgo/api/shards"
)

// Outcome of a verification request. When the request carried shards, a
// successful verification also delivers the decoded nation snapshot.
type VerifyResult struct {
	Verified bool
	Nation   *objs.Nation
}

// Builder for the login-verification side channel: the caller hands over a
// checksum their user generated on the site, and the remote confirms whether
// it matches the nation's current session.
type VerificationRequest struct {
	NationRequest
}

func (c *Client) Verify(nation string, checksum string) *VerificationRequest {
	r := &VerificationRequest{
		NationRequest: NationRequest{apiRequest: newRequest(c, scopeNation, "a", "nation", "checksum")},
	}
	r.args.Set("a", "verify")
	r.args.Set("nation", NormalizeName(nation))
	r.args.Set("checksum", checksum)
	r.shards = newShardList(r.args)

	return r
}

// Scopes the verification to a site-specific token, so checksums generated
// for other scripts do not validate.
func (r *VerificationRequest) SiteToken(token string) *VerificationRequest {
	r.args.Set("token", token)
	return r
}

// Replaces the shard list outright, keeping the chain on the verification type.
func (r *VerificationRequest) Shards(list ...shards.NationShard) *VerificationRequest {
	r.NationRequest.Shards(list...)
	return r
}

// Unions the given shards into the list, keeping the chain on the verification type.
func (r *VerificationRequest) AddShards(list ...shards.NationShard) *VerificationRequest {
	r.NationRequest.AddShards(list...)
	return r
}

// Sends the request. The raw response is dual-shaped: a literal "1" or "0"
// when no shards were requested, otherwise a full nation XML body whose
// presence implies a successful verification.
func (r *VerificationRequest) Send() (*VerifyResult, error) {
	raw, err := r.sendRaw()
	if err != nil {
		return nil, err
	}

	switch strings.TrimSpace(raw) {
	case "1":
		return &VerifyResult{Verified: true}, nil
	case "0":
		return &VerifyResult{Verified: false}, nil
	}

	root, err := parseResponseXML(raw)
	if err != nil {
		return nil, err
	}

	nation, err := objs.DecodeNation(root, r.GetShards())
	if err != nil {
		return nil, err
	}

	return &VerifyResult{Verified: true, Nation: nation}, nil
}
