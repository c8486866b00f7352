package objs

import (
	"testing"

	"nsgo/api/shards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWAProposals(t *testing.T) {
	root := parseRoot(t, `<WA council="1">
		<PROPOSALS>
			<PROPOSAL id="testlandia_1700000500">
				<NAME>Commend Testlandia</NAME>
				<PROPOSED_BY>aphrodia</PROPOSED_BY>
				<DESC>A commendation.</DESC>
				<CATEGORY>Commendation</CATEGORY>
				<CREATED>1700000500</CREATED>
				<APPROVALS>osiris:balder:lazarus</APPROVALS>
				<TOTAL_VOTES_FOR>120</TOTAL_VOTES_FOR>
				<TOTAL_VOTES_AGAINST>30</TOTAL_VOTES_AGAINST>
			</PROPOSAL>
		</PROPOSALS>
	</WA>`)

	w, err := DecodeWorldAssembly(root, []shards.WAShard{shards.WA_PROPOSALS})
	require.NoError(t, err)

	require.Len(t, w.Proposals, 1)
	p := w.Proposals[0]
	assert.Equal(t, "testlandia_1700000500", p.ID)
	assert.Equal(t, "Commend Testlandia", p.Title)
	assert.Equal(t, "aphrodia", p.Author)
	assert.Equal(t, int64(1700000500), p.Created)
	assert.Equal(t, []string{"osiris", "balder", "lazarus"}, p.Approvals)
	assert.Equal(t, 120, p.VotesFor)
	assert.Equal(t, 30, p.VotesAgainst)
}

func TestDecodeWAProposalWithoutTallies(t *testing.T) {
	root := parseRoot(t, `<WA council="1">
		<PROPOSALS>
			<PROPOSAL id="testlandia_1700000500">
				<NAME>Commend Testlandia</NAME>
			</PROPOSAL>
		</PROPOSALS>
	</WA>`)

	w, err := DecodeWorldAssembly(root, []shards.WAShard{shards.WA_PROPOSALS})
	require.NoError(t, err)

	require.Len(t, w.Proposals, 1)
	assert.Zero(t, w.Proposals[0].VotesFor)
	assert.Zero(t, w.Proposals[0].VotesAgainst)
}

func TestDecodeResolutionWithVoteDetail(t *testing.T) {
	root := parseRoot(t, `<WA council="1">
		<RESOLUTION>
			<ID>commend_testlandia</ID>
			<NAME>Commend Testlandia</NAME>
			<PROPOSED_BY>aphrodia</PROPOSED_BY>
			<CATEGORY>Commendation</CATEGORY>
			<CREATED>1700000500</CREATED>
			<PROMOTED>1700100500</PROMOTED>
			<TOTAL_VOTES_FOR>8041</TOTAL_VOTES_FOR>
			<TOTAL_VOTES_AGAINST>2210</TOTAL_VOTES_AGAINST>
			<VOTE_TRACK_FOR><N>100</N><N>4000</N><N>8041</N></VOTE_TRACK_FOR>
			<VOTE_TRACK_AGAINST><N>50</N><N>1000</N><N>2210</N></VOTE_TRACK_AGAINST>
			<DELVOTES_FOR>
				<DELEGATE><NATION>osiris</NATION><VOTES>42</VOTES><TIMESTAMP>1700150000</TIMESTAMP></DELEGATE>
			</DELVOTES_FOR>
			<DELVOTES_AGAINST>
			</DELVOTES_AGAINST>
		</RESOLUTION>
	</WA>`)

	w, err := DecodeWorldAssembly(root, []shards.WAShard{
		shards.WA_RESOLUTION, shards.WA_VOTE_TRACK, shards.WA_DEL_VOTES,
	})
	require.NoError(t, err)

	r := w.Resolution
	require.NotNil(t, r)
	assert.Equal(t, "Commend Testlandia", r.Title)
	assert.Equal(t, 8041, r.VotesFor)
	assert.Equal(t, 2210, r.VotesAgainst)

	require.NotNil(t, r.VoteTrack)
	assert.Equal(t, []int{100, 4000, 8041}, r.VoteTrack.For)
	assert.Equal(t, []int{50, 1000, 2210}, r.VoteTrack.Against)

	require.NotNil(t, r.DelVotes)
	require.Len(t, r.DelVotes.For, 1)
	assert.Equal(t, DelegateVote{Nation: "osiris", Votes: 42, Timestamp: 1700150000}, r.DelVotes.For[0])
	assert.Empty(t, r.DelVotes.Against)
}

func TestVoteDetailDecodersRunBeforeResolution(t *testing.T) {
	// Requesting a detail shard first must still attach to the same resolution
	// the resolution shard later fills in.
	root := parseRoot(t, `<WA council="1">
		<RESOLUTION>
			<NAME>Commend Testlandia</NAME>
			<VOTES_FOR><NATION>osiris</NATION><NATION>balder</NATION></VOTES_FOR>
			<VOTES_AGAINST><NATION>lazarus</NATION></VOTES_AGAINST>
		</RESOLUTION>
	</WA>`)

	w, err := DecodeWorldAssembly(root, []shards.WAShard{shards.WA_VOTERS, shards.WA_RESOLUTION})
	require.NoError(t, err)

	r := w.Resolution
	require.NotNil(t, r)
	assert.Equal(t, "Commend Testlandia", r.Title)

	require.NotNil(t, r.Voters)
	assert.Equal(t, []string{"osiris", "balder"}, r.Voters.For)
	assert.Equal(t, []string{"lazarus"}, r.Voters.Against)
}

func TestDecodeWAMembersAndDelegates(t *testing.T) {
	root := parseRoot(t, `<WA council="2">
		<MEMBERS>testlandia,aphrodia</MEMBERS>
		<DELEGATES>osiris</DELEGATES>
		<NUMNATIONS>2</NUMNATIONS>
		<NUMDELEGATES>1</NUMDELEGATES>
		<LASTRESOLUTION>"Liberate The East Pacific" was passed.</LASTRESOLUTION>
	</WA>`)

	w, err := DecodeWorldAssembly(root, []shards.WAShard{
		shards.WA_MEMBERS, shards.WA_DELEGATES, shards.WA_NUM_NATIONS,
		shards.WA_NUM_DELEGATES, shards.WA_LAST_RESOLUTION,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"testlandia", "aphrodia"}, w.Members)
	assert.Equal(t, []string{"osiris"}, w.Delegates)
	require.NotNil(t, w.NumNations)
	assert.Equal(t, 2, *w.NumNations)
	require.NotNil(t, w.LastResolution)
	assert.Contains(t, *w.LastResolution, "Liberate The East Pacific")
}
