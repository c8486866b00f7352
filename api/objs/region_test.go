package objs

import (
	"testing"

	"nsgo/api/shards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRegionMessages(t *testing.T) {
	root := parseRoot(t, `<REGION id="the_south_pacific">
		<MESSAGES>
			<POST id="408810">
				<TIMESTAMP>1700000100</TIMESTAMP>
				<NATION>testlandia</NATION>
				<STATUS>0</STATUS>
				<LIKES>2</LIKES>
				<LIKERS>aphrodia:united_mayottes</LIKERS>
				<MESSAGE>hello world</MESSAGE>
			</POST>
			<POST id="408811">
				<TIMESTAMP>1700000200</TIMESTAMP>
				<NATION>aphrodia</NATION>
				<STATUS>1</STATUS>
				<MESSAGE>[deleted]</MESSAGE>
			</POST>
		</MESSAGES>
	</REGION>`)

	r, err := DecodeRegion(root, []shards.RegionShard{shards.REGION_MESSAGES})
	require.NoError(t, err)

	require.Len(t, r.Messages, 2)

	first := r.Messages[0]
	assert.Equal(t, 408810, first.ID)
	assert.Equal(t, "testlandia", first.Nation)
	assert.Equal(t, 2, first.Likes)
	assert.Equal(t, []string{"aphrodia", "united_mayottes"}, first.LikedBy)
	assert.Equal(t, "hello world", first.Message)

	assert.Equal(t, 1, r.Messages[1].Status)
	assert.Empty(t, r.Messages[1].LikedBy)
}

func TestDecodeRegionTallyShardsAreIndependent(t *testing.T) {
	// All three leaderboards in one body; each shard must read only its own tag.
	root := parseRoot(t, `<REGION id="the_south_pacific">
		<MOSTPOSTS>
			<NATION><NAME>testlandia</NAME><POSTS>512</POSTS></NATION>
		</MOSTPOSTS>
		<MOSTLIKED>
			<NATION><NAME>aphrodia</NAME><LIKED>99</LIKED></NATION>
		</MOSTLIKED>
		<MOSTLIKES>
			<NATION><NAME>united_mayottes</NAME><LIKES>74</LIKES></NATION>
		</MOSTLIKES>
	</REGION>`)

	r, err := DecodeRegion(root, []shards.RegionShard{
		shards.REGION_MOST_POSTS, shards.REGION_MOST_LIKED, shards.REGION_MOST_LIKES,
	})
	require.NoError(t, err)

	require.Len(t, r.MostPosts, 1)
	assert.Equal(t, NationTally{Nation: "testlandia", Count: 512}, r.MostPosts[0])

	require.Len(t, r.MostLiked, 1)
	assert.Equal(t, NationTally{Nation: "aphrodia", Count: 99}, r.MostLiked[0])

	require.Len(t, r.MostLikes, 1)
	assert.Equal(t, NationTally{Nation: "united_mayottes", Count: 74}, r.MostLikes[0])
}

func TestDecodeRegionOfficersAndEmbassies(t *testing.T) {
	root := parseRoot(t, `<REGION id="the_south_pacific">
		<OFFICERS>
			<OFFICER>
				<NATION>aphrodia</NATION>
				<OFFICE>Minister of Culture</OFFICE>
				<AUTHORITY>ACE</AUTHORITY>
				<TIME>1650000000</TIME>
				<BY>testlandia</BY>
				<ORDER>1</ORDER>
			</OFFICER>
		</OFFICERS>
		<EMBASSIES>
			<EMBASSY>Osiris</EMBASSY>
			<EMBASSY type="pending">Balder</EMBASSY>
		</EMBASSIES>
	</REGION>`)

	r, err := DecodeRegion(root, []shards.RegionShard{shards.REGION_OFFICERS, shards.REGION_EMBASSIES})
	require.NoError(t, err)

	require.Len(t, r.Officers, 1)
	officer := r.Officers[0]
	assert.Equal(t, "Minister of Culture", officer.Office)
	assert.Equal(t, "ACE", officer.Authority)
	assert.Equal(t, int64(1650000000), officer.Appointed)

	require.Len(t, r.Embassies, 2)
	assert.Equal(t, Embassy{Region: "Osiris", Status: ""}, r.Embassies[0])
	assert.Equal(t, Embassy{Region: "Balder", Status: "pending"}, r.Embassies[1])
}
