package objs

import (
	"testing"

	"nsgo/api/shards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWorldRegionsTagSharing(t *testing.T) {
	// Both shards answer with a REGIONS tag: plain regions first, by-tag second.
	root := parseRoot(t, `<WORLD>
		<REGIONS>the_north_pacific,the_south_pacific</REGIONS>
		<REGIONS>osiris,balder</REGIONS>
	</WORLD>`)

	w, err := DecodeWorld(root, []shards.WorldShard{shards.WORLD_REGIONS, shards.WORLD_REGIONS_BY_TAG})
	require.NoError(t, err)

	assert.Equal(t, []string{"the_north_pacific", "the_south_pacific"}, w.Regions)
	assert.Equal(t, []string{"osiris", "balder"}, w.RegionsByTag)
}

func TestDecodeWorldRegionsByTagAlone(t *testing.T) {
	// Without the plain regions shard, the single REGIONS tag is the by-tag list.
	root := parseRoot(t, `<WORLD><REGIONS>osiris,balder</REGIONS></WORLD>`)

	w, err := DecodeWorld(root, []shards.WorldShard{shards.WORLD_REGIONS_BY_TAG})
	require.NoError(t, err)

	assert.Nil(t, w.Regions)
	assert.Equal(t, []string{"osiris", "balder"}, w.RegionsByTag)
}

func TestDecodeWorldHappenings(t *testing.T) {
	root := parseRoot(t, `<WORLD>
		<HAPPENINGS>
			<EVENT id="1001"><TIMESTAMP>1700000300</TIMESTAMP><TEXT>@@testlandia@@ answered an issue.</TEXT></EVENT>
			<EVENT id="1002"><TIMESTAMP>1700000400</TIMESTAMP><TEXT>@@aphrodia@@ was founded in %%osiris%%.</TEXT></EVENT>
		</HAPPENINGS>
		<NUMNATIONS>293000</NUMNATIONS>
	</WORLD>`)

	w, err := DecodeWorld(root, []shards.WorldShard{shards.WORLD_HAPPENINGS, shards.WORLD_NUM_NATIONS})
	require.NoError(t, err)

	require.Len(t, w.Happenings, 2)
	assert.Equal(t, 1001, w.Happenings[0].ID)
	assert.Equal(t, int64(1700000300), w.Happenings[0].Timestamp)

	require.NotNil(t, w.NumNations)
	assert.Equal(t, 293000, *w.NumNations)
}

func TestDecodeWorldDispatch(t *testing.T) {
	root := parseRoot(t, `<WORLD>
		<DISPATCH id="1234567">
			<TITLE>A Treatise</TITLE>
			<AUTHOR>testlandia</AUTHOR>
			<CATEGORY>Factbook</CATEGORY>
			<SUBCATEGORY>Overview</SUBCATEGORY>
			<CREATED>1690000000</CREATED>
			<EDITED>1695000000</EDITED>
			<VIEWS>8041</VIEWS>
			<SCORE>112</SCORE>
			<TEXT>body text</TEXT>
		</DISPATCH>
	</WORLD>`)

	w, err := DecodeWorld(root, []shards.WorldShard{shards.WORLD_DISPATCH})
	require.NoError(t, err)

	require.NotNil(t, w.Dispatch)
	assert.Equal(t, 1234567, w.Dispatch.ID)
	assert.Equal(t, "A Treatise", w.Dispatch.Title)
	assert.Equal(t, "body text", w.Dispatch.Text)
	assert.Equal(t, 112, w.Dispatch.Score)
}
