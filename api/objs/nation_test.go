package objs

import (
	"testing"

	"nsgo/api/shards"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRoot(t *testing.T, body string) *etree.Element {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		t.Fatal(err)
	}

	return doc.Root()
}

func TestDecodeNationGatesOnRequestedShards(t *testing.T) {
	root := parseRoot(t, `<NATION id="testlandia">
		<NAME>Testlandia</NAME>
		<POPULATION>40101</POPULATION>
		<FLAG>https://example.test/flag.png</FLAG>
	</NATION>`)

	n, err := DecodeNation(root, []shards.NationShard{shards.NATION_NAME, shards.NATION_POPULATION})
	require.NoError(t, err)

	require.NotNil(t, n.Name)
	assert.Equal(t, "Testlandia", *n.Name)
	require.NotNil(t, n.Population)
	assert.Equal(t, 40101, *n.Population)

	// FLAG is present in the body but its shard was not requested.
	assert.Nil(t, n.Flag)
}

func TestDecodeNationAbsentTagsStayNil(t *testing.T) {
	root := parseRoot(t, `<NATION id="testlandia"><NAME>Testlandia</NAME></NATION>`)

	n, err := DecodeNation(root, []shards.NationShard{shards.NATION_NAME, shards.NATION_POPULATION, shards.NATION_MOTTO})
	require.NoError(t, err)

	require.NotNil(t, n.Name)
	assert.Nil(t, n.Population)
	assert.Nil(t, n.Motto)
}

func TestDecodeNationCustomLeaderAliasing(t *testing.T) {
	// Both shards on one request: base LEADER at index 0, custom at index 1.
	root := parseRoot(t, `<NATION id="testlandia">
		<LEADER>The Chairman</LEADER>
		<LEADER>Violet</LEADER>
	</NATION>`)

	n, err := DecodeNation(root, []shards.NationShard{shards.NATION_LEADER, shards.NATION_CUSTOM_LEADER})
	require.NoError(t, err)

	require.NotNil(t, n.Leader)
	assert.Equal(t, "The Chairman", *n.Leader)
	require.NotNil(t, n.CustomLeader)
	assert.Equal(t, "Violet", *n.CustomLeader)
}

func TestDecodeNationCustomLeaderAlone(t *testing.T) {
	// Custom shard alone: the single LEADER tag belongs to it.
	root := parseRoot(t, `<NATION id="testlandia"><LEADER>Violet</LEADER></NATION>`)

	n, err := DecodeNation(root, []shards.NationShard{shards.NATION_CUSTOM_LEADER})
	require.NoError(t, err)

	assert.Nil(t, n.Leader)
	require.NotNil(t, n.CustomLeader)
	assert.Equal(t, "Violet", *n.CustomLeader)
}

func TestDecodeNationWAStatusAndAnswered(t *testing.T) {
	// Both shards read a tag whose name differs from the shard token.
	root := parseRoot(t, `<NATION id="testlandia">
		<UNSTATUS>WA Member</UNSTATUS>
		<ISSUES_ANSWERED>4242</ISSUES_ANSWERED>
	</NATION>`)

	n, err := DecodeNation(root, []shards.NationShard{shards.NATION_WA_STATUS, shards.NATION_ANSWERED})
	require.NoError(t, err)

	require.NotNil(t, n.WAStatus)
	assert.Equal(t, "WA Member", *n.WAStatus)
	require.NotNil(t, n.IssuesAnswered)
	assert.Equal(t, 4242, *n.IssuesAnswered)
}

func TestDecodeNationDeathsAndGovt(t *testing.T) {
	root := parseRoot(t, `<NATION id="testlandia">
		<DEATHS>
			<CAUSE type="Old Age">87.3</CAUSE>
			<CAUSE type="Capital Punishment">12.7</CAUSE>
		</DEATHS>
		<GOVT>
			<ADMINISTRATION>5.2</ADMINISTRATION>
			<DEFENCE>10.1</DEFENCE>
			<EDUCATION>12.9</EDUCATION>
			<ENVIRONMENT>8.3</ENVIRONMENT>
			<HEALTHCARE>14.8</HEALTHCARE>
			<COMMERCE>6.5</COMMERCE>
			<INTERNATIONALAID>2.2</INTERNATIONALAID>
			<LAWANDORDER>9.1</LAWANDORDER>
			<PUBLICTRANSPORT>7.4</PUBLICTRANSPORT>
			<SOCIALEQUALITY>4.6</SOCIALEQUALITY>
			<SPIRITUALITY>3.3</SPIRITUALITY>
			<WELFARE>15.6</WELFARE>
		</GOVT>
	</NATION>`)

	n, err := DecodeNation(root, []shards.NationShard{shards.NATION_DEATHS, shards.NATION_GOVT})
	require.NoError(t, err)

	require.Len(t, n.Deaths, 2)
	assert.Equal(t, "Old Age", n.Deaths[0].Cause)
	assert.Equal(t, 87.3, n.Deaths[0].Percent)

	require.NotNil(t, n.Govt)
	assert.Equal(t, 10.1, n.Govt.Defence)
	assert.Equal(t, 15.6, n.Govt.Welfare)
}

func TestDecodeNationCensus(t *testing.T) {
	root := parseRoot(t, `<NATION id="testlandia">
		<CENSUS>
			<SCALE id="3">
				<SCORE>113.25</SCORE>
				<RANK>4075</RANK>
				<RRANK>12</RRANK>
			</SCALE>
		</CENSUS>
	</NATION>`)

	n, err := DecodeNation(root, []shards.NationShard{shards.NATION_CENSUS})
	require.NoError(t, err)

	require.Len(t, n.Census, 1)
	record := n.Census[0]
	assert.Equal(t, 3, record.ScaleID)
	require.NotNil(t, record.Score)
	assert.Equal(t, 113.25, *record.Score)
	require.NotNil(t, record.Rank)
	assert.Equal(t, 4075, *record.Rank)
	require.NotNil(t, record.RegionRank)
	assert.Equal(t, 12, *record.RegionRank)
	assert.Nil(t, record.PercentRank)
}
