package api

import (
	"net/url"
	"testing"

	"nsgo/api/shards"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"New Leftopia":   "new_leftopia",
		"testlandia":     "testlandia",
		" Padded Name ":  "padded_name",
		"Already_Normal": "already_normal",
	}

	for input, expected := range cases {
		if actual := NormalizeName(input); actual != expected {
			t.Errorf("Expected '%s' but got '%s'", expected, actual)
		}
	}
}

func TestArgsOrderAndOverwrite(t *testing.T) {
	args := NewArgs()
	args.Set("nation", "testlandia")
	args.Set("q", "name", "flag")
	args.Set("v", "12")

	// Overwriting keeps the original position.
	args.Set("q", "motto")

	assert.Equal(t, []string{"nation", "q", "v"}, args.Names())
	assert.Equal(t, "motto", args.Get("q"))
}

func TestArgsAppendAndRemove(t *testing.T) {
	args := NewArgs()
	args.Set("q", "name")
	args.Append("q", "flag", "motto")

	assert.Equal(t, "name+flag+motto", args.Get("q"))

	args.Remove("q")
	assert.Empty(t, args.Names())
	assert.Equal(t, "", args.Get("q"))

	// Appending to an absent name behaves like Set.
	args.Append("scale", "3", "7")
	assert.Equal(t, "3+7", args.Get("scale"))
}

func TestArgsEncodeKeepsSeparatorLiteral(t *testing.T) {
	args := NewArgs()
	args.Set("nation", "new_leftopia")
	args.Set("q", "name", "flag")
	args.Set("text", "a b&c")

	encoded := args.Encode()
	assert.Equal(t, "nation=new_leftopia&q=name+flag&text=a+b%26c", encoded)
}

func TestArgsEncodeEscapesPlusInsideValue(t *testing.T) {
	args := NewArgs()
	args.Set("text", "2+2=4")
	args.Set("q", "name", "flag")

	assert.Equal(t, "text=2%2B2%3D4&q=name+flag", args.Encode())

	// The form decodes back to the original text, not to "2 2=4".
	parsed, err := url.ParseQuery(args.Encode())
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "2+2=4", parsed.Get("text"))
	assert.Equal(t, "name flag", parsed.Get("q"))
}

func TestMissingArgsFailsBeforeNetwork(t *testing.T) {
	// Points nowhere; a send that hits the wire would error differently.
	c, err := NewClient("nsgo test runner")
	if err != nil {
		t.Fatal(err)
	}
	c.URL = "http://127.0.0.1:0"

	r := c.Nation("")
	_, err = r.Send()

	var missing *MissingArgsError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"nation"}, missing.Names)
}

func TestClientRequiresUserAgent(t *testing.T) {
	_, err := NewClient("   ")
	assert.ErrorIs(t, err, ErrNoUserAgent)
}

func TestShardListRewritesQueryArg(t *testing.T) {
	c, err := NewClient("nsgo test runner")
	if err != nil {
		t.Fatal(err)
	}

	r := c.Nation("Testlandia").Shards(shards.NATION_NAME, shards.NATION_FLAG)
	assert.Equal(t, "name+flag", r.GetArgument("q"))

	// Adding a duplicate keeps first-seen order and uniqueness.
	r.AddShards(shards.NATION_NAME, shards.NATION_MOTTO)
	assert.Equal(t, "name+flag+motto", r.GetArgument("q"))
}

func TestCensusHelpersRequireCensusShard(t *testing.T) {
	c, err := NewClient("nsgo test runner")
	if err != nil {
		t.Fatal(err)
	}

	r := c.Nation("Testlandia").Shards(shards.NATION_NAME).CensusScales(3, 7)
	assert.Equal(t, "name+census", r.GetArgument("q"))
	assert.Equal(t, "3+7", r.GetArgument("scale"))

	r.CensusModes(shards.CENSUS_MODE_SCORE, shards.CENSUS_MODE_RANK)
	assert.Equal(t, "score+rank", r.GetArgument("mode"))

	// History overwrites any previously selected modes.
	r.CensusHistory(100, 200)
	assert.Equal(t, "history", r.GetArgument("mode"))
	assert.Equal(t, "100", r.GetArgument("from"))
	assert.Equal(t, "200", r.GetArgument("to"))
}
