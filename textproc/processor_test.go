package textproc_test

import (
	"testing"

	"github.com/katalvlaran/triad/textproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTextBlank(t *testing.T) {
	assert.Equal(t, "", textproc.ProcessText(""))
	assert.Equal(t, "", textproc.ProcessText("  \n\t"))
	assert.Empty(t, textproc.Tokens("12 34 -- !!"))
}

func TestProcessWordPluralAcronym(t *testing.T) {
	assert.Equal(t, "uav", textproc.ProcessWord("UAVs"))
	assert.Equal(t, []string{"uav"}, textproc.Tokens("UAVs"))
}

func TestCamelAndSnakeSplitting(t *testing.T) {
	assert.Equal(t, []string{"flight", "plan"}, textproc.Tokens("flightPlan"))
	assert.Equal(t, []string{"http", "server"}, textproc.Tokens("HTTPServer"))
	assert.Equal(t, "max speed", textproc.ProcessWord("max_speed"))
}

func TestStopwordsAndLengthFilter(t *testing.T) {
	assert.Empty(t, textproc.Tokens("the and of"))
	assert.Equal(t, []string{"cd"}, textproc.Tokens("a b cd"))
	assert.True(t, textproc.IsStopword("the"))
	assert.False(t, textproc.IsStopword("flight"))
}

func TestStemming(t *testing.T) {
	assert.Equal(t, "send", textproc.Stem("sends"))
	assert.Equal(t, "run", textproc.Stem("running"))
	assert.Equal(t, []string{"flight", "send"}, textproc.Tokens("Flights sends"))
}

func TestHyphensAndDigits(t *testing.T) {
	assert.Equal(t, []string{"content", "type"}, textproc.Tokens("content-type"))
	assert.Equal(t, []string{"speed", "limit"}, textproc.Tokens("speed2limit"))
}

func TestNormalizeFullWidth(t *testing.T) {
	// Full-width letters fold to ASCII under NFKC.
	assert.Equal(t, "Flight", textproc.Normalize("Ｆｌｉｇｈｔ"))
	assert.Equal(t, []string{"flight"}, textproc.Tokens("Ｆｌｉｇｈｔ"))
}

func TestSentences(t *testing.T) {
	got := textproc.Sentences("The UAV takes off. It lands!\nThen idle;  ")
	require.Len(t, got, 3)
	assert.Equal(t, "The UAV takes off", got[0])
	assert.Equal(t, "It lands", got[1])
	assert.Equal(t, "Then idle", got[2])
	assert.Empty(t, textproc.Sentences(" . ; "))
}
