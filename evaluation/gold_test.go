package evaluation_test

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/evaluation"
	"github.com/katalvlaran/triad/similarity"
)

const goldFile = `# answer set
S1,T1

S1 , T2
S2	T1
S2 T3 extra
bad
S1,T1
`

func TestLoadGoldStandard(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/answer.csv", []byte(goldFile), 0o644))

	g, err := evaluation.LoadGoldStandard(fs, "/data/answer.csv")
	require.NoError(t, err)

	assert.Equal(t, 4, g.TotalRelevantLinks(), "duplicates count once")
	assert.True(t, g.IsLink("S1", "T2"))
	assert.True(t, g.IsLink("S2", "T3"))
	assert.False(t, g.IsLink("T1", "S1"))
	assert.Equal(t, []string{"T1", "T2"}, g.RelevantLinks("S1"))
	assert.Empty(t, g.RelevantLinks("S9"))
	assert.Equal(t, []similarity.Link{
		{Source: "S1", Target: "T1", Score: 1},
		{Source: "S1", Target: "T2", Score: 1},
		{Source: "S2", Target: "T1", Score: 1},
		{Source: "S2", Target: "T3", Score: 1},
	}, g.Links())
}

func TestLoadGoldStandardErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data/gold", 0o755))

	_, err := evaluation.LoadGoldStandard(fs, "/data/gold")
	require.ErrorIs(t, err, evaluation.ErrGoldIsDir)

	_, err = evaluation.LoadGoldStandard(fs, "/data/missing.csv")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseGoldStandardEmpty(t *testing.T) {
	g, err := evaluation.ParseGoldStandard(strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	assert.Zero(t, g.TotalRelevantLinks())
	assert.Empty(t, g.Links())
}
