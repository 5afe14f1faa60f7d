package similarity_test

import (
	"testing"

	"github.com/katalvlaran/triad/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLinkAccumulatesSetScoreReplaces(t *testing.T) {
	m := similarity.New()
	m.AddLink("s", "t", 1.0)
	m.AddLink("s", "t", 2.0)
	assert.Len(t, m.Links("s"), 2)
	assert.Equal(t, 1.0, m.Score("s", "t"), "first link wins on lookup")

	n := similarity.New()
	n.SetScore("s", "t", 1.0)
	n.SetScore("s", "t", 2.0)
	require.Len(t, n.Links("s"), 1)
	assert.Equal(t, 2.0, n.Links("s")[0].Score)
}

func TestScoreAbsent(t *testing.T) {
	m := similarity.New()
	assert.Equal(t, 0.0, m.Score("nope", "none"))
	assert.Nil(t, m.Links("nope"))
	assert.False(t, m.Has("nope", "none"))
}

func TestSourcesTargetsAllLinks(t *testing.T) {
	m := similarity.New()
	m.AddLink("s2", "t1", 0.3)
	m.AddLink("s1", "t2", 0.2)
	m.AddLink("s1", "t1", 0.1)

	assert.Equal(t, []string{"s1", "s2"}, m.Sources())
	assert.Equal(t, []string{"t1", "t2"}, m.Targets())
	assert.Equal(t, 3, m.Len())
	all := m.AllLinks()
	require.Len(t, all, 3)
	assert.Equal(t, similarity.Link{Source: "s1", Target: "t2", Score: 0.2}, all[0])
	assert.Equal(t, "s2", all[2].Source)
}

func TestThresholdsAreStrict(t *testing.T) {
	m := similarity.New()
	m.AddLink("s", "a", 0.5)
	m.AddLink("s", "b", 0.6)
	m.AddLink("s", "c", 0.4)

	above := m.LinksAbove(0.5)
	require.Len(t, above, 1)
	assert.Equal(t, "b", above[0].Target)

	below := m.LinksBelow(0.5)
	require.Len(t, below, 1)
	assert.Equal(t, "c", below[0].Target)
}

func TestTopK(t *testing.T) {
	m := similarity.New()
	for i, s := range []float64{0.9, 0.7, 0.5, 0.3} {
		m.AddLink("s", string(rune('a'+i)), s)
	}

	top, err := m.TopK(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 0.7, top[0].Score)
	assert.Equal(t, 0.9, top[1].Score)

	all, err := m.TopK(10)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = m.TopK(-1)
	require.ErrorIs(t, err, similarity.ErrNegativeK)
	assert.Equal(t, 0.9, m.Links("s")[0].Score, "matrix order is untouched")
}

func TestCloneIsDeep(t *testing.T) {
	m := similarity.New()
	m.AddLink("s", "t", 0.5)
	c := m.Clone()
	c.SetScore("s", "t", 0.9)
	c.AddLink("x", "y", 1)

	assert.Equal(t, 0.5, m.Score("s", "t"))
	assert.Equal(t, []string{"s"}, m.Sources())
}

func TestSortedDescIsStable(t *testing.T) {
	in := []similarity.Link{{Target: "a", Score: 0.2}, {Target: "b", Score: 0.5}, {Target: "c", Score: 0.2}}
	out := similarity.SortedDesc(in)
	assert.Equal(t, []string{"b", "a", "c"}, []string{out[0].Target, out[1].Target, out[2].Target})
	assert.Equal(t, "a", in[0].Target)
}
