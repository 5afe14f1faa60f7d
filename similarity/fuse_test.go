package similarity_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/triad/similarity"
	"github.com/stretchr/testify/assert"
)

func TestAverageDropsNonPositive(t *testing.T) {
	a, b, c := similarity.New(), similarity.New(), similarity.New()
	a.AddLink("s", "t1", 0.3)
	b.AddLink("s", "t1", 0.6)
	a.AddLink("s", "t2", 0)
	c.AddLink("s", "t3", 0.9)

	got := similarity.Average(a, b, c)
	assert.InDelta(t, 0.3, got.Score("s", "t1"), 1e-12)
	assert.InDelta(t, 0.3, got.Score("s", "t3"), 1e-12)
	assert.False(t, got.Has("s", "t2"), "zero mean is not kept")
	assert.Equal(t, 0, similarity.Average().Len())
}

func TestMaxOverUsesFirstGrid(t *testing.T) {
	a, b := similarity.New(), similarity.New()
	a.AddLink("s1", "t1", 0.2)
	a.AddLink("s2", "t2", 0.4)
	b.AddLink("s1", "t1", 0.5)
	b.AddLink("s1", "t2", 0.1)
	b.AddLink("s9", "t1", 0.9)

	got := similarity.MaxOver(a, b)
	assert.Equal(t, 0.5, got.Score("s1", "t1"))
	assert.Equal(t, 0.1, got.Score("s1", "t2"))
	assert.Equal(t, 0.4, got.Score("s2", "t2"))
	assert.False(t, got.Has("s2", "t1"))
	assert.False(t, got.Has("s9", "t1"), "sources outside a are ignored")
}

func TestFuseAverage(t *testing.T) {
	base, enriched := similarity.New(), similarity.New()
	base.AddLink("s", "t1", 0.4)
	base.AddLink("s", "t2", 0.0)
	enriched.AddLink("s", "t1", 0.8)
	enriched.AddLink("s", "t2", 0.2)
	enriched.AddLink("x", "t1", 1.0)

	got := similarity.FuseAverage(base, enriched)
	assert.InDelta(t, 0.6, got.Score("s", "t1"), 1e-12)
	assert.InDelta(t, 0.1, got.Score("s", "t2"), 1e-12)
	assert.Len(t, got.Links("s"), 2)
	assert.Nil(t, got.Links("x"))
	assert.Equal(t, 0.4, base.Score("s", "t1"), "base is not mutated")
}

func TestWriteCSV(t *testing.T) {
	m := similarity.New()
	m.AddLink("s2", "t1", 0.5)
	m.AddLink("s1", "t2", 0.123456)

	var buf bytes.Buffer
	assert.NoError(t, m.WriteCSV(&buf))
	want := "Source Artifact,t1,t2\n" +
		"s1,0.0000,0.1235\n" +
		"s2,0.5000,0.0000\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	assert.NoError(t, similarity.New().WriteCSV(&buf))
	assert.Empty(t, buf.String())
}

func TestWriteCSVDuplicatePairUsesFirstLink(t *testing.T) {
	m := similarity.New()
	m.AddLink("s1", "t1", 0.25)
	m.AddLink("s1", "t1", 0.75)
	assert.Equal(t, 0.25, m.Score("s1", "t1"))

	var buf bytes.Buffer
	assert.NoError(t, m.WriteCSV(&buf))
	assert.Equal(t, "Source Artifact,t1\ns1,0.2500\n", buf.String())
}
