package enrichment_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/enrichment"
	"github.com/katalvlaran/triad/ir"
	"github.com/katalvlaran/triad/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(id, content string) artifact.Artifact {
	return artifact.ParsePrecomputed(id, artifact.KindTextual, content)
}

func quietOptions() *enrichment.Options {
	opts := enrichment.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return &opts
}

// sharedKeys scores a pair by the number of biterm keys both sides carry, / 10.
type sharedKeys struct{}

func (sharedKeys) Name() string { return "SHARED" }

func (sharedKeys) Compute(source, target *artifact.Collection) (*similarity.Matrix, error) {
	out := similarity.New()
	for _, s := range source.Artifacts() {
		sf := artifact.Frequencies(s.Biterms(nil))
		for _, t := range target.Artifacts() {
			n := 0
			for k := range artifact.Frequencies(t.Biterms(nil)) {
				if _, ok := sf[k]; ok {
					n++
				}
			}
			if n > 0 {
				out.AddLink(s.ID(), t.ID(), float64(n)/10)
			}
		}
	}
	return out, nil
}

func TestVotes(t *testing.T) {
	row := []similarity.Link{
		{Source: "S1", Target: "I3", Score: 0.3},
		{Source: "S1", Target: "I1", Score: 0.8},
		{Source: "S1", Target: "I2", Score: 0.4},
	}
	neighbors := map[string]map[string]int{
		"I1": {"flightPlan": 6},
		"I2": {"flightPlan": 1, "gearRetract": 3},
		"I3": {"brakeCheck": 50}, // below rowMax·M
	}
	votes := enrichment.Votes(row, neighbors, enrichment.DefaultOptions())

	require.Len(t, votes, 2)
	assert.InDelta(t, math.Log(7)+0.5*math.Log(2), votes["flightPlan"], 1e-12)
	assert.InDelta(t, 0.5*math.Log(4), votes["gearRetract"], 1e-12)
}

func TestVotesTopK(t *testing.T) {
	row := []similarity.Link{
		{Target: "I1", Score: 1}, {Target: "I2", Score: 0.9}, {Target: "I3", Score: 0.8},
	}
	neighbors := map[string]map[string]int{"I1": {"a": 1}, "I2": {"b": 1}, "I3": {"c": 1}}
	opts := enrichment.DefaultOptions()
	opts.TopK = 2

	votes := enrichment.Votes(row, neighbors, opts)
	assert.Contains(t, votes, "a")
	assert.Contains(t, votes, "b")
	assert.NotContains(t, votes, "c")
}

func TestVotesEmptyOrZeroRow(t *testing.T) {
	opts := enrichment.DefaultOptions()
	assert.Empty(t, enrichment.Votes(nil, nil, opts))
	zero := []similarity.Link{{Target: "I1", Score: 0}}
	assert.Empty(t, enrichment.Votes(zero, map[string]map[string]int{"I1": {"a": 100}}, opts))
}

func TestSelect(t *testing.T) {
	votes := map[string]float64{
		"aaBb": 1.5, // below MinAgreements
		"ccDd": 2.5, // rounds half away from zero
		"eeFf": 9,   // capped at MaxRepPerBiterm
		"ggHh": 2,   // exactly at the threshold
	}
	got := enrichment.Select(votes, enrichment.DefaultOptions())

	require.Len(t, got, 3)
	assert.Equal(t, enrichment.Candidate{Key: "eeFf", Score: 9, Reps: 4}, got[0])
	assert.Equal(t, enrichment.Candidate{Key: "ccDd", Score: 2.5, Reps: 3}, got[1])
	assert.Equal(t, enrichment.Candidate{Key: "ggHh", Score: 2, Reps: 2}, got[2])
}

func TestSelectTiesAndTruncation(t *testing.T) {
	opts := enrichment.DefaultOptions()
	opts.MaxBitermsPerDoc = 2
	got := enrichment.Select(map[string]float64{"zzA": 3, "mmB": 3, "aaC": 3}, opts)
	require.Len(t, got, 2)
	assert.Equal(t, "aaC", got[0].Key)
	assert.Equal(t, "mmB", got[1].Key)
}

func TestExtendPrecomputed(t *testing.T) {
	c := artifact.NewCollection(fixed("S1", "flightPlan:1"), fixed("S2", "gearRetract:1"))
	sel := map[string][]enrichment.Candidate{
		"S1": {{Key: "landUav", Score: 2.3, Reps: 2}},
	}

	ext, st := enrichment.Extend(c, sel)
	s1, ok := ext.Get("S1")
	require.True(t, ok)
	assert.Equal(t, "flightPlan\nland uav land uav", s1.Text())
	assert.Equal(t, map[string]int{"flightPlan": 1, "landUav": 2}, artifact.Frequencies(s1.Biterms(nil)))

	s2, _ := ext.Get("S2")
	orig, _ := c.Get("S2")
	assert.Equal(t, orig, s2, "artifacts without candidates are copied as is")

	before, _ := c.Get("S1")
	assert.Equal(t, "flightPlan", before.Text(), "input collection is untouched")
	assert.Equal(t, enrichment.Stats{Artifacts: 2, KeptBiterms: 1, AppendedTerms: 4}, st)
}

func TestExtendExtracted(t *testing.T) {
	c := artifact.NewCollection(artifact.New("R1", artifact.KindTextual, "UAV lands."))
	ext, _ := enrichment.Extend(c, map[string][]enrichment.Candidate{
		"R1": {{Key: "flightPlan", Score: 1, Reps: 1}},
	})
	r1, _ := ext.Get("R1")
	freq := artifact.Frequencies(r1.Biterms(nil))
	assert.Equal(t, 1, freq["flightPlan"])
	assert.Equal(t, 1, freq["landUav"])
}

func TestExtendCodeTarget(t *testing.T) {
	source := artifact.NewCollection(artifact.New("R1", artifact.KindTextual, "The flight plan is sent."))
	target := artifact.NewCollection(
		artifact.New("C1", artifact.KindJavaCode, "class Lander { void land() {} }"),
		artifact.New("C2", artifact.KindJavaCode, "class RoutePlanner { int routeIndex; }"),
	)

	ext, stats := enrichment.Extend(target, map[string][]enrichment.Candidate{
		"C1": {{Key: "flightPlan", Score: 3, Reps: 3}},
	})
	assert.Equal(t, enrichment.Stats{Artifacts: 2, KeptBiterms: 1, AppendedTerms: 6}, stats)

	c1, ok := ext.Get("C1")
	require.True(t, ok)
	assert.Equal(t, 3, artifact.Frequencies(c1.Biterms(nil))["flightPlan"])

	vsm := ir.NewVSM(nil)
	before, err := vsm.Compute(source, target)
	require.NoError(t, err)
	after, err := vsm.Compute(source, ext)
	require.NoError(t, err)
	assert.Equal(t, 0.0, before.Score("R1", "C1"))
	assert.Greater(t, after.Score("R1", "C1"), 0.0, "appended biterms reach the code vocabulary")
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, enrichment.DefaultOptions().Validate())

	bad := []func(o *enrichment.Options){
		func(o *enrichment.Options) { o.M = 0 },
		func(o *enrichment.Options) { o.M = 1.5 },
		func(o *enrichment.Options) { o.TopK = 0 },
		func(o *enrichment.Options) { o.MinAgreements = -1 },
		func(o *enrichment.Options) { o.MaxBitermsPerDoc = -1 },
		func(o *enrichment.Options) { o.MaxRepPerBiterm = 0 },
	}
	for i, mutate := range bad {
		o := enrichment.DefaultOptions()
		mutate(&o)
		assert.ErrorIs(t, o.Validate(), enrichment.ErrInvalidOptions, "case %d", i)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := enrichment.New(nil, nil)
	require.ErrorIs(t, err, enrichment.ErrNilModel)

	opts := enrichment.DefaultOptions()
	opts.TopK = 0
	_, err = enrichment.New(sharedKeys{}, &opts)
	require.ErrorIs(t, err, enrichment.ErrInvalidOptions)

	e, err := enrichment.New(sharedKeys{}, nil)
	require.NoError(t, err)
	assert.Equal(t, enrichment.DefaultTopK, e.Options().TopK)
}

func TestThreeTierWithVSM(t *testing.T) {
	source := artifact.NewCollection(fixed("S1", "flightPlan:1"))
	intermediate := artifact.NewCollection(fixed("I1", "flightPlan:1\nuavLand:9"))
	target := artifact.NewCollection(fixed("T1", "uavLand:2"), fixed("T2", "gearRetract:1"))

	sToI := similarity.New()
	sToI.AddLink("S1", "I1", 0.9)
	tToI := similarity.New()

	vsm := ir.NewVSM(nil)
	baseline, err := vsm.Compute(source, target)
	require.NoError(t, err)
	require.Zero(t, baseline.Score("S1", "T1"))

	e, err := enrichment.New(vsm, quietOptions())
	require.NoError(t, err)
	got, err := e.ThreeTier(source, intermediate, target, sToI, tToI)
	require.NoError(t, err)

	// ln(1+9) ≈ 2.30 passes; flightPlan's ln 2 does not.
	extended := artifact.NewCollection(fixed("S1", "flightPlan:1\nlandUav:2"))
	want, err := vsm.Compute(extended, target)
	require.NoError(t, err)
	require.Greater(t, want.Score("S1", "T1"), 0.0)
	assert.InDelta(t, want.Score("S1", "T1")/2, got.Score("S1", "T1"), 1e-12)
	assert.False(t, got.Has("S1", "T2"))

	s1, _ := source.Get("S1")
	assert.Len(t, s1.Biterms(nil), 1, "sources are not modified")
}

func TestTwoTierMaxFusion(t *testing.T) {
	source := artifact.NewCollection(fixed("S1", "flightPlan:1"))
	target := artifact.NewCollection(fixed("T1", "flightPlan:1\nuavLand:9"), fixed("T2", "gearRetract:1"))

	sToT := similarity.New()
	sToT.AddLink("S1", "T1", 1)
	tToS := similarity.New()
	tToS.AddLink("T1", "S1", 1)

	e, err := enrichment.New(sharedKeys{}, quietOptions())
	require.NoError(t, err)
	got, err := e.TwoTier(source, target, sToT, tToS)
	require.NoError(t, err)

	// Enriched S1 shares flightPlan and landUav with T1; the plain pair shares one key.
	assert.InDelta(t, 0.2, got.Score("S1", "T1"), 1e-12)
	assert.False(t, got.Has("S1", "T2"))
	assert.Equal(t, 1, got.Len())
}
