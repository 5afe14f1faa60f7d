package artifact_test

import (
	"testing"

	"github.com/katalvlaran/triad/artifact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for name, want := range map[string]artifact.Kind{
		"TEXTUAL": artifact.KindTextual, "text": artifact.KindTextual,
		"JAVA_CODE": artifact.KindJavaCode, "java": artifact.KindJavaCode,
		"C_CODE": artifact.KindCCode, "c": artifact.KindCCode,
	} {
		got, err := artifact.ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := artifact.ParseKind("COBOL")
	require.ErrorIs(t, err, artifact.ErrUnknownKind)
	assert.Equal(t, "JAVA_CODE", artifact.KindJavaCode.String())
}

func TestProcessedTextByKind(t *testing.T) {
	text := artifact.New("REQ1", artifact.KindTextual, "The flightPlan is sent.")
	assert.Equal(t, "flight plan sent", text.ProcessedText())

	code := artifact.New("Planner", artifact.KindJavaCode, "class FlightPlan { }")
	assert.Equal(t, "flight plan", code.ProcessedText())
}

func TestCooccurrenceExtractor(t *testing.T) {
	a := artifact.New("REQ1", artifact.KindTextual, "Flight plan update. Plan flight")
	got := artifact.Frequencies(a.Biterms(nil))
	assert.Equal(t, map[string]int{"flightPlan": 2, "planUpdat": 1}, got)

	code := artifact.New("C1", artifact.KindJavaCode, "class RoutePlanner { int routeIndex; }")
	got = artifact.Frequencies(code.Biterms(artifact.CooccurrenceExtractor{}))
	assert.Equal(t, 2, got["plannerRout"]+got["planRout"], "declared type names count double")
	assert.Equal(t, 1, got["indexRout"])
}

func TestWithAppendedText(t *testing.T) {
	a := artifact.New("REQ1", artifact.KindTextual, "flight plan")
	b := a.WithAppendedText("uav land uav land", []artifact.Biterm{artifact.NewBiterm("uav", "land", 2)})

	assert.Equal(t, "flight plan", a.Text(), "original is unchanged")
	assert.Equal(t, "flight plan\nuav land uav land", b.Text())
	assert.Equal(t, map[string]int{"flightPlan": 1, "landUav": 2}, artifact.Frequencies(b.Biterms(nil)),
		"appended biterms keep their weight; the line itself is not re-extracted")

	code := artifact.New("C1", artifact.KindJavaCode, "class Lander { }")
	enriched := code.WithAppendedText("flight plan flight plan", []artifact.Biterm{artifact.NewBiterm("flight", "plan", 2)})
	assert.Empty(t, artifact.Frequencies(code.Biterms(nil)))
	assert.Equal(t, map[string]int{"flightPlan": 2}, artifact.Frequencies(enriched.Biterms(nil)))
	assert.Equal(t, "class Lander { }\nflight plan flight plan", enriched.Text())
	assert.Contains(t, enriched.ProcessedText(), "flight plan")

	twice := b.WithAppendedText("flight plan", []artifact.Biterm{artifact.NewBiterm("flight", "plan", 1)})
	assert.Equal(t, "flight plan\nuav land uav land\nflight plan", twice.Text())
	assert.Equal(t, map[string]int{"flightPlan": 2, "landUav": 2}, artifact.Frequencies(twice.Biterms(nil)))

	p := artifact.ParsePrecomputed("D1", artifact.KindTextual, "flightPlan:1")
	q := p.WithAppendedText("uav land", []artifact.Biterm{artifact.NewBiterm("uav", "land", 2)})
	assert.Equal(t, map[string]int{"flightPlan": 1, "landUav": 2}, artifact.Frequencies(q.Biterms(nil)))
	assert.Equal(t, map[string]int{"flightPlan": 1}, artifact.Frequencies(p.Biterms(nil)))
}

func TestExtractorFunc(t *testing.T) {
	calls := 0
	ex := artifact.ExtractorFunc(func(kind artifact.Kind, text string) []artifact.Biterm {
		calls++
		return []artifact.Biterm{artifact.NewBiterm("b", "a", 1), artifact.NewBiterm("a", "b", 1)}
	})
	a := artifact.New("X", artifact.KindTextual, "ignored")
	bs := a.Biterms(ex)
	require.Len(t, bs, 1, "duplicate keys are merged")
	assert.Equal(t, 2, bs[0].Weight)
	assert.Equal(t, 1, calls)
}

func TestCollection(t *testing.T) {
	c := artifact.NewCollection(
		artifact.New("b", artifact.KindTextual, "x"),
		artifact.New("a", artifact.KindTextual, "y"),
		artifact.New("b", artifact.KindTextual, "z"),
	)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a", "b"}, c.IDs())
	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "z", got.Text(), "later artifact replaces earlier")

	m := artifact.Merge(c, artifact.NewCollection(artifact.New("c", artifact.KindCCode, "")))
	assert.Equal(t, []string{"a", "b", "c"}, m.IDs())
	assert.Equal(t, 2, c.Len(), "inputs are not mutated")
}
