package textproc_test

import (
	"testing"

	"github.com/katalvlaran/triad/textproc"
	"github.com/stretchr/testify/assert"
)

const javaSample = `package demo;

/**
 * Plans the flight route.
 */
public class RoutePlanner {
    // current waypoint
    private int waypointIndex = 0;
    private String label = "ignored literal";

    public void nextWaypoint() { waypointIndex++; }
}
`

func TestExtractCodeJava(t *testing.T) {
	parts := textproc.ExtractCode(javaSample, textproc.LangJava)

	assert.Equal(t, []string{"Plans the flight route.", "current waypoint"}, parts.Comments)
	assert.Equal(t, []string{"RoutePlanner"}, parts.Declared)
	assert.Equal(t,
		[]string{"demo", "RoutePlanner", "waypointIndex", "String", "label", "nextWaypoint", "waypointIndex"},
		parts.Identifiers)
}

func TestExtractCodeC(t *testing.T) {
	src := "#include <stdio.h>\nstruct sensor_reading { int value; };\n/* unterminated"
	parts := textproc.ExtractCode(src, textproc.LangC)

	assert.Equal(t, []string{"stdio", "h", "sensor_reading", "value"}, parts.Identifiers)
	assert.Equal(t, []string{"sensor_reading"}, parts.Declared)
	assert.Equal(t, []string{"unterminated"}, parts.Comments)
}

func TestProcessCode(t *testing.T) {
	got := textproc.ProcessCode("// sends data\nint sendData;", textproc.LangC)
	assert.Equal(t, "send data send data", got)
}
