package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveNameBuiltinAliases(t *testing.T) {
	cases := map[string]string{
		"Helvetica":        "Helvetica",
		"arial":            "Helvetica",
		"sans-serif":       "Helvetica",
		"default":          "Helvetica",
		"Times New Roman":  "Times",
		"serif":            "Times",
		"courier":          "Courier",
		"monospace":        "Courier",
	}
	for input, want := range cases {
		src := ResolveName(input)
		assert.Equal(t, SourceBuiltin, src.Kind, "input %q", input)
		assert.Equal(t, want, src.Name, "input %q", input)
	}
}

func TestResolveNameFilePath(t *testing.T) {
	src := ResolveName("/usr/share/fonts/MyFont.ttf")
	assert.Equal(t, SourceFile, src.Kind)
	assert.Equal(t, "/usr/share/fonts/MyFont.ttf", src.Path)
}

func TestResolveNameFallsBackToSystem(t *testing.T) {
	src := ResolveName("Some Unusual Family")
	assert.Equal(t, SourceSystem, src.Kind)
	assert.Equal(t, "Some Unusual Family", src.Name)
}

func TestStubMetricsRoundTrips(t *testing.T) {
	ascent, descent, unitsPerEm, ok := StubMetrics(embeddedStub)
	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(int16(770), ascent)
	assert.Equal(int16(-230), descent)
	assert.Equal(uint16(1000), unitsPerEm)
}
