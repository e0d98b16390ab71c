package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theiskaa/markdown2pdf/style"
)

func TestLoadDefaultMatchesDefaultRecord(t *testing.T) {
	rec, err := Load(Default())
	require.NoError(t, err)
	assert.Equal(t, style.DefaultRecord(), rec)
}

func TestLoadEmbeddedOverlaysOntoDefaults(t *testing.T) {
	toml := `
[text]
size = 16
bold = true

[heading.1]
size = 30

[code]
fontfamily = "Courier"
textcolor = { r = 10, g = 20, b = 30 }
`
	rec, err := Load(Embedded(toml))
	require.NoError(t, err)

	assert.Equal(t, uint8(16), rec.Text.Size)
	assert.True(t, rec.Text.Bold)
	assert.Equal(t, uint8(30), rec.Heading1.Size)
	assert.Equal(t, "Courier", rec.Code.FontFamily)
	require.NotNil(t, rec.Code.TextColor)
	assert.Equal(t, style.RGB{R: 10, G: 20, B: 30}, *rec.Code.TextColor)

	defaults := style.DefaultRecord()
	assert.Equal(t, defaults.Heading2, rec.Heading2, "untouched heading level keeps its default")
}

func TestLoadEmbeddedMalformedTOMLFallsBackToDefaults(t *testing.T) {
	rec, err := Load(Embedded("this is not valid = = toml"))
	require.NoError(t, err)
	assert.Equal(t, style.DefaultRecord(), rec)
}

func TestLoadFileMissingReturnsError(t *testing.T) {
	_, err := Load(File("/no/such/style.toml"))
	require.Error(t, err)
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
}

func TestDumpDebugJSON(t *testing.T) {
	data, err := DumpDebugJSON(style.DefaultRecord())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Heading1")
}

func TestValidateWarnsOnZeroTextSize(t *testing.T) {
	rec := style.DefaultRecord()
	rec.Text.Size = 0
	warnings := Validate(rec)
	assert.NotEmpty(t, warnings)
}

func TestValidateCleanRecordHasNoWarnings(t *testing.T) {
	warnings := Validate(style.DefaultRecord())
	assert.Empty(t, warnings)
}
