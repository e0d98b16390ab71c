package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBuiltinAlwaysSucceeds(t *testing.T) {
	r := NewResolver()
	fam, err := r.Resolve("Helvetica")
	require.NoError(t, err)
	require.NotNil(t, fam)
	assert.NotEmpty(t, fam.Regular.Bytes)
	assert.Equal(t, "Helvetica", fam.Regular.Builtin)
	assert.Equal(t, "Helvetica-Bold", fam.Bold.Builtin)
}

func TestResolveCachesBySource(t *testing.T) {
	r := NewResolver()
	first, err := r.Resolve("Helvetica")
	require.NoError(t, err)
	second, err := r.Resolve("Arial") // aliases to the same builtin family
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestResolveFileMissingPathErrors(t *testing.T) {
	r := NewResolver()
	_, err := r.Resolve("/no/such/font.ttf")
	require.Error(t, err)
	var fontErr *Error
	require.ErrorAs(t, err, &fontErr)
	assert.Equal(t, ErrorUnreadableFile, fontErr.Kind)
}

func TestSubsetNoOpWhenDisabled(t *testing.T) {
	r := NewResolver()
	fam, err := r.Resolve("Helvetica")
	require.NoError(t, err)

	out := r.Subset(fam, "hello", Config{EnableSubsetting: false}, nil)
	assert.Same(t, fam, out)
}

func TestSubsetNoOpOnEmptyText(t *testing.T) {
	r := NewResolver()
	fam, err := r.Resolve("Helvetica")
	require.NoError(t, err)

	out := r.Subset(fam, "", Config{EnableSubsetting: true}, nil)
	assert.Same(t, fam, out)
}
