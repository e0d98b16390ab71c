package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingStyleClampsToThree(t *testing.T) {
	rec := DefaultRecord()
	assert.Equal(t, rec.Heading1, rec.HeadingStyle(1))
	assert.Equal(t, rec.Heading2, rec.HeadingStyle(2))
	assert.Equal(t, rec.Heading3, rec.HeadingStyle(3))
	assert.Equal(t, rec.Heading3, rec.HeadingStyle(6))
}

func TestMergeKeepsBaseWhenOverlayIsZero(t *testing.T) {
	base := DefaultRecord()
	merged := base.Merge(Record{})
	assert.Equal(t, base, merged)
}

func TestMergeOverridesOnlySetFields(t *testing.T) {
	base := DefaultRecord()
	overlay := Record{
		Text: BasicTextStyle{Size: 18, Bold: true},
	}
	merged := base.Merge(overlay)

	assert.Equal(t, uint8(18), merged.Text.Size)
	assert.True(t, merged.Text.Bold)
	assert.Equal(t, base.Text.Alignment, merged.Text.Alignment, "alignment was not overridden, should keep base")

	assert.Equal(t, base.Heading1, merged.Heading1, "unrelated style untouched")
}

func TestMergeOrsBooleanDecorations(t *testing.T) {
	base := Record{Text: BasicTextStyle{Italic: true}}
	overlay := Record{Text: BasicTextStyle{Bold: true}}
	merged := base.Merge(overlay)
	assert.True(t, merged.Text.Italic)
	assert.True(t, merged.Text.Bold)
}

func TestAllStylesEnumeratesTwelve(t *testing.T) {
	rec := DefaultRecord()
	assert.Len(t, rec.AllStyles(), 12)
}
