package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"lowercase passthrough", "food", "food"},
		{"uppercase folded", "Food", "food"},
		{"surrounding whitespace trimmed", "  Food  ", "food"},
		{"inner whitespace collapsed to hyphen", "Hot   Drinks", "hot-drinks"},
		{"tabs and newlines treated as whitespace", "Hot\tDrinks\n", "hot-drinks"},
		{"punctuation stripped", "Mains!", "mains"},
		{"existing hyphens kept", "pre-shift", "pre-shift"},
		{"digits kept", "86'd Items", "86d-items"},
		{"leading hyphens trimmed", "--Specials--", "specials"},
		{"only punctuation yields empty", "!!!", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.label))
		})
	}
}

func TestSlugifyCollision(t *testing.T) {
	// Distinct labels collapsing to one slug is accepted behavior.
	assert.Equal(t, Slugify("Mains"), Slugify("mains!"))
	assert.Equal(t, Slugify("Food"), Slugify("  food  "))
}

func TestBucketKeyRoundTrip(t *testing.T) {
	key := BucketKey("food", "mains")
	assert.Equal(t, "food::mains", key)

	cat, sub, ok := SplitBucketKey(key)
	assert.True(t, ok)
	assert.Equal(t, "food", cat)
	assert.Equal(t, "mains", sub)

	_, _, ok = SplitBucketKey("food")
	assert.False(t, ok)
	_, _, ok = SplitBucketKey("::mains")
	assert.False(t, ok)
}
