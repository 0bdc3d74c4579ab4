package sitemd_test

import (
	"testing"

	"github.com/fwojciec/sitemd"
	"github.com/stretchr/testify/assert"
)

func TestContentMetrics_Density(t *testing.T) {
	t.Parallel()

	t.Run("zero when no structural elements", func(t *testing.T) {
		t.Parallel()

		m := sitemd.ContentMetrics{TextLength: 500}
		assert.Equal(t, 0.0, m.Density())
	})

	t.Run("text per structural element", func(t *testing.T) {
		t.Parallel()

		m := sitemd.ContentMetrics{TextLength: 300, ParagraphCount: 2, LinkCount: 1}
		assert.Equal(t, 100.0, m.Density())
	})
}

func TestContentMetrics_Diversity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		metrics sitemd.ContentMetrics
		want    float64
	}{
		{
			name:    "empty subtree",
			metrics: sitemd.ContentMetrics{},
			want:    0,
		},
		{
			name:    "one category",
			metrics: sitemd.ContentMetrics{ParagraphCount: 7},
			want:    0.2,
		},
		{
			name: "all categories",
			metrics: sitemd.ContentMetrics{
				ParagraphCount: 1,
				HeadingCount:   1,
				LinkCount:      1,
				ImageCount:     1,
				ListCount:      1,
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, tt.metrics.Diversity(), 1e-9)
		})
	}
}

func TestBoilerplateSet_Union(t *testing.T) {
	t.Parallel()

	t.Run("merges elements and classes", func(t *testing.T) {
		t.Parallel()

		a := sitemd.NewBoilerplateSet()
		a.Elements["nav"] = true
		a.Classes["navbar"] = true

		b := sitemd.NewBoilerplateSet()
		b.Elements["footer"] = true
		b.Classes["btn-primary"] = true

		a.Union(b)

		assert.Equal(t, 4, a.Len())
		assert.True(t, a.Elements["nav"])
		assert.True(t, a.Elements["footer"])
		assert.True(t, a.Classes["btn-primary"])
	})

	t.Run("union is idempotent", func(t *testing.T) {
		t.Parallel()

		a := sitemd.NewBoilerplateSet()
		b := sitemd.NewBoilerplateSet()
		b.Elements["nav"] = true
		b.Classes["navbar"] = true

		a.Union(b)
		first := a.Selectors()
		a.Union(b)

		assert.Equal(t, first, a.Selectors())
	})

	t.Run("nil other is a no-op", func(t *testing.T) {
		t.Parallel()

		a := sitemd.NewBoilerplateSet()
		a.Elements["form"] = true
		a.Union(nil)

		assert.Equal(t, 1, a.Len())
	})
}

func TestBoilerplateSet_Selectors(t *testing.T) {
	t.Parallel()

	s := sitemd.NewBoilerplateSet()
	s.Elements["nav"] = true
	s.Elements["footer"] = true
	s.Classes["navbar"] = true
	s.Classes["ad-slot"] = true

	// Lexicographic over the rendered strings: dot-prefixed classes sort
	// before bare tag names.
	assert.Equal(t, []string{".ad-slot", ".navbar", "footer", "nav"}, s.Selectors())
}
