package carousel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeViewport struct {
	mounted  bool
	lefts    []float64
	widths   []float64
	width    float64
	scrolled []float64
}

func (f *fakeViewport) Measure(i int) (Measurement, bool) {
	if !f.mounted || i < 0 || i >= len(f.lefts) {
		return Measurement{}, false
	}
	return Measurement{ItemLeft: f.lefts[i], ItemWidth: f.widths[i], ContainerWidth: f.width}, true
}

func (f *fakeViewport) ScrollTo(offset float64) { f.scrolled = append(f.scrolled, offset) }

func TestCenterOffsetUsesMeasuredWidth(t *testing.T) {
	v := &fakeViewport{
		mounted: true,
		lefts:   []float64{0, 340, 760},
		widths:  []float64{320, 400, 320},
		width:   1000,
	}
	s := NewScrollSync(v)

	require.True(t, s.OnIndexChange(1))
	require.True(t, s.OnIndexChange(2))
	require.Equal(t, []float64{340 - 500 + 200, 760 - 500 + 160}, v.scrolled)
}

func TestScrollSyncNoopsWhenNotMounted(t *testing.T) {
	v := &fakeViewport{lefts: []float64{0}, widths: []float64{10}, width: 100}
	s := NewScrollSync(v)

	require.False(t, s.OnIndexChange(0))

	v.mounted = true
	require.False(t, s.OnIndexChange(3))
	require.Empty(t, v.scrolled)

	var nilSync *ScrollSync
	require.False(t, nilSync.OnIndexChange(0))
	require.False(t, NewScrollSync(nil).OnIndexChange(0))
}

func TestProgress(t *testing.T) {
	require.Equal(t, 0.0, Progress(0, 0))
	require.Equal(t, 100.0, Progress(0, 1))
	require.Equal(t, 0.0, Progress(0, 5))
	require.Equal(t, 50.0, Progress(2, 5))
	require.Equal(t, 100.0, Progress(4, 5))
	require.Equal(t, 100.0, Progress(9, 5))
	require.Equal(t, 0.0, Progress(-3, 5))
}

func TestVariantForView(t *testing.T) {
	require.Equal(t, VariantFeatured, VariantFeatured.CardVariant(ViewGrid))
	require.Equal(t, VariantCompact, VariantDefault.CardVariant(ViewGrid))
	require.Equal(t, VariantDefault, VariantDefault.CardVariant(ViewStrip))
	require.Equal(t, VariantCompact, ParseVariant(" Compact "))
	require.Equal(t, ViewGrid, ParseViewMode("GRID"))
	require.Equal(t, ViewStrip, ParseViewMode("list"))
}
