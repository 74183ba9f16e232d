package carousel

// Measurement is the rendered geometry of one item inside the strip.
type Measurement struct {
	ItemLeft       float64
	ItemWidth      float64
	ContainerWidth float64
}

// Viewport is the strip container as laid out on screen. Measure reports
// false while the container or the item is not mounted.
type Viewport interface {
	Measure(index int) (Measurement, bool)
	ScrollTo(offset float64)
}

// ScrollSync keeps the strip centred on the current item.
type ScrollSync struct {
	view Viewport
}

func NewScrollSync(v Viewport) *ScrollSync {
	return &ScrollSync{view: v}
}

// CenterOffset is the scroll offset that centres an item in its container.
func CenterOffset(m Measurement) float64 {
	return m.ItemLeft - m.ContainerWidth/2 + m.ItemWidth/2
}

// OnIndexChange scrolls towards item index. It reports whether a scroll was
// issued; an unmounted container or item is not an error.
func (s *ScrollSync) OnIndexChange(index int) bool {
	if s == nil || s.view == nil {
		return false
	}
	m, ok := s.view.Measure(index)
	if !ok {
		return false
	}
	s.view.ScrollTo(CenterOffset(m))
	return true
}
