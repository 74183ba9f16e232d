package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/showcase/internal/carousel"
)

const (
	cardGap    = 2
	stripInset = 2
	frameRate  = 60
)

// cardSize is the on-screen size of a card variant, borders included.
func cardSize(v carousel.Variant) (w, h int) {
	switch v {
	case carousel.VariantCompact:
		return 26, 7
	case carousel.VariantFeatured:
		return 46, 12
	default:
		return 36, 13
	}
}

// strip is the horizontally scrolling card row. It implements
// carousel.Viewport in terminal cells; the scroll position eases towards the
// requested offset on a critically damped spring.
type strip struct {
	count     int
	cardW     int
	cardH     int
	width     int
	offset    float64
	target    float64
	velocity  float64
	spring    harmonica.Spring
	animating bool
	gen       int
}

func newStrip() *strip {
	return &strip{spring: harmonica.NewSpring(harmonica.FPS(frameRate), 7.0, 1.0)}
}

// reset lays the strip out for a new item set and drops any running
// animation.
func (s *strip) reset(count int, v carousel.Variant) {
	s.count = count
	s.cardW, s.cardH = cardSize(v)
	s.offset, s.target, s.velocity = 0, 0, 0
	s.animating = false
	s.gen++
}

func (s *strip) resize(width int) { s.width = width }

func (s *strip) contentWidth() int {
	if s.count == 0 {
		return 0
	}
	return stripInset*2 + s.count*s.cardW + (s.count-1)*cardGap
}

func (s *strip) itemLeft(i int) int { return stripInset + i*(s.cardW+cardGap) }

// Measure reports item geometry; nothing is mounted before the first resize.
func (s *strip) Measure(index int) (carousel.Measurement, bool) {
	if s.width <= 0 || index < 0 || index >= s.count {
		return carousel.Measurement{}, false
	}
	return carousel.Measurement{
		ItemLeft:       float64(s.itemLeft(index)),
		ItemWidth:      float64(s.cardW),
		ContainerWidth: float64(s.width),
	}, true
}

// ScrollTo clamps like a browser scroll container and starts easing.
func (s *strip) ScrollTo(offset float64) {
	maxOffset := math.Max(0, float64(s.contentWidth()-s.width))
	s.target = math.Min(math.Max(0, offset), maxOffset)
	s.animating = s.target != s.offset
}

// jump moves straight to the target, used when the layout changes under us.
func (s *strip) jump() {
	s.offset = s.target
	s.velocity = 0
	s.animating = false
}

// step advances the animation one frame and reports whether it continues.
func (s *strip) step() bool {
	if !s.animating {
		return false
	}
	s.offset, s.velocity = s.spring.Update(s.offset, s.velocity, s.target)
	if math.Abs(s.offset-s.target) < 0.5 && math.Abs(s.velocity) < 0.5 {
		s.jump()
		return false
	}
	return true
}

// hit returns the card index under strip-relative column x, or -1 in a gap.
func (s *strip) hit(x int) int {
	cx := x + int(math.Round(s.offset)) - stripInset
	if cx < 0 || s.cardW == 0 {
		return -1
	}
	pitch := s.cardW + cardGap
	i := cx / pitch
	if i >= s.count || cx%pitch >= s.cardW {
		return -1
	}
	return i
}

// render joins pre-rendered cards and cuts the visible window.
func (s *strip) render(cards []string) string {
	if len(cards) == 0 || s.width <= 0 {
		return ""
	}
	gap := strings.Repeat(" ", cardGap)
	lines := make([]string, s.cardH)
	split := make([][]string, len(cards))
	for i, c := range cards {
		split[i] = strings.Split(c, "\n")
	}
	inset := strings.Repeat(" ", stripInset)
	for row := 0; row < s.cardH; row++ {
		var b strings.Builder
		b.WriteString(inset)
		for i, parts := range split {
			if i > 0 {
				b.WriteString(gap)
			}
			if row < len(parts) {
				b.WriteString(padRight(parts[row], s.cardW))
			} else {
				b.WriteString(strings.Repeat(" ", s.cardW))
			}
		}
		b.WriteString(inset)
		off := int(math.Round(s.offset))
		lines[row] = ansi.Cut(b.String(), off, off+s.width)
	}
	return strings.Join(lines, "\n")
}

type frameMsg struct{ gen int }

func frameCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
