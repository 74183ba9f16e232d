package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/showcase/internal/carousel"
	"github.com/jask/showcase/internal/database/repository"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	labelStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	dotStyle    = lipgloss.NewStyle().Foreground(colorSurface2)
	dotOnStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	badgeOn     = lipgloss.NewStyle().Foreground(colorSuccess)
	badgePaused = lipgloss.NewStyle().Foreground(colorWarning)
	dragStyle   = lipgloss.NewStyle().Foreground(colorInfo)
	dragHot     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	quoteStyle  = lipgloss.NewStyle().Foreground(colorSubtext1).Italic(true)
)

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHeader(appName string, decks []repository.Deck, active, width int) string {
	name := headerAppStyle.Render(appName)

	tabs := make([]string, 0, len(decks))
	for i, d := range decks {
		label := fmt.Sprintf("%s (%d)", d.Title, d.CardCount)
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	tabBar := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	line := name + "  " + tabBar

	if width <= 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(width).Render(ansi.Truncate(line, width-4, "…"))
}

func renderFooter(bindings []key.Binding, width int) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if width <= 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(width).Render(ansi.Truncate(content, width-4, "…"))
}

// renderControls is the line under the deck title: filter, autoplay and view.
func renderControls(st carousel.State, cfg carousel.Config, category string) string {
	parts := []string{labelStyle.Render("category ") + valueStyle.Render(category)}
	parts = append(parts, labelStyle.Render("autoplay ")+autoplayBadge(st))
	if cfg.ShowViewToggle {
		parts = append(parts, labelStyle.Render("view ")+valueStyle.Render(string(st.ViewMode)))
	}
	return strings.Join(parts, labelStyle.Render("  ·  "))
}

func autoplayBadge(st carousel.State) string {
	switch {
	case st.Scheduler == carousel.SchedulerRunning:
		return badgeOn.Render("● auto-scrolling")
	case st.AutoplayEnabled && st.ViewMode == carousel.ViewGrid:
		return labelStyle.Render("○ strip only")
	case st.AutoplayEnabled && st.Suspended:
		return badgePaused.Render("❚❚ paused")
	case st.AutoplayEnabled:
		return labelStyle.Render("○ waiting")
	default:
		return labelStyle.Render("○ off")
	}
}

// dragIndicator names the direction a drag will navigate in.
func dragIndicator(d carousel.DragState, threshold float64) string {
	if !d.Active || d.DeltaX == 0 {
		return ""
	}
	style := dragStyle
	if math.Abs(d.DeltaX) > threshold {
		style = dragHot
	}
	if d.DeltaX > 0 {
		return style.Render("swipe right ←")
	}
	return style.Render("swipe left →")
}

func renderDots(current, count int) string {
	if count <= 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", stripInset))
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == current {
			b.WriteString(dotOnStyle.Render("●"))
		} else {
			b.WriteString(dotStyle.Render("○"))
		}
	}
	return b.String()
}

// dotHit maps a column on the dots row to an item index, or -1.
func dotHit(x, count int) int {
	cx := x - stripInset
	if cx < 0 || cx%2 != 0 {
		return -1
	}
	if i := cx / 2; i < count {
		return i
	}
	return -1
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

func wrapLines(s string, width, maxLines int) []string {
	if strings.TrimSpace(s) == "" || maxLines <= 0 {
		return nil
	}
	lines := strings.Split(ansi.Wordwrap(s, width, ""), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = ansi.Truncate(lines[maxLines-1]+" …", width, "…")
	}
	return lines
}

func renderCard(it carousel.Item, v carousel.Variant, current bool) string {
	w, h := cardSize(v)
	inner := w - 4
	rows := h - 2

	cat := lipgloss.NewStyle().Foreground(categoryColor(it.Category))
	title := lipgloss.NewStyle().Bold(true).Foreground(colorText)
	body := lipgloss.NewStyle().Foreground(colorSubtext0)

	var lines []string
	switch v {
	case carousel.VariantCompact:
		lines = append(lines, cat.Render(iconGlyph(it.Icon))+" "+title.Render(it.Title))
		if it.Category != "" {
			lines = append(lines, cat.Render(it.Category))
		}
		for _, l := range wrapLines(it.Description, inner, rows-len(lines)) {
			lines = append(lines, body.Render(l))
		}
	case carousel.VariantFeatured:
		for _, l := range wrapLines("❝ "+it.Description, inner, rows-4) {
			lines = append(lines, quoteStyle.Render(l))
		}
		lines = append(lines, "")
		lines = append(lines, title.Render(it.Title))
		if len(it.Tags) > 0 {
			lines = append(lines, body.Render(strings.Join(it.Tags, " · ")))
		}
		if it.Category != "" {
			lines = append(lines, cat.Render(it.Category))
		}
	default:
		head := cat.Render(iconGlyph(it.Icon))
		if it.Category != "" {
			head += "  " + cat.Render(it.Category)
		}
		lines = append(lines, head)
		for _, l := range wrapLines(it.Title, inner, 2) {
			lines = append(lines, title.Render(l))
		}
		lines = append(lines, "")
		for _, l := range wrapLines(it.Description, inner, 4) {
			lines = append(lines, body.Render(l))
		}
		if len(it.Details) > 0 {
			lines = append(lines, "")
			for _, d := range it.Details {
				lines = append(lines, body.Render("• "+d))
			}
		}
	}

	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "…")
	}

	style := cardStyle.Width(w - 2)
	switch {
	case current:
		style = style.BorderForeground(colorAccent)
	case carousel.ParseVariant(it.Variant) == carousel.VariantFeatured:
		style = style.BorderForeground(colorPeach)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderDetail(it carousel.Item, index, count, width int) string {
	w := width - 4
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	inner := w - 4

	var b strings.Builder
	b.WriteString(titleStyle.Render(iconGlyph(it.Icon)+"  "+it.Title) + "\n")
	meta := fmt.Sprintf("%d / %d", index+1, count)
	if it.Category != "" {
		meta = lipgloss.NewStyle().Foreground(categoryColor(it.Category)).Render(it.Category) + labelStyle.Render("  ·  "+meta)
	} else {
		meta = labelStyle.Render(meta)
	}
	b.WriteString(meta + "\n\n")
	if it.Description != "" {
		b.WriteString(valueStyle.Render(ansi.Wordwrap(it.Description, inner, "")) + "\n")
	}
	if len(it.Tags) > 0 {
		b.WriteString("\n" + labelStyle.Render("tags    ") + valueStyle.Render(strings.Join(it.Tags, ", ")) + "\n")
	}
	if len(it.Details) > 0 {
		b.WriteString("\n")
		for _, d := range it.Details {
			b.WriteString(statusStyle.Render("• "+d) + "\n")
		}
	}
	if it.Image != "" {
		b.WriteString("\n" + labelStyle.Render("image   ") + statusStyle.Render(it.Image) + "\n")
	}
	return modalStyle.Width(w - 2).Render(strings.TrimRight(b.String(), "\n"))
}
