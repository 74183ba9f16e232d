package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases

const (
	colorAccent  = colorPink
	colorBrand   = colorPink
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// categoryColor picks a stable accent for a card category.
func categoryColor(category string) lipgloss.Color {
	if category == "" {
		return colorOverlay1
	}
	accents := []lipgloss.Color{
		colorGreen, colorTeal, colorPeach, colorBlue,
		colorMauve, colorPink, colorSky, colorLavender, colorYellow,
	}
	var h uint32
	for i := 0; i < len(category); i++ {
		h = h*31 + uint32(category[i])
	}
	return accents[h%uint32(len(accents))]
}

// iconGlyph maps catalogue icon names onto single-line glyphs.
func iconGlyph(name string) string {
	switch name {
	case "brain":
		return "◉"
	case "code":
		return "</>"
	case "chart":
		return "▲"
	case "message":
		return "✉"
	case "cloud":
		return "☁"
	case "palette":
		return "◆"
	case "quote":
		return "❝"
	case "server":
		return "▣"
	case "database":
		return "◫"
	case "workflow":
		return "⟳"
	case "terminal":
		return ">_"
	case "":
		return "•"
	default:
		return name
	}
}
