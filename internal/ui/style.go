package ui

import (
	"image/color"
	"strconv"
	"strings"

	"bin-viewer/internal/layout"
)

const (
	defaultPadding  = 4
	defaultFontSize = 20
)

// Style holds resolved values used for drawing. LeftPct and TopPct are 0-100 for percentage
// positioning; -1 means Left/Top are pixels.
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
}

// DefaultStyle is transparent with black text, no border and zero size.
func DefaultStyle() Style {
	return Style{
		Color:    color.RGBA{A: 255},
		LeftPct:  -1,
		TopPct:   -1,
		Padding:  defaultPadding,
		FontSize: defaultFontSize,
	}
}

// hexColor parses a CSS color with the same rules as layout colors.
func hexColor(s string) (color.RGBA, bool) {
	c, err := layout.ParseHexColor(s)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// ParsePx parses a number with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0-100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Resolve builds a Style from merged properties. Unparseable values are ignored.
func Resolve(props map[string]string) Style {
	out := DefaultStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := hexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := hexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := hexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
