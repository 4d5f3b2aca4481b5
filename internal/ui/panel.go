package ui

import (
	"strings"

	"bin-viewer/internal/selection"
)

// PlaceholderText is shown before anything is selected.
const PlaceholderText = "Click a part of the bin to learn what it does."

const rowGap = 4

// MeasureFunc returns the pixel width of text at the given font size.
type MeasureFunc func(text string, fontSize int32) int32

// InfoPanel lays out the selected part's name, its description and the gate state as styled nodes.
type InfoPanel struct {
	sheet *Stylesheet
}

// NewInfoPanel returns a panel styled by sheet (.info, .info-title, .info-name, .info-text, .info-gate).
func NewInfoPanel(sheet *Stylesheet) *InfoPanel {
	return &InfoPanel{sheet: sheet}
}

// Layout returns the panel nodes for st, background first. The description is word-wrapped to the
// panel width; the panel grows to fit its rows.
func (p *InfoPanel) Layout(st selection.State, screenW, screenH int32, measure MeasureFunc) []*Node {
	panel := &Node{Class: "info", Style: Resolve(p.sheet.Props("info", ""))}
	ps := panel.Style
	inner := ps.Width - 2*ps.Padding

	var rows []*Node
	add := func(class, text string) {
		rows = append(rows, &Node{Class: class, Text: text, Style: Resolve(p.sheet.Props(class, ""))})
	}
	add("info-title", "Selected part")
	if st.Selected() {
		add("info-name", st.CurrentName)
	} else {
		add("info-name", "Nothing selected")
	}
	text := st.Description
	if !st.Selected() {
		text = PlaceholderText
	}
	textStyle := Resolve(p.sheet.Props("info-text", ""))
	for _, line := range Wrap(text, inner, textStyle.FontSize, measure) {
		add("info-text", line)
	}
	if st.GateOpen {
		add("info-gate", "Gate: open")
	} else {
		add("info-gate", "Gate: closed")
	}

	height := ps.Padding
	for _, r := range rows {
		r.Bounds = Rect{Width: inner, Height: r.Style.FontSize}
		height += r.Style.FontSize + rowGap
	}
	height += ps.Padding - rowGap
	if ps.Height > height {
		height = ps.Height
	}
	x, y := ps.Left, ps.Top
	if ps.LeftPct >= 0 {
		x = (screenW - ps.Width) * ps.LeftPct / 100
	}
	if ps.TopPct >= 0 {
		y = (screenH - height) * ps.TopPct / 100
	}
	panel.Bounds = Rect{X: x, Y: y, Width: ps.Width, Height: height}

	cy := y + ps.Padding
	for _, r := range rows {
		r.Bounds.X = x + ps.Padding
		r.Bounds.Y = cy
		cy += r.Style.FontSize + rowGap
	}
	return append([]*Node{panel}, rows...)
}

// Wrap breaks text into lines no wider than width. A single word wider than width gets its own line.
func Wrap(text string, width, fontSize int32, measure MeasureFunc) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && measure(next, fontSize) > width {
			lines = append(lines, cur)
			next = word
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
