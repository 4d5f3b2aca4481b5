package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bin-viewer/internal/selection"
)

// monospace measures every rune as half the font size.
func monospace(text string, fontSize int32) int32 {
	return int32(len([]rune(text))) * fontSize / 2
}

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment { not a rule } */
.a { color: #fff; width: 10px }
div { color: #000; }
#b { left: 50%; }
.a { width: 20 }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, map[string]string{"color": "#fff", "width": "20"}, sheet.Props("a", ""))
	assert.Equal(t, map[string]string{"color": "#fff", "width": "20", "left": "50%"}, sheet.Props("a", "b"))
	assert.Empty(t, sheet.Props("div", ""))
}

func TestParseCSS_Unterminated(t *testing.T) {
	_, err := ParseCSS(".a { color: #fff;")
	assert.ErrorIs(t, err, ErrUnterminatedRule)
	_, err = ParseCSS(".a { color: #fff; } .b")
	assert.ErrorIs(t, err, ErrUnterminatedRule)
}

func TestDefaultStylesheet(t *testing.T) {
	sheet := DefaultStylesheet()
	for _, class := range []string{"info", "info-title", "info-name", "info-text", "info-gate"} {
		assert.NotEmpty(t, sheet.Props(class, ""), class)
	}
}

func TestResolve(t *testing.T) {
	st := Resolve(map[string]string{
		"background": "#000",
		"border":     "#111",
		"width":      "100px",
		"left":       "25%",
		"top":        "7",
		"padding":    "-3",
		"font-size":  "nope",
		"color":      "#12345",
	})
	assert.Equal(t, DefaultStyle().Color, st.Color, "invalid colors are ignored")
	assert.Equal(t, color.RGBA{A: 255}, st.Background)
	assert.Equal(t, color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 255}, st.Border)
	assert.True(t, st.HasBorder)
	assert.Equal(t, int32(100), st.Width)
	assert.Equal(t, int32(25), st.LeftPct)
	assert.Equal(t, int32(-1), st.TopPct)
	assert.Equal(t, int32(7), st.Top)
	assert.Equal(t, int32(defaultPadding), st.Padding)
	assert.Equal(t, int32(defaultFontSize), st.FontSize)
}

func TestWrap(t *testing.T) {
	// 10px font: 5px per rune, width 50 fits 10 runes.
	lines := Wrap("the gate rotates to direct items", 50, 10, monospace)
	assert.Equal(t, []string{"the gate", "rotates to", "direct", "items"}, lines)
	assert.Equal(t, []string{"extraordinarily", "long"}, Wrap("extraordinarily long", 50, 10, monospace))
	assert.Empty(t, Wrap("   ", 50, 10, monospace))
}

func TestInfoPanel_Layout(t *testing.T) {
	p := NewInfoPanel(DefaultStylesheet())

	empty := p.Layout(selection.State{}, 1280, 720, monospace)
	require.GreaterOrEqual(t, len(empty), 5)
	assert.Equal(t, "Nothing selected", empty[2].Text)

	st := selection.State{
		CurrentName: "Servo Gate",
		Description: "Gate rotates to direct the item into the correct compartment.",
		GateOpen:    true,
	}
	nodes := p.Layout(st, 1280, 720, monospace)
	panel := nodes[0]
	assert.Equal(t, "info", panel.Class)
	assert.Equal(t, Rect{X: 16, Y: 16, Width: 380, Height: panel.Bounds.Height}, panel.Bounds)
	assert.Equal(t, "Servo Gate", nodes[2].Text)
	assert.Equal(t, "Gate: open", nodes[len(nodes)-1].Text)

	var desc []string
	for _, n := range nodes {
		if n.Class == "info-text" {
			desc = append(desc, n.Text)
			assert.LessOrEqual(t, monospace(n.Text, n.Style.FontSize), panel.Bounds.Width-2*panel.Style.Padding)
		}
	}
	assert.Greater(t, len(desc), 1)

	last := nodes[len(nodes)-1].Bounds
	assert.LessOrEqual(t, last.Y+last.Height, panel.Bounds.Y+panel.Bounds.Height)
	for i := 2; i < len(nodes); i++ {
		assert.Greater(t, nodes[i].Bounds.Y, nodes[i-1].Bounds.Y)
	}
}

func TestEngine_LoadCSS(t *testing.T) {
	e := New()
	path := filepath.Join(t.TempDir(), "custom.css")
	require.NoError(t, os.WriteFile(path, []byte(".info { left: 100%; width: 200; }"), 0o644))
	require.NoError(t, e.LoadCSS(path))

	nodes := e.InfoPanel().Layout(selection.State{}, 1000, 500, monospace)
	assert.Equal(t, int32(800), nodes[0].Bounds.X)

	bad := filepath.Join(t.TempDir(), "bad.css")
	require.NoError(t, os.WriteFile(bad, []byte(".info {"), 0o644))
	assert.ErrorIs(t, e.LoadCSS(bad), ErrUnterminatedRule)
	assert.Error(t, e.LoadCSS(filepath.Join(t.TempDir(), "missing.css")))
}
