package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewport = Rect{Left: 0, Top: 0, Width: 800, Height: 600}

func TestNormalize_SameResultForAllKinds(t *testing.T) {
	at := Point{X: 200, Y: 150}
	events := []PointerEvent{
		{Kind: PointerDown, Client: &at},
		{Kind: MouseDown, Client: &at},
		{Kind: Click, Client: &at},
		{Kind: TouchStart, Touches: []Point{at}},
		{Kind: TouchEnd, ChangedTouches: []Point{at}},
	}
	for _, ev := range events {
		t.Run(ev.Kind.String(), func(t *testing.T) {
			x, y, ok := Normalize(ev, viewport)
			require.True(t, ok)
			assert.InDelta(t, -0.5, x, 1e-6)
			assert.InDelta(t, 0.5, y, 1e-6)
		})
	}
}

func TestNormalize_Corners(t *testing.T) {
	tests := []struct {
		name   string
		at     Point
		rect   Rect
		wx, wy float32
	}{
		{"top left", Point{0, 0}, viewport, -1, 1},
		{"bottom right", Point{800, 600}, viewport, 1, -1},
		{"center", Point{400, 300}, viewport, 0, 0},
		{"offset surface", Point{110, 70}, Rect{Left: 10, Top: 20, Width: 200, Height: 100}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := tt.at
			x, y, ok := Normalize(PointerEvent{Kind: PointerDown, Client: &at}, tt.rect)
			require.True(t, ok)
			assert.InDelta(t, tt.wx, x, 1e-6)
			assert.InDelta(t, tt.wy, y, 1e-6)
		})
	}
}

func TestNormalize_NoCoordinates(t *testing.T) {
	tests := []struct {
		name string
		ev   PointerEvent
		rect Rect
	}{
		{"mouse without position", PointerEvent{Kind: MouseDown}, viewport},
		{"touch start without touches", PointerEvent{Kind: TouchStart}, viewport},
		{"touch end without changed touches", PointerEvent{Kind: TouchEnd}, viewport},
		{"zero sized viewport", PointerEvent{Kind: Click, Client: &Point{1, 1}}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := Normalize(tt.ev, tt.rect)
			assert.False(t, ok)
		})
	}
}

func TestPosition_TouchEndPrefersChangedTouches(t *testing.T) {
	ev := PointerEvent{
		Kind:           TouchEnd,
		Touches:        []Point{{1, 1}},
		ChangedTouches: []Point{{5, 6}},
	}
	p, ok := ev.Position()
	require.True(t, ok)
	assert.Equal(t, Point{5, 6}, p)
}

func TestFunnel(t *testing.T) {
	at := &Point{10, 10}
	ms := time.Millisecond

	t.Run("emulated events of one tap collapse", func(t *testing.T) {
		f := NewFunnel()
		assert.True(t, f.Accept(PointerEvent{Kind: TouchStart, Touches: []Point{*at}, Time: 0}))
		assert.False(t, f.Accept(PointerEvent{Kind: MouseDown, Client: at, Time: 20 * ms}))
		assert.False(t, f.Accept(PointerEvent{Kind: Click, Client: at, Time: 40 * ms}))
	})
	t.Run("same kind repeats are kept", func(t *testing.T) {
		f := NewFunnel()
		assert.True(t, f.Accept(PointerEvent{Kind: MouseDown, Client: at, Time: 0}))
		assert.True(t, f.Accept(PointerEvent{Kind: MouseDown, Client: at, Time: 100 * ms}))
	})
	t.Run("other kinds accepted after the window", func(t *testing.T) {
		f := NewFunnel()
		assert.True(t, f.Accept(PointerEvent{Kind: MouseDown, Client: at, Time: 0}))
		assert.True(t, f.Accept(PointerEvent{Kind: TouchStart, Touches: []Point{*at}, Time: DefaultDuplicateWindow}))
	})
}
