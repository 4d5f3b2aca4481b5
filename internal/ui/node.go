package ui

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height int32
}

// Node is a single UI element with its resolved style and screen bounds.
type Node struct {
	Class  string // matched by .class rules
	Text   string
	Style  Style
	Bounds Rect
}
