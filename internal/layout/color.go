package layout

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bin-viewer/internal/scenegraph"
)

// Color is a layout color written as "#RGB" or "#RRGGBB".
type Color scenegraph.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(parsed)
	return nil
}

// ParseHexColor parses #RGB or #RRGGBB into an opaque color.
func ParseHexColor(s string) (scenegraph.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return scenegraph.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex := s[1:]
	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return scenegraph.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		digits[i] = d
	}
	switch len(digits) {
	case 3:
		return scenegraph.Color{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}, nil
	case 6:
		return scenegraph.Color{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 255,
		}, nil
	}
	return scenegraph.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
