package models

// DefaultColor is the highlight color applied when a contract entry carries
// no usable color.
const DefaultColor = Color("#00FF00")

// Color is a hex RGB color in "#RRGGBB" form.
type Color string

// Valid reports whether the color is a well-formed "#RRGGBB" value.
func (c Color) Valid() bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for _, ch := range c[1:] {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}

// OrDefault returns the color itself when valid, DefaultColor otherwise.
func (c Color) OrDefault() Color {
	if c.Valid() {
		return c
	}
	return DefaultColor
}
