package core

// Color is a foreground color for a screen cell, stored as a hex string
// ("#0ff") or an ANSI 256 code ("245"). The platform layer turns it into a
// terminal style; the empty Color means "terminal default".
type Color string

// Palette used by the game. Hex values match the neon look of the canvas
// front ends so every renderer shares one set of names.
const (
	ColorDefault    Color = ""
	ColorCyan       Color = "#0ff"
	ColorYellow     Color = "#ff0"
	ColorPink       Color = "#f0f"
	ColorWhite      Color = "#fff"
	ColorPanel      Color = "#222"
	ColorBackground Color = "#111"
	ColorDim        Color = "245"
)

// RGB decodes a hex color ("#0ff" or "#00ffff"). ok is false for ANSI codes
// and the default color.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	s := string(c)
	if len(s) == 0 || s[0] != '#' {
		return 0, 0, 0, false
	}
	s = s[1:]

	var digits [6]byte
	switch len(s) {
	case 3:
		for i := range 3 {
			digits[2*i], digits[2*i+1] = s[i], s[i]
		}
	case 6:
		copy(digits[:], s)
	default:
		return 0, 0, 0, false
	}

	var out [3]uint8
	for i := range out {
		hi, ok1 := hexNibble(digits[2*i])
		lo, ok2 := hexNibble(digits[2*i+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		out[i] = hi<<4 | lo
	}
	return out[0], out[1], out[2], true
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
