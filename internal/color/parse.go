package color

import (
	"fmt"
	"strconv"
	"strings"
)

var named = map[string]Color{
	"white":   White,
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
	"gray":    Gray,
	"grey":    Gray,
}

// Parse resolves a color name ("green") or a hex triple ("#33cc66", "33cc66").
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("color: unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color: parse %q: %w", s, err)
	}
	return FromByteRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
