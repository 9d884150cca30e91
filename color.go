package circlepoints

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexColor is a color in the #RRGGBB or #RGB notation used by color pickers.
type HexColor string

var errHexColor = errors.New("expected #RGB or #RRGGBB")

// NRGBA parses h into an opaque color.
func (h HexColor) NRGBA() (color.NRGBA, error) {
	s, ok := strings.CutPrefix(string(h), "#")
	if !ok {
		return color.NRGBA{}, errHexColor
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, errHexColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %v", errHexColor, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

