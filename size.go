package circlepoints

import "fmt"

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// AspectRatio returns height / width.
func (sz Size) AspectRatio() float64 {
	return sz.Height / sz.Width
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// FitWidth returns sz scaled uniformly so that its width is w.
func (sz Size) FitWidth(w float64) Size {
	return sz.Scale(w / sz.Width)
}
