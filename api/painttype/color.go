package painttype

import (
	"fmt"
	"math"
)

// Pixel is a single premultiplied pixel value in the canvas byte order:
// blue, green, red, alpha. This layout is shared with the compositing and
// tile code and must stay bit-for-bit stable.
type Pixel [4]uint8

const (
	BlueChannel  = 0
	GreenChannel = 1
	RedChannel   = 2
	AlphaChannel = 3
)

var (
	ZeroPixel  = Pixel{0, 0, 0, 0}
	WhitePixel = Pixel{255, 255, 255, 255}
)

// Color is a logical, non-premultiplied color. Channels are nominally
// in the range [0, 1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

var (
	Transparent = Color{0.0, 0.0, 0.0, 0.0}
	Black       = Color{0.0, 0.0, 0.0, 1.0}
	White       = Color{1.0, 1.0, 1.0, 1.0}
)

func RGB8(r uint8, g uint8, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// FromARGB32 unpacks a 32 bit ARGB value (the non-premultiplied
// interchange format, alpha in the high byte.)
func FromARGB32(c uint32) Color {
	return Color{
		R: float32((c&0x00ff0000)>>16) / 255.0,
		G: float32((c&0x0000ff00)>>8) / 255.0,
		B: float32(c&0x000000ff) / 255.0,
		A: float32((c&0xff000000)>>24) / 255.0,
	}
}

// ARGB32Alpha extracts just the alpha byte of a packed ARGB value.
func ARGB32Alpha(c uint32) uint8 {
	return uint8((c & 0xff000000) >> 24)
}

// FromHSV converts an HSV value to an opaque color. The hue is given in
// degrees and wraps around; sector boundaries belong to the lower sector.
func FromHSV(h float32, s float32, v float32) Color {
	c := v * s
	hp := float32(math.Mod(float64(h)/60.0, 6.0))
	x := c * (1.0 - float32(math.Abs(math.Mod(float64(hp), 2.0)-1.0)))
	m := v - c

	var r, g, b float32
	switch {
	case 0.0 <= hp && hp < 1.0:
		r, g, b = c, x, 0.0
	case hp < 2.0:
		r, g, b = x, c, 0.0
	case hp < 3.0:
		r, g, b = 0.0, c, x
	case hp < 4.0:
		r, g, b = 0.0, x, c
	case hp < 5.0:
		r, g, b = x, 0.0, c
	case hp < 6.0:
		r, g, b = c, 0.0, x
	default:
		// Degenerate input (NaN and friends) falls through to black.
		r, g, b = 0.0, 0.0, 0.0
	}
	return Color{
		R: r + m,
		G: g + m,
		B: b + m,
		A: 1.0,
	}
}

// FromPixel unpremultiplies a pixel value into a logical color. A zero
// alpha byte always yields Transparent; unpremultiplying is undefined there.
func FromPixel(p Pixel) Color {
	if p[AlphaChannel] == 0 {
		return Transparent
	}
	af := 1.0 / float32(p[AlphaChannel])

	return Color{
		R: float32(p[RedChannel]) * af,
		G: float32(p[GreenChannel]) * af,
		B: float32(p[BlueChannel]) * af,
		A: float32(p[AlphaChannel]) / 255.0,
	}
}

// FromPremultipliedPixel takes the channel values as they are, leaving
// the premultiplication in place.
func FromPremultipliedPixel(p Pixel) Color {
	return Color{
		R: float32(p[RedChannel]) / 255.0,
		G: float32(p[GreenChannel]) / 255.0,
		B: float32(p[BlueChannel]) / 255.0,
		A: float32(p[AlphaChannel]) / 255.0,
	}
}

// AsARGB32 packs the color into a 32 bit ARGB value without
// premultiplying. Fractional channel values are truncated.
func (s Color) AsARGB32() uint32 {
	return uint32(s.R*255.0)<<16 |
		uint32(s.G*255.0)<<8 |
		uint32(s.B*255.0) |
		uint32(s.A*255.0)<<24
}

// AsPixel premultiplies the color into the canvas pixel byte order.
func (s Color) AsPixel() Pixel {
	af := s.A * 255.0
	return Pixel{
		uint8(s.B * af),
		uint8(s.G * af),
		uint8(s.R * af),
		uint8(s.A * 255.0),
	}
}

func (s Color) IsTransparent() bool {
	return s.A < (1.0 / 255.0)
}

// IsDark tells if this is a perceptually dark color.
func (s Color) IsDark() bool {
	luminance := s.R*0.216 + s.G*0.7152 + s.B*0.0722
	return luminance <= 0.5
}

// Equals compares the premultiplied pixel encodings of the two colors.
// Colors that differ by less than one 8 bit quantization step are the
// same color once rendered.
func (s Color) Equals(other Color) bool {
	return s.AsPixel() == other.AsPixel()
}

func (s Color) String() string {
	return fmt.Sprintf("Color{r=%f, g=%f, b=%f, a=%f}", s.R, s.G, s.B, s.A)
}
