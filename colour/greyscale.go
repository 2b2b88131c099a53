package colour

import "github.com/lucasb-eyer/go-colorful"

// greyRamp holds black, the 24 xterm grey steps (8..238) and white
var greyRamp [26]uint8

func init() {
	greyRamp[0] = 0
	for i := 0; i < 24; i++ {
		greyRamp[i+1] = uint8(8 + 10*i)
	}
	greyRamp[25] = 255
}

// GreyRampLen is the number of levels Greyscale maps onto
const GreyRampLen = len(greyRamp)

// Greyscale maps colours to the nearest grey of the xterm ramp by relative luminance
type Greyscale struct{}

// Luminance returns the sRGB grey level with the same Rec.709 relative luminance as c
func Luminance(c RGB) uint8 {
	r, g, b := c.Colorful().LinearRgb()
	y := 0.2126*r + 0.7152*g + 0.0722*b
	grey := colorful.LinearRgb(y, y, y).Clamped()
	level, _, _ := grey.RGB255()
	return level
}

// Index returns the ramp position nearest to the luminance of c
func (Greyscale) Index(c RGB) int {
	level := int(Luminance(c))
	best := 0
	bestDist := 256
	for i, v := range greyRamp {
		d := level - int(v)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Modify implements Transform
func (g Greyscale) Modify(c RGB) RGB {
	v := greyRamp[g.Index(c)]
	return RGB{R: v, G: v, B: v}
}
