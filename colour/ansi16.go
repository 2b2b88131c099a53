package colour

import "github.com/lucasb-eyer/go-colorful"

// Ansi16Palette is the xterm default rendition of the 16 system colours
var Ansi16Palette = [16]RGB{
	{0, 0, 0},       // black
	{205, 0, 0},     // red
	{0, 205, 0},     // green
	{205, 205, 0},   // yellow
	{0, 0, 238},     // blue
	{205, 0, 205},   // magenta
	{0, 205, 205},   // cyan
	{229, 229, 229}, // white
	{127, 127, 127}, // bright black
	{255, 0, 0},     // bright red
	{0, 255, 0},     // bright green
	{255, 255, 0},   // bright yellow
	{92, 92, 255},   // bright blue
	{255, 0, 255},   // bright magenta
	{0, 255, 255},   // bright cyan
	{255, 255, 255}, // bright white
}

// ansi16Lab caches the palette in go-colorful form
var ansi16Lab [16]colorful.Color

func init() {
	for i, c := range Ansi16Palette {
		ansi16Lab[i] = c.Colorful()
	}
}

// Ansi16 quantizes to the nearest of the 16 system colours by CIE-Lab distance
type Ansi16 struct{}

// Index returns the palette index nearest to c
// Ties resolve to the lowest index, so the result is deterministic
func (Ansi16) Index(c RGB) uint8 {
	target := c.Colorful()
	best := 0
	bestDist := target.DistanceLab(ansi16Lab[0])
	for i := 1; i < len(ansi16Lab); i++ {
		if d := target.DistanceLab(ansi16Lab[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

// Modify implements Transform
func (a Ansi16) Modify(c RGB) RGB {
	return Ansi16Palette[a.Index(c)]
}
