package colour

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Xterm256 quantizes to the xterm 256-colour cube and grey ramp
// System colours 0-15 are never produced since terminals theme them freely
type Xterm256 struct{}

// Index returns the nearest palette index in [16,255]
func (Xterm256) Index(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	// Grayscale ramp is only a candidate when r ≈ g ≈ b
	gray := (r + g + b) / 3
	maxDiff := max(abs(r-gray), abs(g-gray), abs(b-gray))

	cubeR := cubeIndex[c.R]
	cubeG := cubeIndex[c.G]
	cubeB := cubeIndex[c.B]

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := grayscaleStart + (gray-8)/10
		if grayIdx > 255 {
			grayIdx = 255
		}
		if grayIdx < grayscaleStart {
			grayIdx = grayscaleStart
		}

		grayLevel := 8 + (grayIdx-grayscaleStart)*10
		grayDist := abs(r-grayLevel) + abs(g-grayLevel) + abs(b-grayLevel)
		cubeDist := abs(r-int(cubeValues[cubeR])) +
			abs(g-int(cubeValues[cubeG])) +
			abs(b-int(cubeValues[cubeB]))

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return Cube256(cubeR, cubeG, cubeB)
}

// Modify implements Transform
func (x Xterm256) Modify(c RGB) RGB {
	return Palette256(x.Index(c))
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// Palette256 returns the RGB value xterm assigns to a palette index
func Palette256(index uint8) RGB {
	switch {
	case index < 16:
		return Ansi16Palette[index]
	case index >= grayscaleStart:
		v := uint8(8 + 10*int(index-grayscaleStart))
		return RGB{R: v, G: v, B: v}
	}
	n := index - 16
	return RGB{
		R: cubeValues[n/36],
		G: cubeValues[(n%36)/6],
		B: cubeValues[n%6],
	}
}
