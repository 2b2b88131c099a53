// Package geom provides the integer coordinate and extent types shared by every layer
// of the renderer.
//
// Coord is a signed position, Size an unsigned extent. The only fallible operation is
// converting a Coord delta into a Size, which reports ErrNegativeExtent instead of clamping.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeExtent is returned when a coordinate with a negative component is converted to a Size
var ErrNegativeExtent = errors.New("negative extent")

// Unbounded is the extent used for an axis without a limit
// Kept at MaxInt32 so Size to Coord conversions never overflow int arithmetic on 32-bit targets
const Unbounded uint32 = math.MaxInt32

// Coord is a signed 2D cell position
type Coord struct {
	X, Y int
}

// NewCoord creates a coordinate
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the componentwise sum
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the componentwise difference
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Min returns the componentwise minimum
func (c Coord) Min(o Coord) Coord {
	return Coord{X: min(c.X, o.X), Y: min(c.Y, o.Y)}
}

// Max returns the componentwise maximum
func (c Coord) Max(o Coord) Coord {
	return Coord{X: max(c.X, o.X), Y: max(c.Y, o.Y)}
}

// IsValid reports whether the coordinate lies in [0, size) on both axes
func (c Coord) IsValid(size Size) bool {
	return c.X >= 0 && c.Y >= 0 &&
		uint64(c.X) < uint64(size.W) && uint64(c.Y) < uint64(size.H)
}

// ToSize converts a coordinate delta to an extent
// Fails with ErrNegativeExtent if either component is negative
func (c Coord) ToSize() (Size, error) {
	if c.X < 0 || c.Y < 0 {
		return Size{}, fmt.Errorf("coord (%d,%d): %w", c.X, c.Y, ErrNegativeExtent)
	}
	return Size{W: clampExtent(c.X), H: clampExtent(c.Y)}, nil
}

// String implements fmt.Stringer
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Size is an unsigned 2D extent
type Size struct {
	W, H uint32
}

// NewSize creates an extent
func NewSize(w, h uint32) Size {
	return Size{W: w, H: h}
}

// Width returns the horizontal extent
func (s Size) Width() uint32 { return s.W }

// Height returns the vertical extent
func (s Size) Height() uint32 { return s.H }

// IsZero reports whether either axis is empty
func (s Size) IsZero() bool {
	return s.W == 0 || s.H == 0
}

// Add returns the componentwise sum, saturating at Unbounded
func (s Size) Add(o Size) Size {
	return Size{W: satAdd(s.W, o.W), H: satAdd(s.H, o.H)}
}

// SaturatingSub returns the componentwise difference floored at zero
func (s Size) SaturatingSub(o Size) Size {
	return Size{W: satSub(s.W, o.W), H: satSub(s.H, o.H)}
}

// Min returns the componentwise minimum
func (s Size) Min(o Size) Size {
	return Size{W: min(s.W, o.W), H: min(s.H, o.H)}
}

// ToCoord converts the extent into a coordinate delta
func (s Size) ToCoord() Coord {
	return Coord{X: int(min(s.W, Unbounded)), Y: int(min(s.H, Unbounded))}
}

// String implements fmt.Stringer
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

func satAdd(a, b uint32) uint32 {
	if a >= Unbounded || b >= Unbounded || a+b >= Unbounded {
		return Unbounded
	}
	return a + b
}

func satSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

func clampExtent(v int) uint32 {
	if int64(v) >= int64(Unbounded) {
		return Unbounded
	}
	return uint32(v)
}
