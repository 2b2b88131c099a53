package colour

// Transform maps a 24-bit colour to the representation a sink supports
type Transform interface {
	Modify(c RGB) RGB
}

// TransformFunc adapts a function to Transform
type TransformFunc func(RGB) RGB

// Modify implements Transform
func (f TransformFunc) Modify(c RGB) RGB {
	return f(c)
}

// Identity passes colours through unchanged
type Identity struct{}

// Modify implements Transform
func (Identity) Modify(c RGB) RGB { return c }

// TrueColour is the passthrough installed after a terminal negotiated 24-bit support
// Distinct from Identity so sinks can tell a negotiated capability from "no transform"
type TrueColour struct{}

// Modify implements Transform
func (TrueColour) Modify(c RGB) RGB { return c }

// OrIdentity returns t, or Identity when t is nil
func OrIdentity(t Transform) Transform {
	if t == nil {
		return Identity{}
	}
	return t
}

// composed applies inner first, then outer
type composed struct {
	outer, inner Transform
}

func (c composed) Modify(rgb RGB) RGB {
	return c.outer.Modify(c.inner.Modify(rgb))
}

// Compose returns a transform applying inner then outer
// A nil side is treated as Identity
func Compose(outer, inner Transform) Transform {
	switch {
	case outer == nil && inner == nil:
		return Identity{}
	case outer == nil:
		return inner
	case inner == nil:
		return outer
	}
	return composed{outer: outer, inner: inner}
}

// Dim scales every channel by Factor in [0,1]
// Factors outside the range are clamped
type Dim struct {
	Factor float64
}

// Modify implements Transform
func (d Dim) Modify(c RGB) RGB {
	f := d.Factor
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return RGB{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
	}
}
