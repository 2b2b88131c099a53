package decorator

import (
	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/render"
)

// Transform changes the colour transform seen by its child
// With Compose set the child's colours pass through Transform first and then the inherited one
type Transform[T any] struct {
	Child     render.View[T]
	Transform colour.Transform
	Compose   bool
}

// NewTransform replaces the inherited transform with t for v
func NewTransform[T any](v render.View[T], t colour.Transform) Transform[T] {
	return Transform[T]{Child: v, Transform: t}
}

// NewComposedTransform applies t before the inherited transform for v
func NewComposedTransform[T any](v render.View[T], t colour.Transform) Transform[T] {
	return Transform[T]{Child: v, Transform: t, Compose: true}
}

// View implements render.View
func (tr Transform[T]) View(data T, ctx render.Context, f render.Frame) {
	if tr.Compose {
		ctx = ctx.ComposeTransform(tr.Transform)
	} else {
		ctx = ctx.WithTransform(colour.OrIdentity(tr.Transform))
	}
	tr.Child.View(data, ctx, f)
}
