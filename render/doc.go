// FILE: render/doc.go
// Package render is the compositing core: the cell model, the render context, the frame
// pipeline every cell write flows through, and the View contract.
//
// Pipeline:
//
//	View.View(data, ctx, frame)
//	  └─ SetCellRelative(frame, R, depth, cell, ctx)
//	       ├─ clip: R+InnerOffset must lie in [0, ctx.Size)
//	       ├─ translate: absolute = R+InnerOffset+OuterOffset, depth += ctx.Depth
//	       ├─ colour: ctx.Transform applied to fg and bg
//	       └─ frame.SetCellAbsolute(absolute, depth, cell)
//
// Measuring and drawing share one View body. VisibleBounds runs a view against a
// MeasureBounds sink, ViewReportingIntendedSize runs it against MeasureBoundsAndDraw,
// which draws into the real frame and records the natural size in the same pass.
//
// Usage pattern:
//
//	buf := render.NewBuffer(geom.NewSize(w, h))
//	render.Draw(view, data, buf, buf.Size(), colour.Detect())
//	rows := buf.Rows()
package render
