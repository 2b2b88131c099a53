// Package decorator wraps views with layout and chrome: padding, fixed bounds, alignment,
// background fill, colour transforms, borders with titles and vertical scrolling.
//
// Every decorator is itself a render.View and only derives the child's context, draws its
// own cells, and delegates. Decorators compose freely:
//
//	v := decorator.NewBorder[string](
//		decorator.NewVerticalScroll[string](text.NewStringView(style, text.NewWordWrap()), state),
//	).WithTitle("notes")
//	v.View(body, ctx, frame)
package decorator
