package svg

// Object is a renderable SVG element.
//
// RenderObject writes only the element's tag. Indentation and the trailing
// newline are written by Render so every element follows the same layout.
type Object interface {
	RenderObject(ctx RenderContext)
}

// Render writes obj as one line: indentation, tag, newline.
// It returns the first write error seen by ctx.
func Render(ctx RenderContext, obj Object) error {
	ctx.RenderIndent()
	obj.RenderObject(ctx)
	ctx.WriteString("\n")
	return ctx.Err()
}
