package svg

import (
	"io"

	"github.com/matzehuels/svgscene/pkg/errors"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" ?>` + "\n"
	svgOpen   = `<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n"
	svgClose  = "</svg>"

	// indentStep is the indentation of each element inside <svg>.
	indentStep = 2
)

// ObjectContainer is an append-only, ordered collection of objects.
type ObjectContainer interface {
	// Add appends obj and takes ownership of it. Insertion order is render order.
	Add(obj Object)
}

// Drawable is a figure that decomposes itself into primitive objects.
type Drawable interface {
	Draw(c ObjectContainer)
}

// DrawableFunc adapts an ordinary function to the Drawable interface.
type DrawableFunc func(c ObjectContainer)

// Draw calls f(c).
func (f DrawableFunc) Draw(c ObjectContainer) { f(c) }

// DrawPicture draws each figure into target in order.
func DrawPicture(target ObjectContainer, figures ...Drawable) {
	for _, d := range figures {
		d.Draw(target)
	}
}

// Document is the root container. It renders its objects as a complete SVG
// document. The zero value is an empty document ready to use.
type Document struct {
	objects []Object
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add implements ObjectContainer. Nil objects are ignored.
func (d *Document) Add(obj Object) {
	if obj == nil {
		return
	}
	d.objects = append(d.objects, obj)
}

// Len returns the number of objects in the document.
func (d *Document) Len() int { return len(d.objects) }

// Render writes the document to w. It does not modify the document, so
// repeated calls produce identical output.
//
// A write failure aborts the render and is returned with code
// ErrCodeWriteFailed; whatever was written before the failure stays in w.
func (d *Document) Render(w io.Writer) error {
	ctx := NewRenderContext(w, indentStep, 0)
	ctx.WriteString(xmlHeader)
	ctx.WriteString(svgOpen)
	inner := ctx.Indented()
	for _, obj := range d.objects {
		if err := Render(inner, obj); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "render svg")
		}
	}
	ctx.WriteString(svgClose)
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "render svg")
	}
	return nil
}
