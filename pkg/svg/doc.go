// Package svg builds an in-memory scene of vector primitives and serializes it
// as SVG markup.
//
// # Overview
//
// The package is a small object model with three primitive shapes:
//
//   - [Circle]: a circle with a center and radius
//   - [Polyline]: an ordered sequence of points
//   - [Text]: a text label with font settings
//
// Every shape carries the same optional stroke and fill attributes through
// [PathProps]. Attributes that were never set are omitted from the output so
// the SVG defaults of the consuming renderer apply.
//
// # Building a Document
//
// Shapes are configured with chainable setters and handed to a [Document]:
//
//	doc := svg.NewDocument()
//	doc.Add(svg.NewCircle().
//	    SetCenter(svg.Point{X: 20, Y: 20}).
//	    SetRadius(10).
//	    SetFillColor(svg.NamedColor("white")).
//	    SetStrokeColor(svg.NamedColor("black")))
//	if err := doc.Render(os.Stdout); err != nil {
//	    return err
//	}
//
// A shape added to a container belongs to it. Callers must not modify or add
// the same shape again after [ObjectContainer.Add].
//
// # Composite Figures
//
// Higher-level figures implement [Drawable] and decompose themselves into
// primitives when drawn into an [ObjectContainer]. [DrawPicture] draws a
// sequence of figures into one container, preserving order:
//
//	svg.DrawPicture(doc, triangle, star, snowman)
//
// The shapes package ships the stock figures.
//
// # Output Format
//
// [Document.Render] writes an XML declaration, an <svg> root element, one line
// per shape indented by two spaces, and the closing </svg> tag with no
// trailing newline. Floating point values use the shortest representation with
// six significant digits, so 1.0 renders as "1" and 0.5 as "0.5".
//
// Rendering never mutates the document; rendering twice yields identical bytes.
// The only failure is a write error from the sink, which is returned wrapped
// with [errors.ErrCodeWriteFailed].
//
// [errors.ErrCodeWriteFailed]: github.com/matzehuels/svgscene/pkg/errors.ErrCodeWriteFailed
package svg
