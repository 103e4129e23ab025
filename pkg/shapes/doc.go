// Package shapes provides composite figures built from svg primitives.
//
// Each figure implements [svg.Drawable]: drawing it into an
// [svg.ObjectContainer] adds the primitives it is made of.
//
//   - [Triangle]: a closed polyline through three vertices
//   - [Star]: a closed polyline alternating outer and inner vertices
//   - [Snowman]: three stacked circles
//
// Every figure has a Style applied to each primitive it produces. The zero
// Style leaves all stroke and fill attributes unset.
//
//	doc := svg.NewDocument()
//	svg.DrawPicture(doc, shapes.Demo()...)
//	err := doc.Render(os.Stdout)
package shapes
