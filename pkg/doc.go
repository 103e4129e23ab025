// Package pkg provides the core libraries for svgscene.
//
// # Overview
//
// svgscene builds SVG documents out of simple figures. The pkg directory is
// organized into a small stack, each layer depending only on those below it:
//
//  1. [svg] - The document model: colors, stroke and fill attributes,
//     circle, polyline and text elements, and the document writer
//  2. [shapes] - Composite figures (triangle, star, snowman) drawn from
//     svg primitives
//  3. [scene] - TOML and JSON scene files decoded into drawable figures
//  4. [pipeline] - Orchestration (load → draw → render) with logging and
//     run IDs
//
// Supporting packages:
//
//   - [errors] - Structured error codes shared by every layer
//   - [observability] - Optional render hooks for metrics and tracing
//   - [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow through svgscene:
//
//	scene.toml / scene.json
//	         ↓
//	    [scene] package (decode + validate figures)
//	         ↓
//	    [shapes] / [svg] drawables
//	         ↓
//	    [svg] Document (ordered objects)
//	         ↓
//	    SVG text on any io.Writer
//
// # Quick Start
//
// Draw figures in code:
//
//	import (
//	    "os"
//	    "github.com/matzehuels/svgscene/pkg/shapes"
//	    "github.com/matzehuels/svgscene/pkg/svg"
//	)
//
//	doc := svg.NewDocument()
//	doc.Add(svg.NewCircle().
//	    SetCenter(svg.Point{X: 10, Y: 10}).
//	    SetRadius(4).
//	    SetFillColor(svg.NamedColor("red")))
//	svg.DrawPicture(doc, shapes.Star{
//	    Center:      svg.Point{X: 50, Y: 20},
//	    OuterRadius: 10,
//	    InnerRadius: 4,
//	    Rays:        5,
//	})
//	if err := doc.Render(os.Stdout); err != nil {
//	    // handle errors.ErrCodeWriteFailed
//	}
//
// Render a scene file:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.RenderFile(ctx, "scene.toml", os.Stdout)
//
// # Output Format
//
// Documents are plain text: an XML declaration, an <svg> element in the SVG
// 1.1 namespace, one element per line indented by two spaces, and a closing
// </svg> with no trailing newline. Numbers use at most six significant
// digits. Text content is escaped when it is assigned.
//
// [svg]: github.com/matzehuels/svgscene/pkg/svg
// [shapes]: github.com/matzehuels/svgscene/pkg/shapes
// [scene]: github.com/matzehuels/svgscene/pkg/scene
// [pipeline]: github.com/matzehuels/svgscene/pkg/pipeline
// [errors]: github.com/matzehuels/svgscene/pkg/errors
// [observability]: github.com/matzehuels/svgscene/pkg/observability
// [buildinfo]: github.com/matzehuels/svgscene/pkg/buildinfo
package pkg
