// Package scene reads scene description files and turns them into drawable
// figures.
//
// # Overview
//
// A scene is an ordered list of figures. Each figure is either an svg
// primitive (circle, polyline, text) or one of the composite figures from the
// shapes package (triangle, star, snowman). Figures are drawn in file order,
// which is also their paint order.
//
// # Formats
//
// Scenes are written in TOML or JSON; [Load] picks the decoder from the file
// extension (.toml or .json). Unknown keys are rejected in both formats.
//
// TOML uses an array of tables named "figure":
//
//	[[figure]]
//	kind = "triangle"
//	points = [[100, 20], [120, 50], [80, 40]]
//	stroke = "green"
//
//	[[figure]]
//	kind = "text"
//	position = [35, 20]
//	font_size = 12
//	data = "Hello"
//	fill = "rgba(0,0,0,0.5)"
//
// JSON uses a top-level "figures" array with the same keys.
//
// # Figure Keys
//
//   - circle: center, radius
//   - polyline: points
//   - text: position, offset, font_size, font_family, font_weight, data
//   - triangle: points (exactly three)
//   - star: center, outer_radius, inner_radius, rays
//   - snowman: center (of the head), radius
//
// Every kind accepts the style keys fill, stroke, stroke_width,
// stroke_linecap and stroke_linejoin. Colors are "none", a color name,
// "rgb(r,g,b)" or "rgba(r,g,b,opacity)"; see [ParseColor].
//
// # Errors
//
// Decoding problems are reported with [errors.ErrCodeInvalidScene]. Problems
// with a single figure name its 1-based index and wrap an
// [errors.ErrCodeInvalidFigure] or [errors.ErrCodeInvalidColor] cause.
//
// [errors.ErrCodeInvalidScene]: github.com/matzehuels/svgscene/pkg/errors.ErrCodeInvalidScene
// [errors.ErrCodeInvalidFigure]: github.com/matzehuels/svgscene/pkg/errors.ErrCodeInvalidFigure
// [errors.ErrCodeInvalidColor]: github.com/matzehuels/svgscene/pkg/errors.ErrCodeInvalidColor
package scene
