package svg

// StrokeLineCap is the shape used at the ends of open subpaths.
type StrokeLineCap int

const (
	LineCapButt StrokeLineCap = iota
	LineCapRound
	LineCapSquare
)

var lineCapNames = map[StrokeLineCap]string{
	LineCapButt:   "butt",
	LineCapRound:  "round",
	LineCapSquare: "square",
}

// String returns the SVG token for the cap, or "" if it is not a known value.
func (c StrokeLineCap) String() string { return lineCapNames[c] }

// ParseStrokeLineCap maps an SVG token back to a StrokeLineCap.
func ParseStrokeLineCap(s string) (StrokeLineCap, bool) {
	for c, name := range lineCapNames {
		if name == s {
			return c, true
		}
	}
	return 0, false
}

// StrokeLineJoin is the shape used at the corners of paths.
type StrokeLineJoin int

const (
	LineJoinArcs StrokeLineJoin = iota
	LineJoinBevel
	LineJoinMiter
	LineJoinMiterClip
	LineJoinRound
)

var lineJoinNames = map[StrokeLineJoin]string{
	LineJoinArcs:      "arcs",
	LineJoinBevel:     "bevel",
	LineJoinMiter:     "miter",
	LineJoinMiterClip: "miter-clip",
	LineJoinRound:     "round",
}

// String returns the SVG token for the join, or "" if it is not a known value.
func (j StrokeLineJoin) String() string { return lineJoinNames[j] }

// ParseStrokeLineJoin maps an SVG token back to a StrokeLineJoin.
func ParseStrokeLineJoin(s string) (StrokeLineJoin, bool) {
	for j, name := range lineJoinNames {
		if name == s {
			return j, true
		}
	}
	return 0, false
}

// PathProps holds the stroke and fill attributes shared by every shape.
// Each attribute is optional; unset attributes are not rendered at all.
//
// The zero value has nothing set. PathProps is a value type and can be
// prepared once and copied onto several shapes with SetPathProps.
type PathProps struct {
	fillColor   Color
	strokeColor Color
	strokeWidth *float64
	lineCap     *StrokeLineCap
	lineJoin    *StrokeLineJoin
}

// SetFillColor sets the fill attribute. A nil color is stored as NoColor.
func (p *PathProps) SetFillColor(c Color) *PathProps {
	p.fillColor = orNone(c)
	return p
}

// SetStrokeColor sets the stroke attribute. A nil color is stored as NoColor.
func (p *PathProps) SetStrokeColor(c Color) *PathProps {
	p.strokeColor = orNone(c)
	return p
}

// SetStrokeWidth sets the stroke-width attribute.
func (p *PathProps) SetStrokeWidth(width float64) *PathProps {
	p.strokeWidth = &width
	return p
}

// SetStrokeLineCap sets the stroke-linecap attribute.
func (p *PathProps) SetStrokeLineCap(c StrokeLineCap) *PathProps {
	p.lineCap = &c
	return p
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (p *PathProps) SetStrokeLineJoin(j StrokeLineJoin) *PathProps {
	p.lineJoin = &j
	return p
}

// IsZero reports whether no attribute has been set.
func (p PathProps) IsZero() bool {
	return p.fillColor == nil && p.strokeColor == nil &&
		p.strokeWidth == nil && p.lineCap == nil && p.lineJoin == nil
}

// RenderAttrs writes every set attribute as ` name="value"` in the order
// fill, stroke, stroke-width, stroke-linecap, stroke-linejoin.
func (p PathProps) RenderAttrs(ctx RenderContext) {
	if p.fillColor != nil {
		ctx.WriteString(" " + ColorAttr("fill", p.fillColor))
	}
	if p.strokeColor != nil {
		ctx.WriteString(" " + ColorAttr("stroke", p.strokeColor))
	}
	if p.strokeWidth != nil {
		ctx.WriteString(` stroke-width="` + formatNumber(*p.strokeWidth) + `"`)
	}
	if p.lineCap != nil {
		ctx.WriteString(` stroke-linecap="` + p.lineCap.String() + `"`)
	}
	if p.lineJoin != nil {
		ctx.WriteString(` stroke-linejoin="` + p.lineJoin.String() + `"`)
	}
}

func orNone(c Color) Color {
	if c == nil {
		return NoColor{}
	}
	return c
}
