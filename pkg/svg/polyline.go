package svg

import "slices"

// Polyline is the <polyline> element: a sequence of connected points.
// Points keep insertion order; duplicates and an empty list are allowed.
type Polyline struct {
	props  PathProps
	points []Point
}

// NewPolyline returns a polyline with no points.
func NewPolyline() *Polyline {
	return &Polyline{}
}

// AddPoint appends the next vertex.
func (p *Polyline) AddPoint(point Point) *Polyline {
	p.points = append(p.points, point)
	return p
}

// SetFillColor sets the fill attribute; see PathProps.SetFillColor.
func (p *Polyline) SetFillColor(color Color) *Polyline {
	p.props.SetFillColor(color)
	return p
}

// SetStrokeColor sets the stroke attribute; see PathProps.SetStrokeColor.
func (p *Polyline) SetStrokeColor(color Color) *Polyline {
	p.props.SetStrokeColor(color)
	return p
}

// SetStrokeWidth sets the stroke-width attribute.
func (p *Polyline) SetStrokeWidth(width float64) *Polyline {
	p.props.SetStrokeWidth(width)
	return p
}

// SetStrokeLineCap sets the stroke-linecap attribute.
func (p *Polyline) SetStrokeLineCap(lineCap StrokeLineCap) *Polyline {
	p.props.SetStrokeLineCap(lineCap)
	return p
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (p *Polyline) SetStrokeLineJoin(lineJoin StrokeLineJoin) *Polyline {
	p.props.SetStrokeLineJoin(lineJoin)
	return p
}

// SetPathProps replaces all stroke and fill attributes with props.
func (p *Polyline) SetPathProps(props PathProps) *Polyline {
	p.props = props
	return p
}

// Points returns a copy of the vertices.
func (p *Polyline) Points() []Point { return slices.Clone(p.points) }

// RenderObject implements Object.
func (p *Polyline) RenderObject(ctx RenderContext) {
	ctx.WriteString(`<polyline points="`)
	for i, pt := range p.points {
		if i > 0 {
			ctx.WriteString(" ")
		}
		ctx.WriteString(formatNumber(pt.X) + "," + formatNumber(pt.Y))
	}
	ctx.WriteString(`"`)
	p.props.RenderAttrs(ctx)
	ctx.WriteString(" />")
}
