package svg

// Circle is the <circle> element.
type Circle struct {
	props  PathProps
	center Point
	radius float64
}

// NewCircle returns a circle centered at the origin with radius 1.
func NewCircle() *Circle {
	return &Circle{radius: 1}
}

// SetCenter sets the center point (cx and cy attributes).
func (c *Circle) SetCenter(center Point) *Circle {
	c.center = center
	return c
}

// SetRadius sets the radius (r attribute).
func (c *Circle) SetRadius(radius float64) *Circle {
	c.radius = radius
	return c
}

// SetFillColor sets the fill attribute; see PathProps.SetFillColor.
func (c *Circle) SetFillColor(color Color) *Circle {
	c.props.SetFillColor(color)
	return c
}

// SetStrokeColor sets the stroke attribute; see PathProps.SetStrokeColor.
func (c *Circle) SetStrokeColor(color Color) *Circle {
	c.props.SetStrokeColor(color)
	return c
}

// SetStrokeWidth sets the stroke-width attribute.
func (c *Circle) SetStrokeWidth(width float64) *Circle {
	c.props.SetStrokeWidth(width)
	return c
}

// SetStrokeLineCap sets the stroke-linecap attribute.
func (c *Circle) SetStrokeLineCap(lineCap StrokeLineCap) *Circle {
	c.props.SetStrokeLineCap(lineCap)
	return c
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (c *Circle) SetStrokeLineJoin(lineJoin StrokeLineJoin) *Circle {
	c.props.SetStrokeLineJoin(lineJoin)
	return c
}

// SetPathProps replaces all stroke and fill attributes with p.
func (c *Circle) SetPathProps(p PathProps) *Circle {
	c.props = p
	return c
}

// Center returns the center point.
func (c *Circle) Center() Point { return c.center }

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// RenderObject implements Object.
func (c *Circle) RenderObject(ctx RenderContext) {
	ctx.WriteString(`<circle cx="` + formatNumber(c.center.X) + `" cy="` + formatNumber(c.center.Y) + `"`)
	ctx.WriteString(` r="` + formatNumber(c.radius) + `"`)
	c.props.RenderAttrs(ctx)
	ctx.WriteString(" />")
}
