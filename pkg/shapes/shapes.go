package shapes

import (
	"math"

	"github.com/matzehuels/svgscene/pkg/svg"
)

// Triangle is drawn as one polyline that returns to its first vertex.
type Triangle struct {
	P1, P2, P3 svg.Point
	Style      svg.PathProps
}

// Draw implements svg.Drawable.
func (t Triangle) Draw(c svg.ObjectContainer) {
	c.Add(svg.NewPolyline().
		AddPoint(t.P1).
		AddPoint(t.P2).
		AddPoint(t.P3).
		AddPoint(t.P1).
		SetPathProps(t.Style))
}

// Star is a closed polyline with Rays outer vertices on a circle of
// OuterRadius and as many inner vertices on a circle of InnerRadius.
// The first ray points straight up.
type Star struct {
	Center      svg.Point
	OuterRadius float64
	InnerRadius float64
	Rays        int
	Style       svg.PathProps
}

// Draw implements svg.Drawable. A star with fewer than one ray draws nothing.
func (s Star) Draw(c svg.ObjectContainer) {
	if s.Rays < 1 {
		return
	}
	c.Add(s.polyline())
}

func (s Star) polyline() *svg.Polyline {
	p := svg.NewPolyline().SetPathProps(s.Style)
	n := float64(s.Rays)
	for i := 0; i <= s.Rays; i++ {
		angle := 2 * math.Pi * float64(i%s.Rays) / n
		p.AddPoint(s.vertex(s.OuterRadius, angle))
		if i == s.Rays {
			break
		}
		angle += math.Pi / n
		p.AddPoint(s.vertex(s.InnerRadius, angle))
	}
	return p
}

// vertex returns the point at radius r and angle measured clockwise from
// the top (SVG's y axis points down).
func (s Star) vertex(r, angle float64) svg.Point {
	return svg.Point{
		X: s.Center.X + r*math.Sin(angle),
		Y: s.Center.Y - r*math.Cos(angle),
	}
}

// Snowman is three circles stacked below a head centered at Head.
type Snowman struct {
	Head   svg.Point
	Radius float64
	Style  svg.PathProps
}

// Draw implements svg.Drawable. Circles are added bottom first so the head
// is painted last.
func (s Snowman) Draw(c svg.ObjectContainer) {
	r := s.Radius
	c.Add(s.circle(svg.Point{X: s.Head.X, Y: s.Head.Y + 5*r}, 2*r))
	c.Add(s.circle(svg.Point{X: s.Head.X, Y: s.Head.Y + 2*r}, 1.5*r))
	c.Add(s.circle(s.Head, r))
}

func (s Snowman) circle(center svg.Point, r float64) *svg.Circle {
	return svg.NewCircle().SetCenter(center).SetRadius(r).SetPathProps(s.Style)
}

// Demo returns the sample picture: a triangle, a five-pointed star and a
// snowman, unstyled.
func Demo() []svg.Drawable {
	return []svg.Drawable{
		Triangle{P1: svg.Point{X: 100, Y: 20}, P2: svg.Point{X: 120, Y: 50}, P3: svg.Point{X: 80, Y: 40}},
		Star{Center: svg.Point{X: 50, Y: 20}, OuterRadius: 10, InnerRadius: 4, Rays: 5},
		Snowman{Head: svg.Point{X: 30, Y: 20}, Radius: 10},
	}
}
