package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/svgscene/pkg/errors"
	"github.com/matzehuels/svgscene/pkg/shapes"
	"github.com/matzehuels/svgscene/pkg/svg"
)

// Figure kinds.
const (
	KindCircle   = "circle"
	KindPolyline = "polyline"
	KindText     = "text"
	KindTriangle = "triangle"
	KindStar     = "star"
	KindSnowman  = "snowman"
)

// Kinds lists every supported figure kind.
var Kinds = []string{KindCircle, KindPolyline, KindText, KindTriangle, KindStar, KindSnowman}

// Scene is a decoded scene file.
type Scene struct {
	Figures []Figure `toml:"figure" json:"figures"`
}

// Figure is one entry of a scene. Which fields apply depends on Kind.
type Figure struct {
	Kind string `toml:"kind" json:"kind"`

	Center   []float64   `toml:"center,omitempty" json:"center,omitempty"`
	Radius   *float64    `toml:"radius,omitempty" json:"radius,omitempty"`
	Points   [][]float64 `toml:"points,omitempty" json:"points,omitempty"`
	Position []float64   `toml:"position,omitempty" json:"position,omitempty"`
	Offset   []float64   `toml:"offset,omitempty" json:"offset,omitempty"`

	FontSize   uint32 `toml:"font_size,omitempty" json:"font_size,omitempty"`
	FontFamily string `toml:"font_family,omitempty" json:"font_family,omitempty"`
	FontWeight string `toml:"font_weight,omitempty" json:"font_weight,omitempty"`
	Data       string `toml:"data,omitempty" json:"data,omitempty"`

	OuterRadius float64 `toml:"outer_radius,omitempty" json:"outer_radius,omitempty"`
	InnerRadius float64 `toml:"inner_radius,omitempty" json:"inner_radius,omitempty"`
	Rays        int     `toml:"rays,omitempty" json:"rays,omitempty"`

	Style
}

// Style holds the optional stroke and fill keys shared by all kinds.
// Empty strings and nil pointers leave the attribute unset.
type Style struct {
	Fill           string   `toml:"fill,omitempty" json:"fill,omitempty"`
	Stroke         string   `toml:"stroke,omitempty" json:"stroke,omitempty"`
	StrokeWidth    *float64 `toml:"stroke_width,omitempty" json:"stroke_width,omitempty"`
	StrokeLineCap  string   `toml:"stroke_linecap,omitempty" json:"stroke_linecap,omitempty"`
	StrokeLineJoin string   `toml:"stroke_linejoin,omitempty" json:"stroke_linejoin,omitempty"`
}

// PathProps converts the style keys into svg attributes.
func (s Style) PathProps() (svg.PathProps, error) {
	var p svg.PathProps
	fill, err := ParseColor(s.Fill)
	if err != nil {
		return p, err
	}
	if fill != nil {
		p.SetFillColor(fill)
	}
	stroke, err := ParseColor(s.Stroke)
	if err != nil {
		return p, err
	}
	if stroke != nil {
		p.SetStrokeColor(stroke)
	}
	if s.StrokeWidth != nil {
		if *s.StrokeWidth < 0 {
			return p, errors.New(errors.ErrCodeInvalidFigure, "stroke_width must not be negative, got %g", *s.StrokeWidth)
		}
		p.SetStrokeWidth(*s.StrokeWidth)
	}
	if s.StrokeLineCap != "" {
		c, ok := svg.ParseStrokeLineCap(s.StrokeLineCap)
		if !ok {
			return p, errors.New(errors.ErrCodeInvalidFigure, "unknown stroke_linecap %q", s.StrokeLineCap)
		}
		p.SetStrokeLineCap(c)
	}
	if s.StrokeLineJoin != "" {
		j, ok := svg.ParseStrokeLineJoin(s.StrokeLineJoin)
		if !ok {
			return p, errors.New(errors.ErrCodeInvalidFigure, "unknown stroke_linejoin %q", s.StrokeLineJoin)
		}
		p.SetStrokeLineJoin(j)
	}
	return p, nil
}

// Drawables converts every figure in order. The first invalid figure aborts
// the conversion with an ErrCodeInvalidScene error naming its 1-based index.
func (s *Scene) Drawables() ([]svg.Drawable, error) {
	out := make([]svg.Drawable, 0, len(s.Figures))
	for i, f := range s.Figures {
		d, err := f.Drawable()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "figure %d (%s)", i+1, f.Kind)
		}
		out = append(out, d)
	}
	return out, nil
}

// Drawable builds the figure's svg drawable.
func (f Figure) Drawable() (svg.Drawable, error) {
	style, err := f.PathProps()
	if err != nil {
		return nil, err
	}

	switch f.Kind {
	case KindCircle:
		center, err := point("center", f.Center)
		if err != nil {
			return nil, err
		}
		c := svg.NewCircle().SetCenter(center).SetPathProps(style)
		if f.Radius != nil {
			if *f.Radius < 0 {
				return nil, errors.New(errors.ErrCodeInvalidFigure, "radius must not be negative, got %g", *f.Radius)
			}
			c.SetRadius(*f.Radius)
		}
		return object(c), nil

	case KindPolyline:
		pts, err := points(f.Points)
		if err != nil {
			return nil, err
		}
		p := svg.NewPolyline().SetPathProps(style)
		for _, pt := range pts {
			p.AddPoint(pt)
		}
		return object(p), nil

	case KindText:
		pos, err := point("position", f.Position)
		if err != nil {
			return nil, err
		}
		if err := attrValue("font_family", f.FontFamily); err != nil {
			return nil, err
		}
		if err := attrValue("font_weight", f.FontWeight); err != nil {
			return nil, err
		}
		var off svg.Point
		if f.Offset != nil {
			if off, err = point("offset", f.Offset); err != nil {
				return nil, err
			}
		}
		t := svg.NewText().
			SetPosition(pos).
			SetOffset(off).
			SetFontFamily(f.FontFamily).
			SetFontWeight(f.FontWeight).
			SetData(f.Data).
			SetPathProps(style)
		if f.FontSize > 0 {
			t.SetFontSize(f.FontSize)
		}
		return object(t), nil

	case KindTriangle:
		pts, err := points(f.Points)
		if err != nil {
			return nil, err
		}
		if len(pts) != 3 {
			return nil, errors.New(errors.ErrCodeInvalidFigure, "triangle needs 3 points, got %d", len(pts))
		}
		return shapes.Triangle{P1: pts[0], P2: pts[1], P3: pts[2], Style: style}, nil

	case KindStar:
		center, err := point("center", f.Center)
		if err != nil {
			return nil, err
		}
		if f.Rays < 1 {
			return nil, errors.New(errors.ErrCodeInvalidFigure, "star needs at least 1 ray, got %d", f.Rays)
		}
		if f.OuterRadius < 0 || f.InnerRadius < 0 {
			return nil, errors.New(errors.ErrCodeInvalidFigure, "star radii must not be negative")
		}
		return shapes.Star{
			Center:      center,
			OuterRadius: f.OuterRadius,
			InnerRadius: f.InnerRadius,
			Rays:        f.Rays,
			Style:       style,
		}, nil

	case KindSnowman:
		head, err := point("center", f.Center)
		if err != nil {
			return nil, err
		}
		if f.Radius == nil || *f.Radius <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidFigure, "snowman needs a positive radius")
		}
		return shapes.Snowman{Head: head, Radius: *f.Radius, Style: style}, nil

	case "":
		return nil, errors.New(errors.ErrCodeInvalidFigure, "missing kind (one of %s)", strings.Join(Kinds, ", "))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFigure, "unknown kind %q (one of %s)", f.Kind, strings.Join(Kinds, ", "))
	}
}

// object wraps a single primitive as a drawable.
func object(obj svg.Object) svg.Drawable {
	return svg.DrawableFunc(func(c svg.ObjectContainer) { c.Add(obj) })
}

// attrValue rejects characters that would end an attribute value or open
// markup. Font attributes are written verbatim.
func attrValue(key, v string) error {
	if strings.ContainsAny(v, `"<>&`) {
		return errors.New(errors.ErrCodeInvalidFigure, "%s %q contains one of \"<>&", key, v)
	}
	return nil
}

func point(key string, xy []float64) (svg.Point, error) {
	if len(xy) != 2 {
		return svg.Point{}, errors.New(errors.ErrCodeInvalidFigure, "%s must be [x, y], got %d values", key, len(xy))
	}
	return svg.Point{X: xy[0], Y: xy[1]}, nil
}

func points(list [][]float64) ([]svg.Point, error) {
	out := make([]svg.Point, 0, len(list))
	for i, xy := range list {
		pt, err := point(fmt.Sprintf("points[%d]", i), xy)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, nil
}

// Load reads and decodes the scene file at path. The format follows the
// file extension.
func Load(path string) (*Scene, error) {
	format, err := errors.SceneFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read scene %s", path)
	}
	return Read(bytes.NewReader(data), format)
}

// Read decodes a scene in the given format ("toml" or "json").
// Keys that do not belong to a figure are rejected.
func Read(r io.Reader, format string) (*Scene, error) {
	var s Scene
	switch format {
	case "toml":
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			slices.Sort(keys)
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q (use toml or json)", format)
	}
	return &s, nil
}
