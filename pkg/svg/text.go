package svg

import (
	"strconv"
	"strings"
)

// Text is the <text> element.
type Text struct {
	props      PathProps
	position   Point
	offset     Point
	fontSize   uint32
	fontFamily string
	fontWeight string
	data       string
}

// NewText returns an empty label at the origin with font size 1.
func NewText() *Text {
	return &Text{fontSize: 1}
}

// SetPosition sets the anchor point (x and y attributes).
func (t *Text) SetPosition(pos Point) *Text {
	t.position = pos
	return t
}

// SetOffset sets the shift from the anchor point (dx and dy attributes).
func (t *Text) SetOffset(offset Point) *Text {
	t.offset = offset
	return t
}

// SetFontSize sets the font-size attribute.
func (t *Text) SetFontSize(size uint32) *Text {
	t.fontSize = size
	return t
}

// SetFontFamily sets font-family. An empty name omits the attribute.
func (t *Text) SetFontFamily(family string) *Text {
	t.fontFamily = family
	return t
}

// SetFontWeight sets font-weight. An empty weight omits the attribute.
func (t *Text) SetFontWeight(weight string) *Text {
	t.fontWeight = weight
	return t
}

// SetData sets the text content. The content is XML-escaped on assignment.
func (t *Text) SetData(data string) *Text {
	t.data = EscapeXML(data)
	return t
}

// SetFillColor sets the fill attribute; see PathProps.SetFillColor.
func (t *Text) SetFillColor(color Color) *Text {
	t.props.SetFillColor(color)
	return t
}

// SetStrokeColor sets the stroke attribute; see PathProps.SetStrokeColor.
func (t *Text) SetStrokeColor(color Color) *Text {
	t.props.SetStrokeColor(color)
	return t
}

// SetStrokeWidth sets the stroke-width attribute.
func (t *Text) SetStrokeWidth(width float64) *Text {
	t.props.SetStrokeWidth(width)
	return t
}

// SetStrokeLineCap sets the stroke-linecap attribute.
func (t *Text) SetStrokeLineCap(lineCap StrokeLineCap) *Text {
	t.props.SetStrokeLineCap(lineCap)
	return t
}

// SetStrokeLineJoin sets the stroke-linejoin attribute.
func (t *Text) SetStrokeLineJoin(lineJoin StrokeLineJoin) *Text {
	t.props.SetStrokeLineJoin(lineJoin)
	return t
}

// SetPathProps replaces all stroke and fill attributes with p.
func (t *Text) SetPathProps(p PathProps) *Text {
	t.props = p
	return t
}

// Data returns the escaped content.
func (t *Text) Data() string { return t.data }

// RenderObject implements Object.
func (t *Text) RenderObject(ctx RenderContext) {
	ctx.WriteString(`<text x="` + formatNumber(t.position.X) + `" y="` + formatNumber(t.position.Y) + `"`)
	ctx.WriteString(` dx="` + formatNumber(t.offset.X) + `" dy="` + formatNumber(t.offset.Y) + `"`)
	ctx.WriteString(` font-size="` + strconv.FormatUint(uint64(t.fontSize), 10) + `"`)
	if t.fontFamily != "" {
		ctx.WriteString(` font-family="` + t.fontFamily + `"`)
	}
	if t.fontWeight != "" {
		ctx.WriteString(` font-weight="` + t.fontWeight + `"`)
	}
	t.props.RenderAttrs(ctx)
	ctx.WriteString(">" + t.data + "</text>")
}

// xmlEscaper replaces in a single left-to-right pass, so the '&' of an
// inserted entity is never escaped again.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeXML replaces the five XML special characters with named entities.
// Unlike encoding/xml.EscapeText it uses &quot; and &apos; and leaves
// whitespace alone.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
