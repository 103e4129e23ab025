package svg

import "io"

// Point is a position in user coordinates.
type Point struct {
	X, Y float64
}

// RenderContext carries the output sink and indentation state through a
// render pass. Copies share the sink, so Indented contexts write to the same
// stream and see the same error.
//
// RenderContext implements io.Writer. After the first failed write every
// further write is dropped and returns that error; Err reports it.
type RenderContext struct {
	out        *sink
	IndentStep int
	Indent     int
}

type sink struct {
	w   io.Writer
	err error
}

// NewRenderContext returns a context writing to w with the given
// indentation step and starting indentation.
func NewRenderContext(w io.Writer, indentStep, indent int) RenderContext {
	return RenderContext{out: &sink{w: w}, IndentStep: indentStep, Indent: indent}
}

// Indented returns a context one indentation step deeper.
func (c RenderContext) Indented() RenderContext {
	return RenderContext{out: c.out, IndentStep: c.IndentStep, Indent: c.Indent + c.IndentStep}
}

// RenderIndent writes the current indentation as spaces.
func (c RenderContext) RenderIndent() {
	for i := 0; i < c.Indent; i++ {
		c.WriteString(" ")
	}
}

// Write implements io.Writer.
func (c RenderContext) Write(p []byte) (int, error) {
	if c.out.err != nil {
		return 0, c.out.err
	}
	n, err := c.out.w.Write(p)
	if err != nil {
		c.out.err = err
	}
	return n, err
}

// WriteString writes s, ignoring the result; check Err once the pass is done.
func (c RenderContext) WriteString(s string) {
	_, _ = io.WriteString(c, s)
}

// Err returns the first write error seen by this context, if any.
func (c RenderContext) Err() error {
	return c.out.err
}
