package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/svgscene/pkg/observability"
	"github.com/matzehuels/svgscene/pkg/scene"
	"github.com/matzehuels/svgscene/pkg/svg"
)

// Runner executes render runs.
//
// The Runner is stateless except for the logger, so multiple goroutines can
// safely share one Runner as long as they write to different outputs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// RenderFile loads the scene at path and renders it to w.
func (r *Runner) RenderFile(ctx context.Context, path string, w io.Writer) (*Result, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	observability.Render().OnSceneLoaded(ctx, path, len(s.Figures))

	drawables, err := s.Drawables()
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, drawables, w)
}

// Render draws the figures, in order, into a new document and writes it to w.
//
// A canceled ctx stops the run before anything is written and returns
// ctx.Err(). Write failures are returned with code ErrCodeWriteFailed.
func (r *Runner) Render(ctx context.Context, drawables []svg.Drawable, w io.Writer) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := r.Logger.With("run", runID)
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, runID)
	start := time.Now()

	doc := svg.NewDocument()
	svg.DrawPicture(doc, drawables...)
	logger.Debug("drew figures", "figures", len(drawables), "objects", doc.Len())

	result := &Result{RunID: runID, Objects: doc.Len()}
	if err := ctx.Err(); err != nil {
		result.Duration = time.Since(start)
		hooks.OnRenderComplete(ctx, runID, result.Objects, 0, result.Duration, err)
		return nil, err
	}

	cw := &countingWriter{w: w}
	err := doc.Render(cw)
	result.Bytes = cw.n
	result.Duration = time.Since(start)
	hooks.OnRenderComplete(ctx, runID, result.Objects, result.Bytes, result.Duration, err)
	if err != nil {
		logger.Error("render failed", "bytes", result.Bytes, "err", err)
		return nil, err
	}

	logger.Info("rendered svg",
		"objects", result.Objects,
		"bytes", result.Bytes,
		"duration", result.Duration)
	return result, nil
}
