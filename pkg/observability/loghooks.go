package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every render event to a logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, or to log.Default() if
// logger is nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnSceneLoaded(_ context.Context, path string, figures int) {
	h.Logger.Debug("scene loaded", "path", path, "figures", figures)
}

func (h *LogHooks) OnRenderStart(_ context.Context, runID string) {
	h.Logger.Debug("render started", "run", runID)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, runID string, objects int, bytes int64, duration time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "run", runID, "objects", objects, "bytes", bytes, "duration", duration, "err", err)
		return
	}
	h.Logger.Debug("render complete", "run", runID, "objects", objects, "bytes", bytes, "duration", duration)
}
