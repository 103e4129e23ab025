package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgscene/pkg/errors"
	"github.com/matzehuels/svgscene/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "svgscene"

	// stdoutPath selects standard output for --output.
	stdoutPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
//
// Stdout receives rendered documents. Logs and status lines go to Stderr so
// that piping stdout always yields a clean SVG file.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a new CLI instance that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdout: os.Stdout,
		Stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(logger)
}

// =============================================================================
// Output
// =============================================================================

// openOutput returns the writer for --output. An empty path or "-" selects
// stdout. A file is only created (or truncated) by the first write, so a
// scene that fails to load leaves an existing file untouched. The returned
// close function must be called once writing is done.
func (c *CLI) openOutput(path string) (io.Writer, func() error, error) {
	if !isFileOutput(path) {
		return c.Stdout, func() error { return nil }, nil
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, nil, err
	}
	f := &lazyFile{path: path}
	return f, f.Close, nil
}

// lazyFile creates its file on the first write.
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil {
		f, err := os.Create(l.path)
		if err != nil {
			return 0, err
		}
		l.f = f
	}
	return l.f.Write(p)
}

// Close closes the file if it was created.
func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}

// isFileOutput reports whether path names a file rather than stdout.
func isFileOutput(path string) bool {
	return path != "" && path != stdoutPath
}
