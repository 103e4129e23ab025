// Package pipeline turns scenes into SVG documents.
//
// This package implements the load → draw → render pipeline used by the CLI.
// Keeping it here gives every entry point the same logging, run IDs and
// observability events.
//
// # Architecture
//
// A run has three steps:
//
//  1. Load: decode a scene file into figures (see package scene)
//  2. Draw: let every figure add its primitives to a fresh svg.Document
//  3. Render: write the document to the output
//
// Each run is tagged with a random run ID that appears in every log line and
// hook event of that run.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.RenderFile(ctx, "scene.toml", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Objects, "objects,", result.Bytes, "bytes")
//
// Drawables built in code skip the load step:
//
//	result, err := runner.Render(ctx, shapes.Demo(), w)
package pipeline

import (
	"io"
	"time"
)

// Result describes a finished run.
type Result struct {
	RunID    string        // Random ID shared by the run's log lines and hook events
	Objects  int           // Primitive objects in the document
	Bytes    int64         // Bytes written to the output
	Duration time.Duration // Wall time of the draw and render steps
}

// countingWriter counts the bytes accepted by the wrapped writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
