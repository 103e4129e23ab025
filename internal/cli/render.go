package cli

import (
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgscene/pkg/errors"
	"github.com/matzehuels/svgscene/pkg/pipeline"
	"github.com/matzehuels/svgscene/pkg/shapes"
)

// renderOpts holds the command-line flags shared by render and demo.
type renderOpts struct {
	output string // output file path; empty or "-" writes to stdout
}

// renderCommand creates the render command for scene files.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a TOML or JSON scene file to SVG",
		Long: `Render a scene file to a standalone SVG document.

The scene format follows the file extension (.toml or .json). The document is
written to stdout unless --output names a file.`,
		Example: `  svgscene render examples/demo.toml -o demo.svg
  svgscene render scene.json > scene.svg`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSceneFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout)`)

	return cmd
}

// demoCommand creates the demo command, which renders the built-in picture.
func (c *CLI) demoCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the built-in demo picture (triangle, star, snowman)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout)`)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.writeOutput(opts.output, func(w io.Writer) (*pipeline.Result, error) {
		return c.newRunner(logger).RenderFile(ctx, path, w)
	})
	if err != nil {
		return err
	}

	prog.done("rendered scene", "scene", filepath.Base(path), "objects", result.Objects)
	c.report(opts.output, result)
	return nil
}

func (c *CLI) runDemo(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.writeOutput(opts.output, func(w io.Writer) (*pipeline.Result, error) {
		return c.newRunner(logger).Render(ctx, shapes.Demo(), w)
	})
	if err != nil {
		return err
	}

	prog.done("rendered demo", "objects", result.Objects)
	c.report(opts.output, result)
	return nil
}

// writeOutput opens the output, runs render against it and closes it.
// A failed close is reported as a write failure.
func (c *CLI) writeOutput(output string, render func(io.Writer) (*pipeline.Result, error)) (*pipeline.Result, error) {
	w, closeFn, err := c.openOutput(output)
	if err != nil {
		return nil, err
	}
	result, err := render(w)
	if cerr := closeFn(); cerr != nil && err == nil {
		err = errors.Wrap(errors.ErrCodeWriteFailed, cerr, "close %s", output)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// report prints the status lines for a finished render to stderr. Nothing is
// printed when the document went to stdout, except a warning for an empty
// picture.
func (c *CLI) report(output string, result *pipeline.Result) {
	if result.Objects == 0 {
		printWarning(c.Stderr, "scene has no figures; wrote an empty document")
	}
	if !isFileOutput(output) {
		return
	}
	printSuccess(c.Stderr, "Wrote SVG")
	printFile(c.Stderr, output)
	printStats(c.Stderr, result.Objects, result.Bytes, result.Duration)
}
