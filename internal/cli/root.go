package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgscene/pkg/buildinfo"
	"github.com/matzehuels/svgscene/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The persistent --verbose (-v) flag switches logging to debug level and
// routes render events from the observability hooks into the log.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "svgscene renders scene files to SVG",
		Long:         `svgscene is a CLI tool that turns scene descriptions (circles, polylines, text and composite figures) into standalone SVG documents.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
				observability.SetRenderHooks(observability.NewLogHooks(c.Logger))
			}
			c.SetLogLevel(level)
			c.Logger.Debug("starting", buildinfo.Keyvals()...)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.completionCommand())

	return root
}
