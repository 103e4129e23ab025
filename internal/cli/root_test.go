package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgscene/pkg/observability"
)

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	c.Stdout = &stdout
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := map[string]bool{"render": false, "demo": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.HasPrefix(stdout, appName+" version ") {
		t.Errorf("--version output = %q", stdout)
	}
}

func TestVerboseFlag(t *testing.T) {
	_, stderr, err := runCLI(t, "-v", "demo")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	for _, want := range []string{"starting", "render started", "render complete"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("verbose log missing %q:\n%s", want, stderr)
		}
	}
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := runCLI(t, "demo")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	if strings.Contains(stderr, "render started") {
		t.Errorf("debug output without --verbose:\n%s", stderr)
	}
	if !strings.Contains(stderr, "rendered demo") || !strings.Contains(stderr, "duration=") {
		t.Errorf("missing progress line:\n%s", stderr)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug not logged after SetLogLevel: %q", buf.String())
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := runCLI(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s error: %v", shell, err)
			}
			if !strings.Contains(stdout, appName) {
				t.Errorf("completion script does not mention %s", appName)
			}
		})
	}

	if _, _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}

func TestCompleteSceneFiles(t *testing.T) {
	exts, directive := completeSceneFiles(nil, nil, "")
	if directive != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("directive = %v, want FilterFileExt", directive)
	}
	if strings.Join(exts, ",") != "toml,json" {
		t.Errorf("extensions = %v, want [toml json]", exts)
	}

	if _, directive := completeSceneFiles(nil, []string{"scene.toml"}, ""); directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("second argument directive = %v, want NoFileComp", directive)
	}
}
