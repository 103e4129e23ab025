package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/svgscene/pkg/errors"
)

const testScene = `
[[figure]]
kind = "circle"
center = [10, 20]
radius = 5
fill = "red"

[[figure]]
kind = "text"
position = [1, 2]
font_size = 8
data = "<hi>"
`

const wantSceneSVG = `<?xml version="1.0" encoding="UTF-8" ?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1">
  <circle cx="10" cy="20" r="5" fill="red" />
  <text x="1" y="2" dx="0" dy="0" font-size="8">&lt;hi&gt;</text>
</svg>`

func writeScene(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderToStdout(t *testing.T) {
	scene := writeScene(t, "scene.toml", testScene)

	for _, args := range [][]string{
		{"render", scene},
		{"render", scene, "-o", "-"},
	} {
		t.Run(strings.Join(args[2:], " "), func(t *testing.T) {
			stdout, stderr, err := runCLI(t, args...)
			if err != nil {
				t.Fatalf("render error: %v", err)
			}
			if stdout != wantSceneSVG {
				t.Errorf("stdout =\n%s\nwant\n%s", stdout, wantSceneSVG)
			}
			if strings.Contains(stderr, "Wrote SVG") {
				t.Errorf("file status printed for stdout output:\n%s", stderr)
			}
		})
	}
}

func TestRenderToFile(t *testing.T) {
	scene := writeScene(t, "scene.toml", testScene)
	out := filepath.Join(t.TempDir(), "out.svg")

	stdout, stderr, err := runCLI(t, "render", scene, "-o", out)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty, got %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != wantSceneSVG {
		t.Errorf("file =\n%s\nwant\n%s", data, wantSceneSVG)
	}
	for _, want := range []string{"rendered scene", "scene=scene.toml", "objects=2", "Wrote SVG", out} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestRenderFailureKeepsExistingFile(t *testing.T) {
	scene := writeScene(t, "bad.toml", "[[figure]]\nkind = \"blob\"\n")
	out := filepath.Join(t.TempDir(), "out.svg")
	if err := os.WriteFile(out, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "render", scene, "-o", out)
	if !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Fatalf("render error = %v, want %v", err, errors.ErrCodeInvalidScene)
	}

	data, _ := os.ReadFile(out)
	if string(data) != "previous" {
		t.Errorf("output file was modified: %q", data)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	scene := writeScene(t, "scene.toml", testScene)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing scene", []string{"render", filepath.Join(dir, "missing.toml")}, errors.ErrCodeFileNotFound},
		{"unsupported format", []string{"render", filepath.Join(dir, "scene.yaml")}, errors.ErrCodeInvalidFormat},
		{"output is a directory path", []string{"render", scene, "-o", dir + string(filepath.Separator)}, errors.ErrCodeInvalidPath},
		{"output dir missing", []string{"render", scene, "-o", filepath.Join(dir, "nope", "out.svg")}, errors.ErrCodeWriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestVerboseRenderLogsSceneLoadOnce(t *testing.T) {
	scene := writeScene(t, "scene.toml", testScene)

	_, stderr, err := runCLI(t, "-v", "render", scene)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := strings.Count(stderr, "scene loaded"); got != 1 {
		t.Errorf("scene load logged %d times, want 1:\n%s", got, stderr)
	}
	if strings.Contains(stderr, "loaded scene") {
		t.Errorf("runner logged the load alongside the hook:\n%s", stderr)
	}
}

func TestRenderRequiresOneArg(t *testing.T) {
	if _, _, err := runCLI(t, "render"); err == nil {
		t.Error("render without a scene should fail")
	}
}

func TestRenderEmptyScene(t *testing.T) {
	scene := writeScene(t, "empty.json", `{"figures": []}`)

	stdout, stderr, err := runCLI(t, "render", scene)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasSuffix(stdout, "</svg>") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "no figures") {
		t.Errorf("missing empty-scene warning:\n%s", stderr)
	}
}

func TestDemo(t *testing.T) {
	stdout, _, err := runCLI(t, "demo")
	if err != nil {
		t.Fatalf("demo error: %v", err)
	}
	if got := strings.Count(stdout, "\n  <"); got != 5 {
		t.Errorf("demo has %d objects, want 5:\n%s", got, stdout)
	}
	if !strings.Contains(stdout, `<polyline points="100,20 120,50 80,40 100,20" />`) {
		t.Errorf("demo is missing the triangle:\n%s", stdout)
	}
}

func TestDemoRejectsArgs(t *testing.T) {
	if _, _, err := runCLI(t, "demo", "extra"); err == nil {
		t.Error("demo with arguments should fail")
	}
}

func TestDemoToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.svg")
	if _, _, err := runCLI(t, "demo", "-o", out); err != nil {
		t.Fatalf("demo error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}
