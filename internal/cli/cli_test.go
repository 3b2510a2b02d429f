package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and an empty config directory.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var (
		out    bytes.Buffer
		errOut syncBuffer // shared by the logger and the spinner goroutine
	)
	c := New(&errOut, LogInfo)
	c.Out = &out
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRenderToStdout(t *testing.T) {
	out, _, err := execute(t, "render", "--text", "Hello {World}", "--bg", "plain", "--seed", "1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<svg"), "output %q is not an svg document", out)
	assert.Contains(t, out, `<tspan font-weight="700">World</tspan>`)
	assert.Contains(t, out, `fill="#0d1b2a"`)
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banner.svg")
	out, stderr, err := execute(t, "render", "--text", "a|b", "--align", "center", "-o", path)
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Contains(t, stderr, "Banner rendered")
	assert.Contains(t, stderr, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), `text-anchor="middle"`))
}

func TestRenderRasterProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banner.png")
	_, _, err := execute(t, "render", "--profile", "kuro", "--format", "png", "--seed", "7", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")), "output is not a PNG")
}

func TestRenderRasterWithoutSupport(t *testing.T) {
	out, stderr, err := execute(t, "render", "--format", "png", "--bg", "plain")
	require.NoError(t, err)

	assert.Contains(t, stderr, "no raster output")
	assert.True(t, strings.HasPrefix(out, "<svg"))
}

func TestRenderUnknownProfile(t *testing.T) {
	_, _, err := execute(t, "render", "--profile", "missing")
	require.Error(t, err)
}

func TestThemes(t *testing.T) {
	out, _, err := execute(t, "themes")
	require.NoError(t, err)

	for _, want := range []string{"plain", "sky", "stars", "matrix", "kuro", "galaxy", "generative-maze"} {
		assert.Contains(t, out, want)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], iconDefault+" plain"), "fallback theme is not marked: %q", lines[0])
	assert.False(t, strings.Contains(lines[1], iconDefault))
}

func TestCompletion(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, appName)
}

func TestCompleteFlagValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"themes", []string{"render", "--bg", ""}, []string{"stars\tbackground theme", "galaxy\talias of stars", "neon\talias of kuro"}},
		{"profiles", []string{"render", "--profile", ""}, []string{"classic", "kuro"}},
		{"serve profiles", []string{"serve", "--profile", ""}, []string{"classic", "kuro"}},
		{"formats", []string{"render", "--format", ""}, []string{"svg", "webp\tneeds a raster profile"}},
		{"align", []string{"render", "--align", ""}, []string{"center"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"__complete"}, tt.args...)...)
			require.NoError(t, err)
			lines := strings.Split(out, "\n")
			for _, want := range tt.want {
				assert.Contains(t, lines, want)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, appName+" version: "), "unexpected version output %q", out)
	assert.Contains(t, out, "commit: ")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banner.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
profile = "kuro"

[profiles.kuro]
font_size = 40
colour = "red"
`), 0o644))

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.configPath = path

	cfg, err := c.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "kuro", cfg.Server.Profile)

	p, err := cfg.Active()
	require.NoError(t, err)
	assert.Equal(t, 40, p.FontSize)
	assert.Contains(t, logs.String(), "unknown config key")
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(&bytes.Buffer{}, LogInfo)
	cfg, err := c.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Server.Profile)
}

func TestQueryFromFlagsOnlyChanged(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	cmd := c.renderCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--text", "", "--font-size", "24"}))

	q := queryFromFlags(cmd, renderOpts{fontSize: 24})
	assert.Equal(t, map[string]string{"text": "", "fontSize": "24"}, q)
}
