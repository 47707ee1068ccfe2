package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeFile(t, "wheel.toml", `
size = 512
inner_radius = 200
outer_radius = 256
triangle_radius = 170
marker_radius = 8
caption = true
verbose = false
`)
	got, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig() error = %v", err)
	}
	want := config{
		Size:           512,
		InnerRadius:    200,
		OuterRadius:    256,
		TriangleRadius: 170,
		MarkerRadius:   8,
		Caption:        true,
	}
	if got != want {
		t.Errorf("readConfig() = %+v, want %+v", got, want)
	}
	if n := len(got.wheelOptions()); n != 4 {
		t.Errorf("wheelOptions() returned %d options, want 4", n)
	}
}

func TestReadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "size = 256\nradius = 3\n", "unknown keys: radius"},
		{"bad type", "size = \"big\"\n", "config"},
		{"syntax", "size = = 1\n", "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readConfig(writeFile(t, "bad.toml", tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("readConfig() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}

	if _, err := readConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("readConfig() of a missing file should fail")
	}
}

func TestEmptyConfigKeepsDefaults(t *testing.T) {
	if opts := (config{}).wheelOptions(); len(opts) != 0 {
		t.Errorf("wheelOptions() = %d options, want none", len(opts))
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		text, to string
		want     string
	}{
		{"red", "hex", "#ff0000"},
		{"red", "HEX", "#ff0000"},
		{"hsl(120, 100%, 50%)", "rgb", "rgb(0,255,0)"},
		{"#ff000080", "rgba", "rgba(255,0,0,0.501961)"},
		{"#ff000080", "rgb", "rgb(255,0,0)"},
		{"red", "hsv", "hsv(0,100%,100%)"},
		{"#00f", "hsla", "hsl(240,100%,50%)"},
		{"rgba(0, 0, 255, 0.5)", "hsba", "hsva(240,100%,100%,0.5)"},
		{"not a color", "hex", "#808080"},
	}
	for _, tt := range tests {
		t.Run(tt.text+"->"+tt.to, func(t *testing.T) {
			got, err := convert(tt.text, tt.to)
			if err != nil {
				t.Fatalf("convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{"no command", nil, 2, "", "missing command"},
		{"unknown command", []string{"paint"}, 2, "", "unknown command"},
		{"convert", []string{"convert", "-to", "rgb", "teal"}, 0, "rgb(0,128,128)\n", ""},
		{"convert joins args", []string{"convert", "-to", "hex", "rgb(255,", "0,", "0)"}, 0, "#ff0000\n", ""},
		{"convert missing color", []string{"convert"}, 2, "", "missing COLOR"},
		{"convert bad target", []string{"convert", "-to", "cmyk", "red"}, 2, "", "unknown color space"},
		{"convert bad flag", []string{"convert", "-x", "red"}, 1, "", "flag provided but not defined"},
		{"names", []string{"names"}, 0, "rebeccapurple", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != tt.code {
				t.Errorf("run() = %d, want %d (stderr: %s)", code, tt.code, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.stdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.stdout)
			}
			if !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestConvertVerboseLogsFallback(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"convert", "-v", "nonsense"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "#808080\n" {
		t.Errorf("stdout = %q, want %q", got, "#808080\n")
	}
	if !strings.Contains(stderr.String(), "level=WARN") {
		t.Errorf("stderr = %q, want a warning", stderr.String())
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	profile := writeFile(t, "small.toml", "size = 128\ncaption = true\n")
	out := filepath.Join(dir, "wheel.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{"render", "-config", profile, "-size", "64", "-output", out, "orange"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if want := "#ffa500 saved to " + out + " (64x64)"; !strings.Contains(stdout.String(), want) {
		t.Errorf("stdout = %q, want it to contain %q", stdout.String(), want)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	// The flag overrides the profile size; the caption comes from the profile.
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() <= 64 {
		t.Errorf("image bounds = %v, want 64 wide with a caption strip", b)
	}
}

func TestRenderInvalidProfile(t *testing.T) {
	profile := writeFile(t, "bad.toml", "inner_radius = 200\nouter_radius = 100\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"render", "-config", profile, "-output", filepath.Join(t.TempDir(), "x.png"), "red"}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "invalid geometry") {
		t.Errorf("stderr = %q, want invalid geometry error", stderr.String())
	}
}
