package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dadaauditux/ux-audit-tool/internal/audit"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	p := filepath.Join(dir, "screen.png")
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return p
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(BuildInfo{Version: "1.2.3", BuildTime: "today", GitCommit: "abc123"})
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAuditCommand_WithWords(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, 200, 100)
	words := filepath.Join(dir, "words.json")
	body := `[{"text":"tiny","x0":10,"y0":10,"x1":60,"y1":20},{"text":"Title","x0":10,"y0":50,"x1":90,"y1":70}]`
	if err := os.WriteFile(words, []byte(body), 0o600); err != nil {
		t.Fatalf("write words: %v", err)
	}

	out, _, err := run(t, "audit", img, "--words", words, "--log-level", "error")
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	var report audit.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not a report: %v\n%s", err, out)
	}
	if len(report.TextSize) != 1 {
		t.Errorf("TextSize: got %d, want 1", len(report.TextSize))
	}
}

func TestAuditCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, 20, 20)

	tests := []struct {
		name string
		args []string
	}{
		{"no image argument", []string{"audit"}},
		{"missing image", []string{"audit", filepath.Join(dir, "nope.png")}},
		{"missing words file", []string{"audit", img, "--words", filepath.Join(dir, "nope.json")}},
		{"bad log level", []string{"audit", img, "--log-level", "loud"}},
		{"missing config", []string{"audit", img, "--config", filepath.Join(dir, "nope.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestAuditCommand_ConfigThresholds(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, 200, 100)
	words := filepath.Join(dir, "words.json")
	if err := os.WriteFile(words, []byte(`[{"text":"label","x0":10,"y0":40,"x1":60,"y1":58}]`), 0o600); err != nil {
		t.Fatalf("write words: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("thresholds:\n  min_text_px: 24\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := run(t, "audit", img, "--words", words, "--config", cfgPath)
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	var report audit.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not a report: %v", err)
	}
	if len(report.TextSize) != 1 {
		t.Errorf("18px text should fail the configured 24px minimum, got %d issues", len(report.TextSize))
	}
}

func TestMCPCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(BuildInfo{Version: "1.2.3"})
	cmd.SetArgs([]string{"mcp"})
	cmd.SetIn(strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("mcp failed: %v", err)
	}
	if !strings.Contains(stdout.String(), `"version":"1.2.3"`) {
		t.Errorf("initialize response should carry the version: %s", stdout.String())
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	first := strings.SplitN(out, "\n", 2)[0]
	if first != "ux-audit 1.2.3 (commit=abc123, built=today)" {
		t.Errorf("got %q", first)
	}
}
