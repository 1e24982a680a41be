package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

const snapshotJSON = `{
  "nodes": [
    {"id": "d1", "type": "document", "x": 0, "y": 0, "size": 50, "document": {"id": "d1", "type": "csv"}},
    {"id": "m1", "type": "memory", "x": 200, "y": 0, "size": 40, "memory": {"id": "m1", "isLatest": true}}
  ],
  "edges": [
    {"id": "e1", "source": "d1", "target": "m1", "edgeType": "doc-memory", "visualProps": {"opacity": 1}}
  ],
  "viewport": {"panX": 100, "panY": 150, "zoom": 1, "width": 400, "height": 300}
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(snapshotJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	in := writeSnapshot(t)
	outPath := filepath.Join(t.TempDir(), "out.png")

	out, err := execute(t, "render", in, "-o", outPath, "--dpr", "2")
	if err != nil {
		t.Fatalf("render error = %v, output %q", err, out)
	}
	if !strings.Contains(out, "800x600 px") {
		t.Errorf("output = %q, want backing size 800x600", out)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("image size = %dx%d, want 800x600", b.Dx(), b.Dy())
	}
}

func TestHit(t *testing.T) {
	in := writeSnapshot(t)
	tests := []struct {
		x, y string
		want string
	}{
		{"100", "150", "d1"},
		{"300", "150", "m1"},
		{"200", "20", "no node"},
	}
	for _, tt := range tests {
		out, err := execute(t, "hit", in, tt.x, tt.y)
		if err != nil {
			t.Fatalf("hit %s %s error = %v", tt.x, tt.y, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("hit %s %s = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := execute(t, "render", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("render of missing file succeeded")
	}
	in := writeSnapshot(t)
	if _, err := execute(t, "hit", in, "x", "1"); err == nil {
		t.Error("hit with bad coordinate succeeded")
	}
	if _, err := execute(t, "--log-level", "loud", "hit", in, "1", "1"); err == nil {
		t.Error("bad log level accepted")
	}
}
