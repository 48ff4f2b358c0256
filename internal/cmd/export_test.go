package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dallionking/notchbar/internal/geometry"
)

func TestExportFormatFor(t *testing.T) {
	tests := []struct {
		out, flag string
		want      string
		wantErr   bool
	}{
		{"bar.png", "", "png", false},
		{"bar.SVG", "", "svg", false},
		{"bar.out", "png", "png", false},
		{"bar.txt", "", "", true},
		{"bar", "", "", true},
		{"bar.png", "gif", "", true},
	}
	for _, tt := range tests {
		got, err := exportFormatFor(tt.out, tt.flag)
		if (err != nil) != tt.wantErr {
			t.Errorf("exportFormatFor(%q, %q) err = %v, wantErr %v", tt.out, tt.flag, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("exportFormatFor(%q, %q) = %q, want %q", tt.out, tt.flag, got, tt.want)
		}
	}
}

func TestWriteExport(t *testing.T) {
	p := geometry.OutlinePath(150, 300, 64, 120, 38)
	dir := t.TempDir()

	svg := filepath.Join(dir, "bar.svg")
	if err := writeExport(svg, "svg", p, 300, 64, 1, "#4fc1ff"); err != nil {
		t.Fatalf("svg export: %v", err)
	}
	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") || !strings.Contains(string(data), p.String()) {
		t.Errorf("svg output missing document or path:\n%s", data)
	}

	pngPath := filepath.Join(dir, "bar.png")
	if err := writeExport(pngPath, "png", p, 300, 64, 2, "#4fc1ff"); err != nil {
		t.Fatalf("png export: %v", err)
	}
	data, err = os.ReadFile(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("png output does not start with the PNG signature")
	}
}

func TestWriteExportFailureLeavesNoFile(t *testing.T) {
	p := geometry.OutlinePath(150, 300, 64, 120, 38)
	dir := t.TempDir()

	for _, tc := range []struct{ name, format, fill string }{
		{"bad.txt", "txt", "#4fc1ff"},
		{"bad.png", "png", "not-a-colour"},
	} {
		out := filepath.Join(dir, tc.name)
		if err := writeExport(out, tc.format, p, 300, 64, 1, tc.fill); err == nil {
			t.Errorf("%s: export succeeded", tc.name)
		}
		if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("%s: file left behind (stat err %v)", tc.name, err)
		}
	}
}
