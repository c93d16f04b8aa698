package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/ldapviz/pkg/diagram"
)

func smallDiagram() *diagram.Diagram {
	d := diagram.New("Test")
	a := d.Node(diagram.IconClient, "a")
	b := d.Node(diagram.IconDirectory, "b")
	d.Connect(a, b, diagram.Label("636/LDAPS"))
	return d
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Format
	}{
		{"empty defaults to png", "", []Format{FormatPNG}},
		{"single format", "svg", []Format{FormatSVG}},
		{"multiple formats", "png,svg,dot", []Format{FormatPNG, FormatSVG, FormatDOT}},
		{"whitespace trimmed", "png, svg", []Format{FormatPNG, FormatSVG}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i, f := range got {
				if f != tt.want[i] {
					t.Errorf("ParseFormats(%q)[%d] = %q, want %q", tt.input, i, f, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []Format
		wantErr bool
	}{
		{"valid png", []Format{FormatPNG}, false},
		{"valid all", []Format{FormatPNG, FormatSVG, FormatDOT}, false},
		{"empty", nil, false},
		{"invalid", []Format{"jpeg"}, true},
		{"mixed valid invalid", []Format{FormatPNG, "gif"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBytesDOT(t *testing.T) {
	data, err := Bytes(context.Background(), smallDiagram(), FormatDOT)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !strings.HasPrefix(string(data), "digraph") {
		t.Errorf("dot output does not start with digraph:\n%s", data)
	}
	if !strings.Contains(string(data), "636/LDAPS") {
		t.Error("edge label missing from dot output")
	}
}

func TestBytesSVG(t *testing.T) {
	data, err := Bytes(context.Background(), smallDiagram(), FormatSVG)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("svg output missing <svg element")
	}
}

func TestBytesPNG(t *testing.T) {
	data, err := Bytes(context.Background(), smallDiagram(), FormatPNG)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("png output missing PNG signature")
	}
}

func TestBytesInvalidDiagram(t *testing.T) {
	other := diagram.New("other")
	stray := other.Node(diagram.IconClient, "stray")

	d := diagram.New("broken")
	a := d.Node(diagram.IconClient, "a")
	d.Connect(a, stray)

	if _, err := Bytes(context.Background(), d, FormatDOT); err == nil {
		t.Error("Bytes accepted a diagram with a foreign edge endpoint")
	}
}

func TestBytesInvalidFormat(t *testing.T) {
	if _, err := Bytes(context.Background(), smallDiagram(), "bmp"); err == nil {
		t.Error("Bytes accepted an unknown format")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	ctx := context.Background()

	paths, err := WriteFiles(ctx, smallDiagram(), dir, "test_diagram", []Format{FormatDOT, FormatSVG})
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	want := []string{
		filepath.Join(dir, "test_diagram.dot"),
		filepath.Join(dir, "test_diagram.svg"),
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, p, want[i])
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("stat %s: %v", p, err)
		}
	}
}

func TestWriteFilesIdempotent(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := WriteFiles(ctx, smallDiagram(), dir, "repeat", []Format{FormatDOT})
	if err != nil {
		t.Fatalf("first WriteFiles: %v", err)
	}
	firstData, err := os.ReadFile(first[0])
	if err != nil {
		t.Fatalf("read first output: %v", err)
	}

	second, err := WriteFiles(ctx, smallDiagram(), dir, "repeat", []Format{FormatDOT})
	if err != nil {
		t.Fatalf("second WriteFiles: %v", err)
	}
	secondData, err := os.ReadFile(second[0])
	if err != nil {
		t.Fatalf("read second output: %v", err)
	}

	if !bytes.Equal(firstData, secondData) {
		t.Error("re-running produced different file content")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("output directory has %d entries, want 1 (overwrite, not duplicate)", len(entries))
	}
}
