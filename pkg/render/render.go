// Package render turns diagrams into output artifacts.
//
// Rendering delegates layout and rasterization to Graphviz, embedded
// in-process via [github.com/goccy/go-graphviz] - no external binaries are
// required. The package validates a diagram, serializes it to DOT, and
// renders the requested formats. The "dot" format skips Graphviz entirely
// and returns the raw DOT source.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ldapviz/pkg/diagram"
)

// Format selects an output encoding.
type Format string

// Supported output formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatDOT Format = "dot"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatPNG

var validFormats = map[Format]bool{FormatPNG: true, FormatSVG: true, FormatDOT: true}

// ParseFormats parses a comma-separated format string.
// An empty string yields [DefaultFormat].
func ParseFormats(s string) []Format {
	if s == "" {
		return []Format{DefaultFormat}
	}
	parts := strings.Split(s, ",")
	formats := make([]Format, 0, len(parts))
	for _, p := range parts {
		formats = append(formats, Format(strings.TrimSpace(p)))
	}
	return formats
}

// ValidateFormats checks that all requested formats are supported.
func ValidateFormats(formats []Format) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'png', 'svg', or 'dot')", f)
		}
	}
	return nil
}

// Bytes validates the diagram and renders it in the given format.
// Graphviz failures (missing fonts, malformed DOT) are wrapped and returned;
// nothing is retried.
func Bytes(ctx context.Context, d *diagram.Diagram, format Format) ([]byte, error) {
	if err := ValidateFormats([]Format{format}); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid diagram %q: %w", d.Title(), err)
	}

	dot := d.DOT()
	if format == FormatDOT {
		return []byte(dot), nil
	}
	return renderGraphviz(ctx, dot, format)
}

// WriteFiles renders the diagram in each requested format and writes one
// file per format under dir, named base.<format>. The directory is created
// if absent. Existing files are overwritten, so repeated runs are
// idempotent. Returns the written paths in format order.
func WriteFiles(ctx context.Context, d *diagram.Diagram, dir, base string, formats []Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		data, err := Bytes(ctx, d, f)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, base+"."+string(f))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// renderGraphviz lays out the DOT source via the embedded Graphviz engine
// and encodes the result.
func renderGraphviz(ctx context.Context, dot string, format Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var out graphviz.Format
	switch format {
	case FormatPNG:
		out = graphviz.PNG
	case FormatSVG:
		out = graphviz.SVG
	default:
		return nil, fmt.Errorf("unsupported graphviz format: %s", format)
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, out, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
