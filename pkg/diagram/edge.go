package diagram

// LineStyle selects how an edge is drawn.
type LineStyle string

const (
	// Solid is the default edge style.
	Solid LineStyle = "solid"
	// Dotted marks low-frequency or out-of-band flows (heartbeats, timing
	// annotations).
	Dotted LineStyle = "dotted"
)

// Edge is a directed connection between two nodes of the same diagram.
// Label, Color, and Style are display attributes only.
type Edge struct {
	From  *Node
	To    *Node
	Label string
	Color string
	Style LineStyle
}

// EdgeOption configures an edge declared via [Diagram.Connect].
type EdgeOption func(*Edge)

// Label annotates the edge with display text (protocol, port, flow meaning).
func Label(s string) EdgeOption {
	return func(e *Edge) { e.Label = s }
}

// Color sets the edge stroke color. Any Graphviz color name or hex value
// is accepted; the label is tinted to match.
func Color(s string) EdgeOption {
	return func(e *Edge) { e.Color = s }
}

// WithStyle sets the line style explicitly.
func WithStyle(s LineStyle) EdgeOption {
	return func(e *Edge) { e.Style = s }
}

// DottedLine draws the edge dotted. Shorthand for WithStyle(Dotted).
func DottedLine() EdgeOption {
	return func(e *Edge) { e.Style = Dotted }
}
