package diagram

import (
	"bytes"
	"fmt"
	"strings"
)

// DOT serializes the diagram to Graphviz DOT format.
//
// Output is deterministic: clusters and their members appear in declaration
// order, free nodes follow, and edges come last in declaration order. Node
// identifiers are the diagram-scoped IDs assigned at declaration time, so
// serializing the same diagram twice yields byte-identical output.
//
// Labels are quoted with Go escaping; embedded newlines become literal \n
// sequences, which Graphviz renders as line breaks.
func (d *Diagram) DOT() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "digraph %q {\n", d.title)
	fmt.Fprintf(&buf, "  rankdir=%s;\n", d.direction)
	fmt.Fprintf(&buf, "  label=%q;\n", d.title)
	buf.WriteString("  labelloc=\"t\";\n")
	buf.WriteString("  fontsize=20;\n")
	buf.WriteString("  pad=0.5;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", margin=\"0.25,0.15\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")

	for _, c := range d.clusters {
		buf.WriteString("\n")
		writeCluster(&buf, c, 1)
	}

	wroteFree := false
	for _, n := range d.nodes {
		if n.cluster != nil {
			continue
		}
		if !wroteFree {
			buf.WriteString("\n")
			wroteFree = true
		}
		writeNode(&buf, n, 1)
	}

	if len(d.edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range d.edges {
		writeEdge(&buf, e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, c *Cluster, depth int) {
	pad := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%ssubgraph %q {\n", pad, c.id)
	fmt.Fprintf(buf, "%s  label=%q;\n", pad, c.label)
	fmt.Fprintf(buf, "%s  style=\"rounded\";\n", pad)
	fmt.Fprintf(buf, "%s  color=\"#888888\";\n", pad)
	fmt.Fprintf(buf, "%s  fontsize=14;\n", pad)

	for _, n := range c.nodes {
		writeNode(buf, n, depth+1)
	}
	for _, child := range c.children {
		writeCluster(buf, child, depth+1)
	}

	fmt.Fprintf(buf, "%s}\n", pad)
}

func writeNode(buf *bytes.Buffer, n *Node, depth int) {
	s := n.Icon.style()
	pad := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%s%q [label=%q, shape=%s, fillcolor=%q, fontcolor=%s];\n",
		pad, n.id, n.Label, s.shape, s.fill, s.font)
}

func writeEdge(buf *bytes.Buffer, e Edge) {
	attrs := make([]string, 0, 4)
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if e.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", e.Color))
		attrs = append(attrs, fmt.Sprintf("fontcolor=%q", e.Color))
	}
	if e.Style != "" && e.Style != Solid {
		attrs = append(attrs, fmt.Sprintf("style=%s", e.Style))
	}

	if len(attrs) == 0 {
		fmt.Fprintf(buf, "  %q -> %q;\n", e.From.id, e.To.id)
		return
	}
	fmt.Fprintf(buf, "  %q -> %q [%s];\n", e.From.id, e.To.id, strings.Join(attrs, ", "))
}
