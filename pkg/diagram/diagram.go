package diagram

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEndpoint is returned by [Diagram.Validate] when an edge has a
	// nil source or target. Edges must connect two declared nodes.
	ErrNilEndpoint = errors.New("edge endpoint must not be nil")

	// ErrForeignNode is returned by [Diagram.Validate] when an edge
	// references a node declared in a different diagram. Node identity is
	// scoped to the diagram that created it.
	ErrForeignNode = errors.New("edge references node from another diagram")

	// ErrForeignCluster is returned by [Diagram.Validate] when the cluster
	// hierarchy contains a cluster owned by a different diagram.
	ErrForeignCluster = errors.New("cluster belongs to another diagram")

	// ErrClusterCycle is returned by [Diagram.Validate] when cluster
	// nesting does not form a tree. Every cluster must appear exactly once
	// in the hierarchy.
	ErrClusterCycle = errors.New("cluster nesting contains a cycle")
)

// Direction controls the primary layout axis of a diagram.
type Direction string

const (
	// TopToBottom lays ranks out vertically (Graphviz rankdir=TB).
	TopToBottom Direction = "TB"
	// LeftToRight lays ranks out horizontally (Graphviz rankdir=LR).
	LeftToRight Direction = "LR"
)

// Diagram is a named collection of clusters, nodes, and directed edges.
// It records declaration order so serialization is deterministic.
//
// The zero value is not usable - use [New]. A Diagram is not safe for
// concurrent use, but diagrams never share state so concurrent builds of
// separate diagrams are fine.
type Diagram struct {
	title     string
	direction Direction

	nodes    []*Node    // all nodes, declaration order
	edges    []Edge     // declaration order
	clusters []*Cluster // top-level only; nested clusters hang off parents

	nextNode    int
	nextCluster int
}

// Option configures a [Diagram] at construction time.
type Option func(*Diagram)

// WithDirection sets the layout direction. The default is [TopToBottom].
func WithDirection(dir Direction) Option {
	return func(d *Diagram) { d.direction = dir }
}

// New creates an empty diagram with the given title.
func New(title string, opts ...Option) *Diagram {
	d := &Diagram{title: title, direction: TopToBottom}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Title returns the diagram title.
func (d *Diagram) Title() string { return d.title }

// Direction returns the layout direction.
func (d *Diagram) Direction() Direction { return d.direction }

// NodeCount returns the number of declared nodes.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of declared edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// Nodes returns all nodes in declaration order.
// The returned slice is shared with the diagram; treat it as read-only.
func (d *Diagram) Nodes() []*Node { return d.nodes }

// Edges returns all edges in declaration order.
// The returned slice is shared with the diagram; treat it as read-only.
func (d *Diagram) Edges() []Edge { return d.edges }

// Clusters returns the top-level clusters in declaration order.
func (d *Diagram) Clusters() []*Cluster { return d.clusters }

// Node declares a node at the top level of the diagram, outside any cluster.
// The icon selects the node's visual role; the label is free text and may
// contain newlines for multi-line rendering.
func (d *Diagram) Node(icon Icon, label string) *Node {
	return d.newNode(nil, icon, label)
}

// Cluster declares a new top-level cluster with the given display label.
func (d *Diagram) Cluster(label string) *Cluster {
	return d.newCluster(nil, label)
}

// Connect declares a directed edge from one node to another.
// Both endpoints must have been declared on this diagram; Validate reports
// violations before rendering.
func (d *Diagram) Connect(from, to *Node, opts ...EdgeOption) {
	e := Edge{From: from, To: to, Style: Solid}
	for _, opt := range opts {
		opt(&e)
	}
	d.edges = append(d.edges, e)
}

// ConnectAll declares one edge from a single source to each target in order,
// all carrying the same options. This mirrors the common fan-out pattern of
// one upstream component feeding a group of peers.
func (d *Diagram) ConnectAll(from *Node, targets []*Node, opts ...EdgeOption) {
	for _, to := range targets {
		d.Connect(from, to, opts...)
	}
}

// Validate checks the structural invariants renderers depend on:
//
//  1. Every edge has non-nil endpoints declared on this diagram
//  2. Cluster nesting forms a tree (each cluster appears exactly once)
//  3. Every cluster in the hierarchy is owned by this diagram
//
// Returns ErrNilEndpoint, ErrForeignNode, ErrForeignCluster, or
// ErrClusterCycle accordingly, wrapped with positional context.
func (d *Diagram) Validate() error {
	for i, e := range d.edges {
		if e.From == nil || e.To == nil {
			return fmt.Errorf("edge %d: %w", i, ErrNilEndpoint)
		}
		if e.From.owner != d {
			return fmt.Errorf("edge %d (%q): %w", i, e.From.Label, ErrForeignNode)
		}
		if e.To.owner != d {
			return fmt.Errorf("edge %d (%q): %w", i, e.To.Label, ErrForeignNode)
		}
	}

	seen := make(map[*Cluster]bool)
	for _, c := range d.clusters {
		if err := d.validateCluster(c, seen); err != nil {
			return err
		}
	}
	return nil
}

func (d *Diagram) validateCluster(c *Cluster, seen map[*Cluster]bool) error {
	if seen[c] {
		return fmt.Errorf("cluster %q: %w", c.label, ErrClusterCycle)
	}
	if c.owner != d {
		return fmt.Errorf("cluster %q: %w", c.label, ErrForeignCluster)
	}
	seen[c] = true
	for _, child := range c.children {
		if err := d.validateCluster(child, seen); err != nil {
			return err
		}
	}
	return nil
}

func (d *Diagram) newNode(parent *Cluster, icon Icon, label string) *Node {
	d.nextNode++
	n := &Node{
		id:      fmt.Sprintf("n%d", d.nextNode),
		owner:   d,
		cluster: parent,
		Icon:    icon,
		Label:   label,
	}
	d.nodes = append(d.nodes, n)
	if parent != nil {
		parent.nodes = append(parent.nodes, n)
	}
	return n
}

func (d *Diagram) newCluster(parent *Cluster, label string) *Cluster {
	c := &Cluster{
		id:     fmt.Sprintf("cluster_%d", d.nextCluster),
		owner:  d,
		parent: parent,
		label:  label,
	}
	d.nextCluster++
	if parent != nil {
		parent.children = append(parent.children, c)
	} else {
		d.clusters = append(d.clusters, c)
	}
	return c
}
