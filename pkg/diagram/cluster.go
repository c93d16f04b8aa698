package diagram

// Cluster is a named visual grouping of nodes and nested clusters.
// Clusters affect layout containment only; they carry no semantics beyond
// the rendered border and caption. Nesting forms a tree rooted at the
// diagram's top-level clusters.
type Cluster struct {
	id     string
	owner  *Diagram
	parent *Cluster

	label    string
	nodes    []*Node
	children []*Cluster
}

// Label returns the cluster's display caption.
func (c *Cluster) Label() string { return c.label }

// Parent returns the enclosing cluster, or nil for top-level clusters.
func (c *Cluster) Parent() *Cluster { return c.parent }

// Nodes returns the nodes declared directly inside this cluster,
// in declaration order. Nodes of nested clusters are not included.
func (c *Cluster) Nodes() []*Node { return c.nodes }

// Clusters returns the directly nested clusters in declaration order.
func (c *Cluster) Clusters() []*Cluster { return c.children }

// Node declares a node inside this cluster.
func (c *Cluster) Node(icon Icon, label string) *Node {
	return c.owner.newNode(c, icon, label)
}

// Cluster declares a cluster nested inside this one.
func (c *Cluster) Cluster(label string) *Cluster {
	return c.owner.newCluster(c, label)
}
