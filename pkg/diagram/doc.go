// Package diagram provides a declarative model for small annotated graphs.
//
// # Overview
//
// A [Diagram] is built imperatively but consumed declaratively: callers
// create labeled nodes inside optional nested clusters, connect them with
// styled directed edges, and hand the finished structure to a renderer.
// All construction happens through a single diagram instance, so node
// identity never leaks across diagrams.
//
// # Usage
//
// Build a diagram, then serialize it to Graphviz DOT:
//
//	d := diagram.New("LDAP Monitoring", diagram.WithDirection(diagram.LR))
//	region := d.Cluster("EMEA Region")
//	agent := region.Node(diagram.IconClient, "Agent ag-123456")
//	server := region.Node(diagram.IconDirectory, "ldap-emea-01.corp.com")
//	d.Connect(agent, server, diagram.Label("636/LDAPS"), diagram.Color("red"))
//	dot := d.DOT()
//
// The DOT output is deterministic: nodes, clusters, and edges are emitted
// in declaration order with sequentially assigned identifiers, so building
// the same diagram twice produces byte-identical output.
//
// # Validation
//
// [Diagram.Validate] checks the structural invariants a renderer relies on:
// every edge endpoint belongs to the diagram being rendered, and cluster
// nesting forms a tree. Renderers call it before serialization.
package diagram
