// Package scenario declares the five fixed LDAP monitoring diagrams.
//
// Each [Scenario] pairs a stable name and output basename with a build
// function that produces a [diagram.Diagram] from a [Profile]. The graphs
// are literal: they describe a monitoring concept (agents probing regional
// LDAP servers through corporate firewalls, reporting to a SaaS control
// plane), not live infrastructure. No data is ingested and nothing is
// probed - the output is documentation.
//
// The default profile reproduces the reference environment (three regions,
// two agents and two directory servers each). A TOML profile can override
// region names, agent IDs, hostnames, and latency thresholds without
// touching the diagram structure.
package scenario
