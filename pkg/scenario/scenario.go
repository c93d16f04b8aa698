package scenario

import (
	"github.com/matzehuels/ldapviz/pkg/diagram"
)

// Scenario is one of the fixed diagrams this tool produces.
type Scenario struct {
	// Name is the stable CLI identifier (e.g. "architecture").
	Name string
	// Title is the rendered diagram caption.
	Title string
	// Basename is the output filename without directory or extension,
	// fixed so downstream documentation can link to the images.
	Basename string
	// Summary is a one-line description for listings.
	Summary string
	// Build constructs the diagram from a profile. Builders never fail:
	// profiles are validated before they get here, and the graphs are
	// literal.
	Build func(Profile) *diagram.Diagram
}

// All returns the scenarios in their fixed generation order.
func All() []Scenario {
	return []Scenario{
		{
			Name:     "architecture",
			Title:    "LDAP Monitoring Architecture",
			Basename: "ldap_monitoring_architecture",
			Summary:  "regional agents probing LDAP servers through firewalls",
			Build:    buildArchitecture,
		},
		{
			Name:     "coverage",
			Title:    "LDAP Monitoring Coverage - Multi-Layer Validation",
			Basename: "ldap_monitoring_coverage",
			Summary:  "four validation layers from TCP connect to SLA tracking",
			Build:    buildCoverage,
		},
		{
			Name:     "matrix",
			Title:    "LDAP Monitoring Validation Matrix",
			Basename: "validation_matrix",
			Summary:  "per-category checks fanned out from the validation service",
			Build:    buildMatrix,
		},
		{
			Name:     "timeline",
			Title:    "LDAP Monitoring Test Sequence",
			Basename: "monitoring_timeline",
			Summary:  "the five test phases with their timing budgets",
			Build:    buildTimeline,
		},
		{
			Name:     "firewall",
			Title:    "Required Firewall Rules",
			Basename: "firewall_rules",
			Summary:  "outbound rules needed between agents and destinations",
			Build:    buildFirewall,
		},
	}
}

// ByName looks up a scenario by its CLI identifier.
func ByName(name string) (Scenario, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Names returns the scenario identifiers in generation order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// connectChain links nodes sequentially with a shared color, labeling only
// the first hop. This is the layer-chain pattern used by the coverage
// diagram.
func connectChain(d *diagram.Diagram, firstLabel, color string, nodes ...*diagram.Node) {
	for i := 0; i+1 < len(nodes); i++ {
		opts := []diagram.EdgeOption{diagram.Color(color)}
		if i == 0 && firstLabel != "" {
			opts = append(opts, diagram.Label(firstLabel))
		}
		d.Connect(nodes[i], nodes[i+1], opts...)
	}
}
