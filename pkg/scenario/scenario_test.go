package scenario

import (
	"strings"
	"testing"

	"github.com/matzehuels/ldapviz/pkg/diagram"
)

func TestAllOrder(t *testing.T) {
	wantNames := []string{"architecture", "coverage", "matrix", "timeline", "firewall"}
	wantBasenames := []string{
		"ldap_monitoring_architecture",
		"ldap_monitoring_coverage",
		"validation_matrix",
		"monitoring_timeline",
		"firewall_rules",
	}

	all := All()
	if len(all) != 5 {
		t.Fatalf("All() returned %d scenarios, want 5", len(all))
	}
	for i, s := range all {
		if s.Name != wantNames[i] {
			t.Errorf("scenario %d name = %q, want %q", i, s.Name, wantNames[i])
		}
		if s.Basename != wantBasenames[i] {
			t.Errorf("scenario %d basename = %q, want %q", i, s.Basename, wantBasenames[i])
		}
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("timeline"); !ok {
		t.Error("ByName(timeline) not found")
	}
	if _, ok := ByName("nonsense"); ok {
		t.Error("ByName(nonsense) unexpectedly found")
	}
}

func TestBuildAll(t *testing.T) {
	tests := []struct {
		name          string
		wantNodes     int
		wantEdges     int
		wantClusters  int
		wantDirection diagram.Direction
	}{
		{"architecture", 16, 18, 3, diagram.TopToBottom},
		{"coverage", 19, 18, 4, diagram.TopToBottom},
		{"matrix", 13, 12, 4, diagram.TopToBottom},
		{"timeline", 10, 9, 0, diagram.LeftToRight},
		{"firewall", 4, 4, 2, diagram.LeftToRight},
	}

	p := DefaultProfile()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := ByName(tt.name)
			if !ok {
				t.Fatalf("scenario %q not registered", tt.name)
			}
			d := s.Build(p)

			if err := d.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if got := d.NodeCount(); got != tt.wantNodes {
				t.Errorf("NodeCount() = %d, want %d", got, tt.wantNodes)
			}
			if got := d.EdgeCount(); got != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", got, tt.wantEdges)
			}
			if got := len(d.Clusters()); got != tt.wantClusters {
				t.Errorf("Clusters() = %d, want %d", got, tt.wantClusters)
			}
			if got := d.Direction(); got != tt.wantDirection {
				t.Errorf("Direction() = %q, want %q", got, tt.wantDirection)
			}
		})
	}
}

func TestArchitectureTopology(t *testing.T) {
	d := buildArchitecture(DefaultProfile())

	regions := d.Clusters()
	if len(regions) != 3 {
		t.Fatalf("regional clusters = %d, want 3", len(regions))
	}

	wantRegions := []string{"EMEA Region", "AMER Region", "APAC Region"}
	for i, rc := range regions {
		if rc.Label() != wantRegions[i] {
			t.Errorf("region %d = %q, want %q", i, rc.Label(), wantRegions[i])
		}

		sub := rc.Clusters()
		if len(sub) != 2 {
			t.Fatalf("region %q has %d subclusters, want 2", rc.Label(), len(sub))
		}
		if got := len(sub[0].Nodes()); got != 2 {
			t.Errorf("region %q agents = %d, want 2", rc.Label(), got)
		}
		if got := len(sub[1].Nodes()); got != 2 {
			t.Errorf("region %q LDAP servers = %d, want 2", rc.Label(), got)
		}
		if got := len(rc.Nodes()); got != 1 {
			t.Errorf("region %q direct nodes = %d, want 1 (the firewall)", rc.Label(), got)
		}
	}

	// Every agent heartbeats to the single SaaS node.
	saas := d.Nodes()[0]
	if saas.Icon != diagram.IconMonitoring {
		t.Fatalf("first node icon = %q, want monitoring service", saas.Icon)
	}
	heartbeats := 0
	for _, e := range d.Edges() {
		if e.To == saas {
			heartbeats++
			if e.Style != diagram.Dotted {
				t.Error("heartbeat edge is not dotted")
			}
		}
	}
	if heartbeats != 6 {
		t.Errorf("heartbeat edges = %d, want 6", heartbeats)
	}
}

func TestBuildDeterministic(t *testing.T) {
	p := DefaultProfile()
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			if s.Build(p).DOT() != s.Build(p).DOT() {
				t.Error("two builds produced different DOT output")
			}
		})
	}
}

func TestProfileLabelsFlowThrough(t *testing.T) {
	p := DefaultProfile()
	p.Product = "ExampleMon"
	p.Domain = "*.examplemon.io"
	p.Script = "probe.js"

	arch := buildArchitecture(p).DOT()
	if !strings.Contains(arch, "ExampleMon SaaS") {
		t.Error("architecture does not use the profile product name")
	}

	fw := buildFirewall(p).DOT()
	if !strings.Contains(fw, "*.examplemon.io") {
		t.Error("firewall rules do not use the profile domain")
	}

	cov := buildCoverage(p).DOT()
	if !strings.Contains(cov, "probe.js\\nTransaction Script") {
		t.Error("coverage does not use the profile script name")
	}
}
