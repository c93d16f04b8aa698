package scenario

import (
	"fmt"

	"github.com/matzehuels/ldapviz/pkg/diagram"
)

// buildMatrix declares the validation matrix: the validation service fanned
// out to every check it performs, grouped and color-coded by category.
func buildMatrix(p Profile) *diagram.Diagram {
	d := diagram.New("LDAP Monitoring Validation Matrix",
		diagram.WithDirection(diagram.TopToBottom))

	network := d.Cluster("Network Validation ✓")
	netItems := []*diagram.Node{
		network.Node(diagram.IconNetwork, "TCP Port 636\nReachability"),
		network.Node(diagram.IconFirewall, "Firewall Rule\nCompliance"),
		network.Node(diagram.IconMonitoring, "Network Latency\nMeasurement"),
	}

	security := d.Cluster("Security Validation ✓")
	secItems := []*diagram.Node{
		security.Node(diagram.IconCertificate, "Certificate\nExpiry Check"),
		security.Node(diagram.IconCertificate, "CA Chain\nValidation"),
		security.Node(diagram.IconSecurity, "TLS 1.2+\nEnforcement"),
	}

	service := d.Cluster("Service Validation ✓")
	svcItems := []*diagram.Node{
		service.Node(diagram.IconDirectory, "Authentication\nBind Test"),
		service.Node(diagram.IconDirectory, "Directory\nSearch Query"),
		service.Node(diagram.IconInspector, "Protocol\nCompliance"),
	}

	performance := d.Cluster("Performance Validation ✓")
	perfItems := []*diagram.Node{
		performance.Node(diagram.IconMonitoring, fmt.Sprintf("Response Time\n<%dms", p.Thresholds.StepMS)),
		performance.Node(diagram.IconMonitoring, "Availability\n"+p.Thresholds.Availability),
		performance.Node(diagram.IconMonitoring, "Latency\nMonitoring"),
	}

	monitor := d.Node(diagram.IconMonitoring, p.Script+"\nValidation Service")

	d.ConnectAll(monitor, netItems, diagram.Color("blue"))
	d.ConnectAll(monitor, secItems, diagram.Color("green"))
	d.ConnectAll(monitor, svcItems, diagram.Color("orange"))
	d.ConnectAll(monitor, perfItems, diagram.Color("purple"))

	return d
}
