package scenario

import (
	"github.com/matzehuels/ldapviz/pkg/diagram"
)

// buildFirewall declares the two outbound rules the monitoring setup needs:
// control plane traffic to the SaaS and LDAPS probes to the directory
// servers, both passing the corporate firewall.
func buildFirewall(p Profile) *diagram.Diagram {
	d := diagram.New("Required Firewall Rules",
		diagram.WithDirection(diagram.LeftToRight))

	sources := d.Cluster("Enterprise Agent Subnets")
	agentSubnet := sources.Node(diagram.IconNetwork, "Agent Networks\n(Per Region)")

	firewall := d.Node(diagram.IconFirewall, "Corporate Firewall")

	destinations := d.Cluster("Allowed Destinations")
	saas := destinations.Node(diagram.IconMonitoring,
		p.Product+" SaaS\n"+p.Domain+"\n443/HTTPS\nOutbound Only")
	ldap := destinations.Node(diagram.IconDirectory,
		"LDAP Directory Servers\n636/LDAPS\nOutbound Only")

	d.Connect(agentSubnet, firewall, diagram.Label("Rule 1: Control Plane"), diagram.Color("blue"))
	d.Connect(firewall, saas, diagram.Label("443/HTTPS"), diagram.Color("blue"))

	d.Connect(agentSubnet, firewall, diagram.Label("Rule 2: LDAP Monitoring"), diagram.Color("red"))
	d.Connect(firewall, ldap, diagram.Label("636/LDAPS"), diagram.Color("red"))

	return d
}
