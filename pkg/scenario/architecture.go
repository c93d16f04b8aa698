package scenario

import (
	"github.com/matzehuels/ldapviz/pkg/diagram"
)

// buildArchitecture declares the deployment topology: per-region agent and
// LDAP-server clusters joined through a regional firewall, with every agent
// reporting to the single SaaS control plane.
func buildArchitecture(p Profile) *diagram.Diagram {
	d := diagram.New(p.Product+" LDAP Monitoring Architecture",
		diagram.WithDirection(diagram.TopToBottom))

	saas := d.Node(diagram.IconMonitoring, p.saasLabel())

	type regionNodes struct {
		agents   []*diagram.Node
		firewall *diagram.Node
		servers  []*diagram.Node
	}

	regions := make([]regionNodes, 0, len(p.Regions))
	for _, r := range p.Regions {
		rc := d.Cluster(r.Name + " Region")

		var rn regionNodes
		agents := rc.Cluster("Enterprise Agents")
		for _, id := range r.Agents {
			rn.agents = append(rn.agents, agents.Node(diagram.IconClient, "Agent "+id+"\n(Monitoring Client)"))
		}

		rn.firewall = rc.Node(diagram.IconFirewall, "Corporate Firewall\n"+r.Name)

		servers := rc.Cluster("LDAP Servers")
		for _, host := range r.Servers {
			rn.servers = append(rn.servers, servers.Node(diagram.IconDirectory, host+"\n:636/LDAPS"))
		}

		regions = append(regions, rn)
	}

	// Control plane heartbeats first, then the regional monitoring paths.
	for _, rn := range regions {
		for _, agent := range rn.agents {
			d.Connect(agent, saas,
				diagram.Label("443/HTTPS\nHeartbeat & Config"),
				diagram.DottedLine())
		}
	}
	for _, rn := range regions {
		for _, agent := range rn.agents {
			d.Connect(agent, rn.firewall,
				diagram.Label("636/LDAPS\nMonitoring"),
				diagram.Color("red"))
		}
		d.ConnectAll(rn.firewall, rn.servers, diagram.Color("red"))
	}

	return d
}
