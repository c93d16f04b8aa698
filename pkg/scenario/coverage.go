package scenario

import (
	"fmt"

	"github.com/matzehuels/ldapviz/pkg/diagram"
)

// buildCoverage declares the four validation layers a single transaction
// exercises, each as a color-coded chain fed from the monitoring script.
func buildCoverage(p Profile) *diagram.Diagram {
	d := diagram.New("LDAP Monitoring Coverage - Multi-Layer Validation",
		diagram.WithDirection(diagram.TopToBottom))

	agent := d.Node(diagram.IconClient, p.Product+"\nEnterprise Agent\n(Monitoring Client)")
	script := d.Node(diagram.IconScript, p.Script+"\nTransaction Script")

	network := d.Cluster("Layer 1: Network Connectivity")
	tcpCheck := network.Node(diagram.IconNetwork, "TCP Socket\nConnection")
	firewallCheck := network.Node(diagram.IconFirewall, "Firewall\nRule Validation")
	routingCheck := network.Node(diagram.IconRouter, "Network Path\nIntegrity")
	networkMetrics := network.Node(diagram.IconMonitoring,
		"Network Metrics:\n• Connection Time\n• Routing Latency\n• Packet Loss")

	security := d.Cluster("Layer 2: Security & Encryption")
	tlsHandshake := security.Node(diagram.IconSecurity, "TLS Handshake\nValidation")
	certValidation := security.Node(diagram.IconCertificate, "Certificate Chain\nVerification")
	protocolCheck := security.Node(diagram.IconSecurity, "Protocol Compliance\nTLS 1.2+")
	securityMetrics := security.Node(diagram.IconSecurity,
		"Security Metrics:\n• Certificate Expiry\n• TLS Version\n• Cipher Strength")

	service := d.Cluster("Layer 3: Application Service")
	bindOp := service.Node(diagram.IconDirectory, "LDAP Bind\nAuthentication")
	searchOp := service.Node(diagram.IconDirectory, "Directory Search\nRoot DSE Query")
	protocolCompliance := service.Node(diagram.IconInspector, "LDAPv3 Protocol\nCompliance")
	serviceMetrics := service.Node(diagram.IconInspector,
		"Service Metrics:\n• Bind Success Rate\n• Search Response\n• Error Codes")

	performance := d.Cluster("Layer 4: Performance Monitoring")
	responseTime := performance.Node(diagram.IconMonitoring, "Response Time\nMonitoring")
	thresholdCheck := performance.Node(diagram.IconInspector, "Threshold\nValidation")
	slaCompliance := performance.Node(diagram.IconAudit, "SLA Compliance\nTracking")
	performanceMetrics := performance.Node(diagram.IconMonitoring,
		fmt.Sprintf("Performance Metrics:\n• <%dms Threshold\n• %s Availability\n• Regional Latency",
			p.Thresholds.StepMS, p.Thresholds.Availability))

	server := d.Node(diagram.IconDirectory, "LDAP Server\n:636/LDAPS")

	d.Connect(agent, script, diagram.Label("Execute"))
	d.Connect(script, server, diagram.Label("Test"))

	connectChain(d, "1. TCP Connect", "blue", script, tcpCheck, firewallCheck, routingCheck, networkMetrics)
	connectChain(d, "2. TLS Handshake", "green", script, tlsHandshake, certValidation, protocolCheck, securityMetrics)
	connectChain(d, "3. LDAP Operations", "orange", script, bindOp, searchOp, protocolCompliance, serviceMetrics)
	connectChain(d, "4. Performance Analysis", "purple", script, responseTime, thresholdCheck, slaCompliance, performanceMetrics)

	return d
}
