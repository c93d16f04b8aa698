package diagram

// Icon names the semantic role of a node. Each role maps to a fixed visual
// treatment (shape and color family) so components of the same kind look
// alike across diagrams. The palette follows the usual cloud-architecture
// convention: orange for compute, red for security, pink for management,
// purple for networking.
type Icon string

// Node roles.
const (
	IconClient      Icon = "client"      // monitoring agent / generic compute
	IconDirectory   Icon = "directory"   // LDAP / directory service
	IconMonitoring  Icon = "monitoring"  // monitoring or metrics service
	IconInspector   Icon = "inspector"   // validation / inspection service
	IconCertificate Icon = "certificate" // certificate authority or manager
	IconSecurity    Icon = "security"    // security validation service
	IconAudit       Icon = "audit"       // audit / compliance service
	IconNetwork     Icon = "network"     // network segment or socket
	IconRouter      Icon = "router"      // router / gateway
	IconFirewall    Icon = "firewall"    // firewall appliance
	IconDNS         Icon = "dns"         // name resolution service
	IconScript      Icon = "script"      // executable transaction script
)

// Node is a single labeled element in a diagram. Nodes are created through
// [Diagram.Node] or [Cluster.Node] and are only meaningful within the
// diagram that declared them.
type Node struct {
	id      string
	owner   *Diagram
	cluster *Cluster // nil for top-level nodes

	Label string
	Icon  Icon
}

// ID returns the node's diagram-scoped identifier (e.g. "n3").
// Identifiers are assigned sequentially in declaration order.
func (n *Node) ID() string { return n.id }

// nodeStyle is the DOT visual treatment for an icon role.
type nodeStyle struct {
	shape string
	fill  string
	font  string
}

var iconStyles = map[Icon]nodeStyle{
	IconClient:      {shape: "box", fill: "#ED7100", font: "white"},
	IconDirectory:   {shape: "box", fill: "#DD344C", font: "white"},
	IconMonitoring:  {shape: "box", fill: "#E7157B", font: "white"},
	IconInspector:   {shape: "box", fill: "#C7131F", font: "white"},
	IconCertificate: {shape: "box", fill: "#BF0816", font: "white"},
	IconSecurity:    {shape: "box", fill: "#DD344C", font: "white"},
	IconAudit:       {shape: "box", fill: "#B0084D", font: "white"},
	IconNetwork:     {shape: "box", fill: "#8C4FFF", font: "white"},
	IconRouter:      {shape: "box", fill: "#6B3FCC", font: "white"},
	IconFirewall:    {shape: "box3d", fill: "#DD344C", font: "white"},
	IconDNS:         {shape: "box", fill: "#8C4FFF", font: "white"},
	IconScript:      {shape: "note", fill: "#F7DF1E", font: "black"},
}

// defaultStyle is used for unrecognized icon roles.
var defaultStyle = nodeStyle{shape: "box", fill: "#EBEBEB", font: "black"}

// style returns the visual treatment for the icon, falling back to a
// neutral grey box for roles outside the known set.
func (i Icon) style() nodeStyle {
	if s, ok := iconStyles[i]; ok {
		return s
	}
	return defaultStyle
}
