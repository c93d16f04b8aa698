package scenario

import (
	"fmt"

	"github.com/matzehuels/ldapviz/pkg/diagram"
)

// buildTimeline declares the test sequence: five phases left to right, each
// annotated with its timing budget.
func buildTimeline(p Profile) *diagram.Diagram {
	d := diagram.New("LDAP Monitoring Test Sequence",
		diagram.WithDirection(diagram.LeftToRight))

	steps := []*diagram.Node{
		d.Node(diagram.IconNetwork, "1. TCP Connection\nEstablishment\n(Network Layer)"),
		d.Node(diagram.IconSecurity, "2. TLS Handshake\n& Certificate\n(Security Layer)"),
		d.Node(diagram.IconDirectory, "3. LDAP Bind\nAuthentication\n(Directory Layer)"),
		d.Node(diagram.IconDirectory, "4. Directory Search\nRoot DSE Query\n(Service Layer)"),
		d.Node(diagram.IconMonitoring, "5. Performance\nValidation\n(Monitoring Layer)"),
	}

	stepBudget := fmt.Sprintf("Threshold: <%dms", p.Thresholds.StepMS)
	timings := []*diagram.Node{
		d.Node(diagram.IconMonitoring, fmt.Sprintf("Baseline: <%dms", p.Thresholds.BaselineMS)),
		d.Node(diagram.IconMonitoring, stepBudget),
		d.Node(diagram.IconMonitoring, stepBudget),
		d.Node(diagram.IconMonitoring, stepBudget),
		d.Node(diagram.IconMonitoring, fmt.Sprintf("Total: <%dms", p.Thresholds.TotalMS)),
	}

	transitions := []string{"Success", "Valid Cert", "Auth OK", "Data Retrieved"}
	for i, label := range transitions {
		d.Connect(steps[i], steps[i+1], diagram.Label(label))
	}

	for i, step := range steps {
		d.Connect(step, timings[i], diagram.DottedLine(), diagram.Color("red"))
	}

	return d
}
