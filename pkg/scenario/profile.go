package scenario

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNoRegions is returned by [Profile.Validate] when the profile
	// declares no regions. Every diagram needs at least one.
	ErrNoRegions = errors.New("profile must declare at least one region")

	// ErrEmptyRegion is returned by [Profile.Validate] when a region is
	// missing its name, agents, or servers.
	ErrEmptyRegion = errors.New("region must have a name, agents, and servers")
)

// Profile parameterizes the labels used by the scenario builders.
// It changes what the diagrams say, never their structure: the same
// clusters, node roles, and edges are produced for any valid profile.
type Profile struct {
	// Product is the monitoring vendor name used in titles and SaaS labels.
	Product string `toml:"product"`
	// Domain is the SaaS endpoint pattern shown in the firewall diagram.
	Domain string `toml:"domain"`
	// Script is the transaction script executed by the agents.
	Script string `toml:"script"`

	Regions    []Region   `toml:"regions"`
	Thresholds Thresholds `toml:"thresholds"`
}

// Region describes one monitored region: its agents and directory servers.
type Region struct {
	Name    string   `toml:"name"`
	Agents  []string `toml:"agents"`  // agent IDs, e.g. "ag-123456"
	Servers []string `toml:"servers"` // LDAPS hostnames
}

// Thresholds holds the latency and availability targets quoted in the
// coverage, matrix, and timeline diagrams.
type Thresholds struct {
	BaselineMS   int    `toml:"baseline_ms"`
	StepMS       int    `toml:"step_ms"`
	TotalMS      int    `toml:"total_ms"`
	Availability string `toml:"availability"`
}

// DefaultProfile returns the reference environment: three regions with two
// agents and two LDAP servers each, standard thresholds.
func DefaultProfile() Profile {
	return Profile{
		Product: "ThousandEyes",
		Domain:  "*.thousandeyes.com",
		Script:  "ldap-monitor.js",
		Regions: []Region{
			{
				Name:    "EMEA",
				Agents:  []string{"ag-123456", "ag-123457"},
				Servers: []string{"ldap-emea-01.corp.com", "ldap-emea-02.corp.com"},
			},
			{
				Name:    "AMER",
				Agents:  []string{"ag-234567", "ag-234568"},
				Servers: []string{"ldap-amer-01.corp.com", "ldap-amer-02.corp.com"},
			},
			{
				Name:    "APAC",
				Agents:  []string{"ag-345678", "ag-345679"},
				Servers: []string{"ldap-apac-01.corp.com", "ldap-apac-02.corp.com"},
			},
		},
		Thresholds: Thresholds{
			BaselineMS:   100,
			StepMS:       300,
			TotalMS:      1000,
			Availability: "99.9%",
		},
	}
}

// LoadProfile reads a TOML profile from path, layered over the defaults so
// partial profiles only override what they declare. Unknown keys are
// rejected to catch typos early.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Profile{}, fmt.Errorf("profile %s: unknown key %q", path, undecoded[0].String())
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checks that the profile can drive every scenario builder.
func (p Profile) Validate() error {
	if len(p.Regions) == 0 {
		return ErrNoRegions
	}
	for _, r := range p.Regions {
		if r.Name == "" || len(r.Agents) == 0 || len(r.Servers) == 0 {
			return fmt.Errorf("region %q: %w", r.Name, ErrEmptyRegion)
		}
	}
	return nil
}

// saasLabel is the control-plane node caption used by the architecture
// diagram.
func (p Profile) saasLabel() string {
	return p.Product + " SaaS\nControl Plane\n:443/HTTPS"
}
