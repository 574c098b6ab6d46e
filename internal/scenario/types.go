package scenario

import "github.com/DjordjeVuckovic/base-checker/internal/session"

// Suite is a YAML file of scenarios, each one a complete session.
type Suite struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	// Sentinel ends the declaration block; defaults to session.DefaultSentinel.
	Sentinel  string     `yaml:"sentinel"`
	Scenarios []Scenario `yaml:"scenarios"`
}

type Scenario struct {
	ID           string      `yaml:"id"`
	Description  string      `yaml:"description"`
	Declarations []string    `yaml:"declarations"`
	Expression   string      `yaml:"expression"`
	Expect       Expectation `yaml:"expect"`
}

// Expectation lists the outcomes a scenario must produce. Empty fields are
// not checked.
type Expectation struct {
	Declarations []session.Kind `yaml:"declarations"`
	Expression   *session.Kind  `yaml:"expression"`
	Undeclared   string         `yaml:"undeclared"`
}

func (s *Suite) sentinel() string {
	if s.Sentinel == "" {
		return session.DefaultSentinel
	}
	return s.Sentinel
}
