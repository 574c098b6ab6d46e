package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Scenarios) == 0 {
		return nil, fmt.Errorf("suite has no scenarios")
	}

	seen := make(map[string]struct{}, len(s.Scenarios))
	for i, sc := range s.Scenarios {
		if sc.ID == "" {
			return nil, fmt.Errorf("scenario at index %d has no id", i)
		}
		if _, ok := seen[sc.ID]; ok {
			return nil, fmt.Errorf("duplicate scenario id %q", sc.ID)
		}
		seen[sc.ID] = struct{}{}

		for _, line := range sc.Declarations {
			if line == s.sentinel() {
				return nil, fmt.Errorf("scenario %q: declaration equals the sentinel %q", sc.ID, line)
			}
		}
		if n := len(sc.Expect.Declarations); n > 0 && n != len(sc.Declarations) {
			return nil, fmt.Errorf("scenario %q: expects %d declaration outcomes, has %d declarations", sc.ID, n, len(sc.Declarations))
		}
	}
	return &s, nil
}
