package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"courierbench.ai/internal/sim/world"
)

type Config struct {
	DefaultDifficulty string `yaml:"default_difficulty"`
	Difficulties      []Spec `yaml:"difficulties"`
}

// Spec is one difficulty entry in difficulties.yaml. Fields irrelevant to
// the chosen topology are ignored.
type Spec struct {
	Name     string `yaml:"name"`
	Topology string `yaml:"topology"` // LINEAR, CAMPUS or GRID

	Floors    int      `yaml:"floors"`
	Buildings []string `yaml:"buildings"`
	Rows      int      `yaml:"rows"`
	Cols      int      `yaml:"cols"`

	EmployeesPerBusiness int `yaml:"employees_per_business"`
}

// Load reads difficulties.yaml. An empty path yields the compiled-in
// defaults (easy/medium/hard).
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	cfg = Config{}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("difficulties.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("difficulties.yaml: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		DefaultDifficulty: "easy",
		Difficulties: []Spec{
			{
				Name:                 "easy",
				Topology:             string(world.TopologyLinear),
				Floors:               5,
				EmployeesPerBusiness: 2,
			},
			{
				Name:                 "medium",
				Topology:             string(world.TopologyCampus),
				Floors:               4,
				Buildings:            []string{"A", "B", "C"},
				EmployeesPerBusiness: 3,
			},
			{
				Name:                 "hard",
				Topology:             string(world.TopologyGrid),
				Rows:                 3,
				Cols:                 5,
				Floors:               4,
				EmployeesPerBusiness: 2,
			},
		},
	}
}

func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("no difficulties declared")
	}
	seen := map[string]struct{}{}
	for _, s := range c.Difficulties {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("difficulty with empty name")
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("duplicate difficulty %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		switch world.TopologyKind(s.Topology) {
		case world.TopologyLinear, world.TopologyCampus, world.TopologyGrid:
		default:
			return fmt.Errorf("difficulty %q: unknown topology %q", s.Name, s.Topology)
		}
	}
	if _, ok := seen[c.DefaultDifficulty]; !ok {
		return fmt.Errorf("default difficulty %q not declared", c.DefaultDifficulty)
	}
	return nil
}

func (c Config) spec(name string) (Spec, bool) {
	for _, s := range c.Difficulties {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

func (s Spec) worldConfig() world.Config {
	return world.Config{
		Difficulty:           s.Name,
		Kind:                 world.TopologyKind(s.Topology),
		Floors:               s.Floors,
		Buildings:            s.Buildings,
		Rows:                 s.Rows,
		Cols:                 s.Cols,
		EmployeesPerBusiness: s.EmployeesPerBusiness,
	}
}
