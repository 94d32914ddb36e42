package tuning

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	// Step budgets: maxSteps = max(MinSteps, ceil(optimal * StepMultiplier)).
	MinSteps       int     `yaml:"min_steps"`
	StepMultiplier float64 `yaml:"step_multiplier"`

	Scheduler SchedulerShape `yaml:"scheduler"`
}

// SchedulerShape holds the probabilistic constants of queue generation.
// They are approximate by design: preserve the qualitative shape
// (front-load exploration, bias repeats toward a frequent subset), not the
// literal values.
type SchedulerShape struct {
	FrontLoadFrac    float64 `yaml:"front_load_frac"`    // share of slots favoring first visits
	ExploreBias      float64 `yaml:"explore_bias"`       // P(prefer unvisited) inside the front slots
	FrequentBias     float64 `yaml:"frequent_bias"`      // P(repeat drawn from the frequent subset)
	FrequentPoolFrac float64 `yaml:"frequent_pool_frac"` // share of the unique pool marked frequent
}

func Default() Tuning {
	return Tuning{
		MinSteps:       10,
		StepMultiplier: 2.0,
		Scheduler: SchedulerShape{
			FrontLoadFrac:    0.6,
			ExploreBias:      0.8,
			FrequentBias:     0.7,
			FrequentPoolFrac: 1.0 / 3.0,
		},
	}
}

func Load(path string) (Tuning, error) {
	t := Default()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if t.MinSteps < 1 {
		return fmt.Errorf("min_steps must be >= 1, got %d", t.MinSteps)
	}
	if t.StepMultiplier < 1 {
		return fmt.Errorf("step_multiplier must be >= 1, got %v", t.StepMultiplier)
	}
	for name, f := range map[string]float64{
		"front_load_frac":    t.Scheduler.FrontLoadFrac,
		"explore_bias":       t.Scheduler.ExploreBias,
		"frequent_bias":      t.Scheduler.FrequentBias,
		"frequent_pool_frac": t.Scheduler.FrequentPoolFrac,
	} {
		if f < 0 || f > 1 {
			return fmt.Errorf("scheduler.%s must be in [0,1], got %v", name, f)
		}
	}
	return nil
}

// StepBudget sizes the step allowance for one delivery from its exact
// optimal step count.
func (t Tuning) StepBudget(optimal int) int {
	budget := int(math.Ceil(float64(optimal) * t.StepMultiplier))
	if budget < t.MinSteps {
		budget = t.MinSteps
	}
	return budget
}
