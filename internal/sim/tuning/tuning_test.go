package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestStepBudget(t *testing.T) {
	tun := Default() // min_steps=10, multiplier=2.0
	cases := []struct{ optimal, want int }{
		{1, 10},
		{4, 10},
		{5, 10},
		{6, 12},
		{20, 40},
	}
	for _, c := range cases {
		if got := tun.StepBudget(c.optimal); got != c.want {
			t.Fatalf("StepBudget(%d) = %d, want %d", c.optimal, got, c.want)
		}
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	tun, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if tun != Default() {
		t.Fatalf("empty path must yield defaults, got %+v", tun)
	}
}

func TestLoad_OverridesAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("min_steps: 3\nstep_multiplier: 1.5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tun, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tun.MinSteps != 3 || tun.StepMultiplier != 1.5 {
		t.Fatalf("overrides not applied: %+v", tun)
	}
	if tun.Scheduler != Default().Scheduler {
		t.Fatalf("unset scheduler shape must keep defaults: %+v", tun.Scheduler)
	}

	if err := os.WriteFile(path, []byte("min_steps: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("min_steps 0 must fail validation")
	}
}
