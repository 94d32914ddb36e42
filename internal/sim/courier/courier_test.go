package courier

import (
	"testing"

	"courierbench.ai/internal/sim/world"
)

func easyWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(world.Config{
		Difficulty:           "easy",
		Kind:                 world.TopologyLinear,
		Floors:               5,
		EmployeesPerBusiness: 2,
	})
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return w
}

func TestRun_RequiresPackageAndKnownRecipient(t *testing.T) {
	w := easyWorld(t)
	recipient := w.EmployeeNames()[0]

	a := world.NewAgentState(w.Start(), world.Package{Recipient: recipient})
	a.Pkg = nil
	if _, err := Run(w, a, 20); err == nil {
		t.Fatalf("run without a package must fail")
	}

	b := world.NewAgentState(w.Start(), world.Package{Recipient: "Nobody Nowhere"})
	if _, err := Run(w, b, 20); err == nil {
		t.Fatalf("run for an unknown recipient must fail")
	}
}

func TestRun_StopsAtBudget(t *testing.T) {
	w := easyWorld(t)
	// Pick the farthest business from the start so a tiny budget cannot
	// possibly cover the route.
	far := w.BusinessAt(world.LinearLoc(5, world.SideBack))
	recipient := far.Employees[0].Name

	a := world.NewAgentState(w.Start(), world.Package{Recipient: recipient})
	out, err := Run(w, a, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Delivered {
		t.Fatalf("budget 2 cannot complete a %d-step route", out.OptimalSteps)
	}
	if out.Steps != 2 {
		t.Fatalf("steps = %d, want the exhausted budget 2", out.Steps)
	}
}
