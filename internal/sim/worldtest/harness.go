// Package worldtest drives the benchmark core end to end through exported
// APIs only — registry, scheduler, dispatcher and the scripted courier — so
// these tests exercise exactly the surface the surrounding orchestrator uses.
package worldtest

import (
	"testing"

	"courierbench.ai/internal/sim/courier"
	"courierbench.ai/internal/sim/registry"
	"courierbench.ai/internal/sim/tuning"
	"courierbench.ai/internal/sim/world"
)

type Harness struct {
	T   *testing.T
	Reg *registry.Registry
	W   *world.World
	Tun tuning.Tuning
}

func NewHarness(t *testing.T, difficulty string) *Harness {
	t.Helper()

	cfg, err := registry.Load("")
	if err != nil {
		t.Fatalf("registry.Load: %v", err)
	}
	reg := registry.New(cfg)
	w, err := reg.Configure(difficulty)
	if err != nil {
		t.Fatalf("configure %s: %v", difficulty, err)
	}
	return &Harness{T: t, Reg: reg, W: w, Tun: tuning.Default()}
}

// Deliver runs one scripted delivery from the world start and returns its
// outcome.
func (h *Harness) Deliver(recipient string) world.Outcome {
	h.T.Helper()

	a := world.NewAgentState(h.W.Start(), world.Package{Recipient: recipient})
	opt, ok := h.W.OptimalSteps(a.Loc, recipient)
	if !ok {
		h.T.Fatalf("unknown recipient %q", recipient)
	}
	out, err := courier.Run(h.W, a, h.Tun.StepBudget(opt))
	if err != nil {
		h.T.Fatalf("courier.Run(%q): %v", recipient, err)
	}
	return out
}
