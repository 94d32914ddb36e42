// Package courier is the scripted delivery policy used by the bench runner
// and the integration tests. No LLM is involved: at every step it applies
// the movement call that strictly reduces the remaining optimal distance,
// then delivers. With a correct cost engine it finishes every delivery in
// exactly the optimal number of steps.
package courier

import (
	"fmt"

	"courierbench.ai/internal/protocol"
	"courierbench.ai/internal/sim/world"
)

// Run drives one delivery to completion or budget exhaustion. The agent
// must already hold the package.
func Run(w *world.World, a *world.AgentState, budget int) (world.Outcome, error) {
	if a.Pkg == nil {
		return world.Outcome{}, fmt.Errorf("courier: agent holds no package")
	}
	recipient := a.Pkg.Recipient
	biz, _ := w.FindEmployee(recipient)
	if biz == nil {
		return world.Outcome{}, fmt.Errorf("courier: unknown recipient %q", recipient)
	}
	tracker, err := world.NewTracker(w, recipient)
	if err != nil {
		return world.Outcome{}, err
	}

	optimal := w.Topology().OptimalSteps(a.Loc, biz.Loc)
	out := world.Outcome{
		DeliveryID:   a.DeliveryID,
		Recipient:    recipient,
		OptimalSteps: optimal,
		StepBudget:   budget,
	}

	for a.Steps < budget {
		var call protocol.ToolCall
		if w.Topology().OptimalSteps(a.Loc, biz.Loc) == 1 {
			call = protocol.ToolCall{Name: protocol.ToolDeliver, Args: map[string]any{"recipient": recipient}}
		} else {
			var ok bool
			call, ok = nextMove(w, a.Loc, biz.Loc)
			if !ok {
				return out, fmt.Errorf("courier: no improving move from %s toward %s", a.Loc, biz.Loc)
			}
		}
		before := a.Loc
		res := w.Dispatch(a, call)
		tracker.Observe(before, res, a.Loc)
		if res.Tool == protocol.ToolDeliver && res.OK {
			out.Delivered = true
			break
		}
	}

	out.Steps = a.Steps
	out.MoveErrors = tracker.MoveErrors
	out.Mismatches = tracker.Mismatches
	out.InfoCalls = tracker.InfoCalls
	return out, nil
}

// nextMove picks the movement call minimizing the remaining optimal
// distance, simulating candidates through the same Topology.Move the
// dispatcher uses.
func nextMove(w *world.World, from, target world.Location) (protocol.ToolCall, bool) {
	topo := w.Topology()
	bestCost := topo.OptimalSteps(from, target)
	var best protocol.ToolCall
	found := false
	for _, tool := range topo.Tools() {
		for _, args := range candidateArgs(w, tool) {
			next, ok, _ := topo.Move(from, tool, args)
			if !ok {
				continue
			}
			if c := topo.OptimalSteps(next, target); c < bestCost {
				bestCost = c
				best = protocol.ToolCall{Name: tool, Args: args}
				found = true
			}
		}
	}
	return best, found
}

func candidateArgs(w *world.World, tool string) []map[string]any {
	switch tool {
	case protocol.ToolCrossBridge, protocol.ToolGoPassage:
		var out []map[string]any
		for _, b := range w.Config().Buildings {
			out = append(out, map[string]any{"building": b})
		}
		return out
	default:
		return []map[string]any{nil}
	}
}
