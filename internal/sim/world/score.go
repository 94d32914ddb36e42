package world

import (
	"fmt"

	"courierbench.ai/internal/protocol"
)

// Tracker classifies the calls of one delivery incrementally. A movement
// call is an error when it is a no-op or when the remaining optimal distance
// (recomputed with the same cost function that sizes budgets) did not
// strictly decrease. Info tools cost steps but are never errors; failed
// deliver calls are counted separately as mismatches.
type Tracker struct {
	w      *World
	target Location

	MoveCalls  int
	MoveErrors int
	Mismatches int
	InfoCalls  int
}

func NewTracker(w *World, recipient string) (*Tracker, error) {
	biz, _ := w.FindEmployee(recipient)
	if biz == nil {
		return nil, fmt.Errorf("tracker: unknown recipient %q", recipient)
	}
	return &Tracker{w: w, target: biz.Loc}, nil
}

// Observe records one executed call. before is the agent location prior to
// the call, after the location once it ran.
func (t *Tracker) Observe(before Location, res protocol.ToolResult, after Location) {
	switch {
	case protocol.IsInfoTool(res.Tool):
		t.InfoCalls++
	case res.Tool == protocol.ToolDeliver:
		if !res.OK {
			t.Mismatches++
		}
	default:
		// Movement, including unknown tools: a wasted call is still a call.
		t.MoveCalls++
		if before == after {
			t.MoveErrors++
			return
		}
		if t.w.topo.OptimalSteps(after, t.target) >= t.w.topo.OptimalSteps(before, t.target) {
			t.MoveErrors++
		}
	}
}

// Outcome summarizes one finished delivery for the surrounding benchmark.
type Outcome struct {
	DeliveryID   string `json:"delivery_id"`
	Recipient    string `json:"recipient"`
	Repeat       bool   `json:"repeat"`
	Delivered    bool   `json:"delivered"`
	Steps        int    `json:"steps"`
	OptimalSteps int    `json:"optimal_steps"`
	StepBudget   int    `json:"step_budget"`
	MoveErrors   int    `json:"move_errors"`
	Mismatches   int    `json:"mismatches"`
	InfoCalls    int    `json:"info_calls"`
}
