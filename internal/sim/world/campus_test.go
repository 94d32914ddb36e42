package world

import (
	"strings"
	"testing"

	"courierbench.ai/internal/protocol"
)

func bridgeArgs(b string) map[string]any { return map[string]any{"building": b} }

func TestCampus_TransferFloorsOnly(t *testing.T) {
	topo, err := newCampusTopology(4, []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("newCampusTopology: %v", err)
	}

	// Bridge works on floor 3 only.
	if got, ok, _ := topo.Move(CampusLoc(3, "A"), protocol.ToolCrossBridge, bridgeArgs("C")); !ok || got != CampusLoc(3, "C") {
		t.Fatalf("bridge on floor 3: got (%s, %v)", got, ok)
	}
	for _, floor := range []int{1, 2, 4} {
		got, ok, text := topo.Move(CampusLoc(floor, "A"), protocol.ToolCrossBridge, bridgeArgs("B"))
		if ok || got != CampusLoc(floor, "A") {
			t.Fatalf("bridge on floor %d must be a no-op, got (%s, %v)", floor, got, ok)
		}
		if !strings.Contains(text, "Cannot") {
			t.Fatalf("bridge failure text %q lacks Cannot", text)
		}
	}

	// Passage works on floor 1 only.
	if got, ok, _ := topo.Move(CampusLoc(1, "B"), protocol.ToolGoPassage, bridgeArgs("A")); !ok || got != CampusLoc(1, "A") {
		t.Fatalf("passage on floor 1: got (%s, %v)", got, ok)
	}
	if _, ok, _ := topo.Move(CampusLoc(2, "B"), protocol.ToolGoPassage, bridgeArgs("A")); ok {
		t.Fatalf("passage off floor 1 must fail")
	}

	// Self and unknown targets fail.
	if _, ok, _ := topo.Move(CampusLoc(3, "A"), protocol.ToolCrossBridge, bridgeArgs("A")); ok {
		t.Fatalf("bridge to the current building must fail")
	}
	if _, ok, _ := topo.Move(CampusLoc(3, "A"), protocol.ToolCrossBridge, bridgeArgs("Z")); ok {
		t.Fatalf("bridge to unknown building must fail")
	}
}

func TestCampus_FloorBounds(t *testing.T) {
	topo, _ := newCampusTopology(4, []string{"A", "B"})
	if _, ok, _ := topo.Move(CampusLoc(4, "A"), protocol.ToolGoUp, nil); ok {
		t.Fatalf("go_up at the top floor must fail")
	}
	if _, ok, _ := topo.Move(CampusLoc(1, "A"), protocol.ToolGoDown, nil); ok {
		t.Fatalf("go_down at the ground floor must fail")
	}
}

func TestCampus_OptimalSteps(t *testing.T) {
	topo, _ := newCampusTopology(4, []string{"A", "B", "C"})

	cases := []struct {
		from, to Location
		want     int
	}{
		{CampusLoc(2, "A"), CampusLoc(2, "A"), 1},
		{CampusLoc(1, "A"), CampusLoc(4, "A"), 4},
		// Ground route: already on floor 1, cross, 0 floors left, deliver.
		{CampusLoc(1, "A"), CampusLoc(1, "B"), 2},
		// Bridge route wins: 3->3 cross, one floor up.
		{CampusLoc(3, "A"), CampusLoc(4, "B"), 3},
		// Both routes cost the same from floor 2 to floor 2: 1+1+1+1.
		{CampusLoc(2, "A"), CampusLoc(2, "C"), 4},
		// From floor 4, bridge is closer than the ground passage.
		{CampusLoc(4, "A"), CampusLoc(3, "C"), 3},
	}
	for _, c := range cases {
		if got := topo.OptimalSteps(c.from, c.to); got != c.want {
			t.Fatalf("OptimalSteps(%s, %s) = %d, want %d", c.from, c.to, got, c.want)
		}
	}
}
