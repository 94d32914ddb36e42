package world

import (
	"fmt"

	"courierbench.ai/internal/protocol"
)

// linearTopology is a single stairwell of floors. Each floor has a front and
// a back suite; vertical movement always lands on the middle landing.
type linearTopology struct {
	minFloor, maxFloor int
}

func newLinearTopology(floors int) (*linearTopology, error) {
	if floors < 1 {
		return nil, fmt.Errorf("linear topology needs >= 1 floor, got %d", floors)
	}
	return &linearTopology{minFloor: 1, maxFloor: floors}, nil
}

func (t *linearTopology) Kind() TopologyKind { return TopologyLinear }

func (t *linearTopology) Tools() []string {
	return []string{protocol.ToolGoUp, protocol.ToolGoDown, protocol.ToolGoFront, protocol.ToolGoBack}
}

func (t *linearTopology) Start() Location { return LinearLoc(t.minFloor, SideMiddle) }

func (t *linearTopology) Move(loc Location, tool string, _ map[string]any) (Location, bool, string) {
	switch tool {
	case protocol.ToolGoUp:
		if loc.Floor >= t.maxFloor {
			return loc, false, fmt.Sprintf("Cannot go up: you are already on the top floor %d.", t.maxFloor)
		}
		next := LinearLoc(loc.Floor+1, SideMiddle)
		return next, true, fmt.Sprintf("You take the stairs up. You are now on the middle landing of floor %d.", next.Floor)
	case protocol.ToolGoDown:
		if loc.Floor <= t.minFloor {
			return loc, false, fmt.Sprintf("Cannot go down: you are already on the bottom floor %d.", t.minFloor)
		}
		next := LinearLoc(loc.Floor-1, SideMiddle)
		return next, true, fmt.Sprintf("You take the stairs down. You are now on the middle landing of floor %d.", next.Floor)
	case protocol.ToolGoFront:
		if loc.Side == SideFront {
			return loc, false, "Cannot go to the front: you are already at the front suite."
		}
		return LinearLoc(loc.Floor, SideFront), true, fmt.Sprintf("You walk to the front suite of floor %d.", loc.Floor)
	case protocol.ToolGoBack:
		if loc.Side == SideBack {
			return loc, false, "Cannot go to the back: you are already at the back suite."
		}
		return LinearLoc(loc.Floor, SideBack), true, fmt.Sprintf("You walk to the back suite of floor %d.", loc.Floor)
	}
	return loc, false, fmt.Sprintf("Cannot %s here.", tool)
}

func (t *linearTopology) OptimalSteps(loc, target Location) int {
	if loc.Floor == target.Floor {
		if loc.Side == target.Side {
			return 1
		}
		return 2
	}
	cost := absInt(loc.Floor - target.Floor)
	if target.Side != SideMiddle {
		cost++
	}
	return cost + 1
}

func (t *linearTopology) DeclaredLocations() []Location {
	var locs []Location
	for f := t.minFloor; f <= t.maxFloor; f++ {
		locs = append(locs, LinearLoc(f, SideFront), LinearLoc(f, SideBack))
	}
	return locs
}

func (t *linearTopology) Describe(loc Location) string {
	desc := fmt.Sprintf("You are on %s.", loc)
	if loc.Floor < t.maxFloor {
		desc += " Stairs lead up."
	}
	if loc.Floor > t.minFloor {
		desc += " Stairs lead down."
	}
	return desc
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
