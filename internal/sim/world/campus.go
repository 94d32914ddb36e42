package world

import (
	"fmt"
	"strings"

	"courierbench.ai/internal/protocol"
)

// campusTopology is a set of buildings joined by a ground-floor passage and
// a skybridge. Crossing between buildings is possible only on those two
// transfer floors.
type campusTopology struct {
	floors    int
	buildings []string

	groundFloor int
	bridgeFloor int
}

func newCampusTopology(floors int, buildings []string) (*campusTopology, error) {
	if floors < 3 {
		return nil, fmt.Errorf("campus topology needs >= 3 floors for the skybridge, got %d", floors)
	}
	if len(buildings) < 2 {
		return nil, fmt.Errorf("campus topology needs >= 2 buildings, got %d", len(buildings))
	}
	return &campusTopology{floors: floors, buildings: buildings, groundFloor: 1, bridgeFloor: 3}, nil
}

func (t *campusTopology) Kind() TopologyKind { return TopologyCampus }

func (t *campusTopology) Tools() []string {
	return []string{protocol.ToolGoUp, protocol.ToolGoDown, protocol.ToolCrossBridge, protocol.ToolGoPassage}
}

func (t *campusTopology) Start() Location { return CampusLoc(t.groundFloor, t.buildings[0]) }

func (t *campusTopology) hasBuilding(name string) bool {
	for _, b := range t.buildings {
		if b == name {
			return true
		}
	}
	return false
}

func (t *campusTopology) Move(loc Location, tool string, args map[string]any) (Location, bool, string) {
	switch tool {
	case protocol.ToolGoUp:
		if loc.Floor >= t.floors {
			return loc, false, fmt.Sprintf("Cannot go up: floor %d is the top of building %s.", t.floors, loc.Building)
		}
		next := CampusLoc(loc.Floor+1, loc.Building)
		return next, true, fmt.Sprintf("You ride the elevator up to floor %d of building %s.", next.Floor, next.Building)
	case protocol.ToolGoDown:
		if loc.Floor <= 1 {
			return loc, false, fmt.Sprintf("Cannot go down: floor 1 is the ground floor of building %s.", loc.Building)
		}
		next := CampusLoc(loc.Floor-1, loc.Building)
		return next, true, fmt.Sprintf("You ride the elevator down to floor %d of building %s.", next.Floor, next.Building)
	case protocol.ToolCrossBridge:
		target := protocol.StringArg(args, "building")
		if loc.Floor != t.bridgeFloor {
			return loc, false, fmt.Sprintf("Cannot cross the bridge: the skybridge connects the buildings on floor %d only.", t.bridgeFloor)
		}
		if !t.hasBuilding(target) {
			return loc, false, fmt.Sprintf("Cannot cross the bridge: there is no building %s on this campus (buildings: %s).", target, strings.Join(t.buildings, ", "))
		}
		if target == loc.Building {
			return loc, false, fmt.Sprintf("Cannot cross the bridge: you are already in building %s.", target)
		}
		next := CampusLoc(t.bridgeFloor, target)
		return next, true, fmt.Sprintf("You cross the skybridge to building %s, floor %d.", target, t.bridgeFloor)
	case protocol.ToolGoPassage:
		target := protocol.StringArg(args, "building")
		if loc.Floor != t.groundFloor {
			return loc, false, fmt.Sprintf("Cannot take the passage: the ground passage connects the buildings on floor %d only.", t.groundFloor)
		}
		if !t.hasBuilding(target) {
			return loc, false, fmt.Sprintf("Cannot take the passage: there is no building %s on this campus (buildings: %s).", target, strings.Join(t.buildings, ", "))
		}
		if target == loc.Building {
			return loc, false, fmt.Sprintf("Cannot take the passage: you are already in building %s.", target)
		}
		next := CampusLoc(t.groundFloor, target)
		return next, true, fmt.Sprintf("You walk the ground passage to building %s, floor %d.", target, t.groundFloor)
	}
	return loc, false, fmt.Sprintf("Cannot %s here.", tool)
}

func (t *campusTopology) OptimalSteps(loc, target Location) int {
	if loc.Building == target.Building {
		return absInt(loc.Floor-target.Floor) + 1
	}
	best := -1
	for _, transfer := range []int{t.groundFloor, t.bridgeFloor} {
		cost := absInt(loc.Floor-transfer) + 1 + absInt(transfer-target.Floor)
		if best < 0 || cost < best {
			best = cost
		}
	}
	return best + 1
}

func (t *campusTopology) DeclaredLocations() []Location {
	var locs []Location
	for _, b := range t.buildings {
		for f := 1; f <= t.floors; f++ {
			locs = append(locs, CampusLoc(f, b))
		}
	}
	return locs
}

func (t *campusTopology) Describe(loc Location) string {
	desc := fmt.Sprintf("You are in %s.", loc)
	switch loc.Floor {
	case t.groundFloor:
		desc += " The ground passage to the other buildings is here."
	case t.bridgeFloor:
		desc += " The skybridge to the other buildings is here."
	}
	return desc
}
