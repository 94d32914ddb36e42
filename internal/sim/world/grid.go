package world

import (
	"fmt"

	"courierbench.ai/internal/protocol"
)

type cell struct{ Row, Col int }

// gridTopology is a street grid. Buildings sit on even columns, roads on odd
// columns; both are legal street cells, and a building's front cell is the
// street cell it sits on. Row 0 is the northern edge.
type gridTopology struct {
	rows, cols int
	floors     int

	names map[cell]string
	cells map[string]cell
}

func newGridTopology(rows, cols, floors int, buildingNames []string) (*gridTopology, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid topology needs positive dimensions, got %dx%d", rows, cols)
	}
	if floors < 1 {
		return nil, fmt.Errorf("grid topology needs >= 1 building floor, got %d", floors)
	}
	t := &gridTopology{
		rows:   rows,
		cols:   cols,
		floors: floors,
		names:  map[cell]string{},
		cells:  map[string]cell{},
	}
	i := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c += 2 {
			if i >= len(buildingNames) {
				return nil, fmt.Errorf("grid topology: %d building names supplied, need %d", len(buildingNames), rows*((cols+1)/2))
			}
			name := buildingNames[i]
			if _, dup := t.cells[name]; dup {
				return nil, fmt.Errorf("grid topology: duplicate building name %q", name)
			}
			t.names[cell{r, c}] = name
			t.cells[name] = cell{r, c}
			i++
		}
	}
	return t, nil
}

func (t *gridTopology) Kind() TopologyKind { return TopologyGrid }

func (t *gridTopology) Tools() []string {
	return []string{
		protocol.ToolMoveNorth, protocol.ToolMoveSouth, protocol.ToolMoveEast, protocol.ToolMoveWest,
		protocol.ToolEnter, protocol.ToolExit,
		protocol.ToolGoUp, protocol.ToolGoDown,
	}
}

func (t *gridTopology) Start() Location {
	if t.cols > 1 {
		return StreetLoc(0, 1)
	}
	return StreetLoc(0, 0)
}

// BuildingNames lists every building in construction order of its front cell.
func (t *gridTopology) BuildingNames() []string {
	var names []string
	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.cols; c += 2 {
			names = append(names, t.names[cell{r, c}])
		}
	}
	return names
}

func (t *gridTopology) Move(loc Location, tool string, _ map[string]any) (Location, bool, string) {
	switch tool {
	case protocol.ToolMoveNorth, protocol.ToolMoveSouth, protocol.ToolMoveEast, protocol.ToolMoveWest:
		return t.moveStreet(loc, tool)
	case protocol.ToolEnter:
		if loc.Inside {
			return loc, false, fmt.Sprintf("Cannot enter a building: you are already inside %s.", loc.Building)
		}
		name, ok := t.names[cell{loc.Row, loc.Col}]
		if !ok {
			return loc, false, "Cannot enter a building: there is no building entrance on this street cell."
		}
		next := InsideLoc(name, 1)
		return next, true, fmt.Sprintf("You enter %s and arrive in the floor 1 lobby.", name)
	case protocol.ToolExit:
		if !loc.Inside {
			return loc, false, "Cannot exit: you are not inside a building."
		}
		front := t.cells[loc.Building]
		next := StreetLoc(front.Row, front.Col)
		return next, true, fmt.Sprintf("You exit %s onto the street at (%d,%d).", loc.Building, front.Row, front.Col)
	case protocol.ToolGoUp:
		if !loc.Inside {
			return loc, false, "Cannot go up: you are on the street; enter a building first."
		}
		if loc.Floor >= t.floors {
			return loc, false, fmt.Sprintf("Cannot go up: floor %d is the top of %s.", t.floors, loc.Building)
		}
		next := InsideLoc(loc.Building, loc.Floor+1)
		return next, true, fmt.Sprintf("You take the stairs up to floor %d of %s.", next.Floor, next.Building)
	case protocol.ToolGoDown:
		if !loc.Inside {
			return loc, false, "Cannot go down: you are on the street; enter a building first."
		}
		if loc.Floor <= 1 {
			return loc, false, fmt.Sprintf("Cannot go down: floor 1 is the lobby of %s.", loc.Building)
		}
		next := InsideLoc(loc.Building, loc.Floor-1)
		return next, true, fmt.Sprintf("You take the stairs down to floor %d of %s.", next.Floor, next.Building)
	}
	return loc, false, fmt.Sprintf("Cannot %s here.", tool)
}

func (t *gridTopology) moveStreet(loc Location, tool string) (Location, bool, string) {
	if loc.Inside {
		return loc, false, fmt.Sprintf("Cannot move: you are inside %s; exit the building first.", loc.Building)
	}
	row, col, edge := loc.Row, loc.Col, ""
	switch tool {
	case protocol.ToolMoveNorth:
		row, edge = row-1, "northern"
	case protocol.ToolMoveSouth:
		row, edge = row+1, "southern"
	case protocol.ToolMoveEast:
		col, edge = col+1, "eastern"
	case protocol.ToolMoveWest:
		col, edge = col-1, "western"
	}
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return loc, false, fmt.Sprintf("Cannot move: you are at the %s edge of the map.", edge)
	}
	next := StreetLoc(row, col)
	return next, true, fmt.Sprintf("You walk to street cell (%d,%d).", row, col)
}

func (t *gridTopology) OptimalSteps(loc, target Location) int {
	if loc.Inside && loc.Building == target.Building {
		return absInt(loc.Floor-target.Floor) + 1
	}
	front := t.cells[target.Building]
	cost := 0
	at := cell{loc.Row, loc.Col}
	if loc.Inside {
		cost++ // exit the current building first
		at = t.cells[loc.Building]
	}
	cost += absInt(at.Row-front.Row) + absInt(at.Col-front.Col)
	cost++ // enter_building
	cost += target.Floor - 1
	return cost + 1
}

func (t *gridTopology) DeclaredLocations() []Location {
	var locs []Location
	for _, name := range t.BuildingNames() {
		for f := 1; f <= t.floors; f++ {
			locs = append(locs, InsideLoc(name, f))
		}
	}
	return locs
}

func (t *gridTopology) Describe(loc Location) string {
	if loc.Inside {
		return fmt.Sprintf("You are inside %s, floor %d.", loc.Building, loc.Floor)
	}
	desc := fmt.Sprintf("You are on street cell (%d,%d) of a %dx%d grid.", loc.Row, loc.Col, t.rows, t.cols)
	if name, ok := t.names[cell{loc.Row, loc.Col}]; ok {
		desc += fmt.Sprintf(" The entrance of %s is here.", name)
	}
	return desc
}
