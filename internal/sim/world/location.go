package world

import "fmt"

type TopologyKind string

const (
	TopologyLinear TopologyKind = "LINEAR"
	TopologyCampus TopologyKind = "CAMPUS"
	TopologyGrid   TopologyKind = "GRID"
)

type Side string

const (
	SideFront  Side = "FRONT"
	SideBack   Side = "BACK"
	SideMiddle Side = "MIDDLE"
)

// Location is a tagged union over the three topologies. Only the fields of
// the active Kind are meaningful; the zero value of the rest keeps Location
// comparable so it can key maps and be compared with ==.
//
//   - LINEAR: Floor + Side.
//   - CAMPUS: Floor + Building.
//   - GRID: street cell Row/Col, or Inside=true with Building + Floor.
type Location struct {
	Kind TopologyKind

	Floor int
	Side  Side

	Building string

	Row, Col int
	Inside   bool
}

func LinearLoc(floor int, side Side) Location {
	return Location{Kind: TopologyLinear, Floor: floor, Side: side}
}

func CampusLoc(floor int, building string) Location {
	return Location{Kind: TopologyCampus, Floor: floor, Building: building}
}

func StreetLoc(row, col int) Location {
	return Location{Kind: TopologyGrid, Row: row, Col: col}
}

func InsideLoc(building string, floor int) Location {
	return Location{Kind: TopologyGrid, Inside: true, Building: building, Floor: floor}
}

func (l Location) String() string {
	switch l.Kind {
	case TopologyLinear:
		switch l.Side {
		case SideMiddle:
			return fmt.Sprintf("floor %d, middle landing", l.Floor)
		default:
			return fmt.Sprintf("floor %d, %s suite", l.Floor, sideWord(l.Side))
		}
	case TopologyCampus:
		return fmt.Sprintf("building %s, floor %d", l.Building, l.Floor)
	case TopologyGrid:
		if l.Inside {
			return fmt.Sprintf("inside %s, floor %d", l.Building, l.Floor)
		}
		return fmt.Sprintf("street cell (%d,%d)", l.Row, l.Col)
	}
	return "unknown location"
}

func sideWord(s Side) string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	case SideMiddle:
		return "middle"
	}
	return string(s)
}
