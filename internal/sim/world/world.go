package world

import (
	"fmt"
	"sort"
	"strings"
)

type Employee struct {
	Name string
	Role string
}

// Business occupies exactly one declared location and employs an ordered
// list of employees.
type Business struct {
	Name      string
	Loc       Location
	Employees []Employee
}

// Config describes one world to construct. Unknown or inconsistent values
// are configuration errors: New fails instead of degrading.
type Config struct {
	Difficulty string
	Kind       TopologyKind

	// Floors: LINEAR floor count; CAMPUS/GRID floors per building.
	Floors    int
	Buildings []string // CAMPUS building names
	Rows      int      // GRID
	Cols      int      // GRID

	EmployeesPerBusiness int
}

// World is the static topology data of one difficulty: locations, businesses
// and employees, plus lookups. It is immutable after New and safe to share;
// all mutable per-delivery state lives on AgentState.
type World struct {
	cfg  Config
	topo Topology

	businesses map[Location]*Business
	employees  map[string]employeeRef // lowercased employee name
}

type employeeRef struct {
	biz *Business
	idx int
}

func New(cfg Config) (*World, error) {
	if cfg.EmployeesPerBusiness < 1 {
		cfg.EmployeesPerBusiness = 2
	}

	var topo Topology
	var err error
	switch cfg.Kind {
	case TopologyLinear:
		topo, err = newLinearTopology(cfg.Floors)
	case TopologyCampus:
		topo, err = newCampusTopology(cfg.Floors, cfg.Buildings)
	case TopologyGrid:
		count := cfg.Rows * ((cfg.Cols + 1) / 2)
		names := make([]string, count)
		for i := range names {
			names[i] = buildingName(i)
		}
		topo, err = newGridTopology(cfg.Rows, cfg.Cols, cfg.Floors, names)
	default:
		return nil, fmt.Errorf("unknown topology %q for difficulty %q", cfg.Kind, cfg.Difficulty)
	}
	if err != nil {
		return nil, fmt.Errorf("difficulty %q: %w", cfg.Difficulty, err)
	}

	w := &World{
		cfg:        cfg,
		topo:       topo,
		businesses: map[Location]*Business{},
		employees:  map[string]employeeRef{},
	}

	declared := topo.DeclaredLocations()
	if need := len(declared) * cfg.EmployeesPerBusiness; need > rosterCapacity() {
		return nil, fmt.Errorf("difficulty %q: %d employees exceed the %d-name roster bank", cfg.Difficulty, need, rosterCapacity())
	}

	empIdx := 0
	for i, loc := range declared {
		if _, dup := w.businesses[loc]; dup {
			return nil, fmt.Errorf("difficulty %q: two businesses declared at %s", cfg.Difficulty, loc)
		}
		biz := &Business{Name: businessName(i), Loc: loc}
		for j := 0; j < cfg.EmployeesPerBusiness; j++ {
			name := employeeName(empIdx)
			key := strings.ToLower(name)
			if _, dup := w.employees[key]; dup {
				return nil, fmt.Errorf("difficulty %q: employee name collision %q", cfg.Difficulty, name)
			}
			biz.Employees = append(biz.Employees, Employee{Name: name, Role: employeeRole(empIdx)})
			w.employees[key] = employeeRef{biz: biz, idx: j}
			empIdx++
		}
		w.businesses[loc] = biz
	}

	if err := validateDispatchMaps(topo); err != nil {
		return nil, fmt.Errorf("difficulty %q: %w", cfg.Difficulty, err)
	}
	return w, nil
}

func (w *World) Config() Config     { return w.cfg }
func (w *World) Topology() Topology { return w.topo }
func (w *World) Start() Location    { return w.topo.Start() }

// BusinessAt resolves loc to its business, or nil when the location hosts
// none (street cells, stair landings).
func (w *World) BusinessAt(loc Location) *Business {
	return w.businesses[loc]
}

// FindEmployee is a case-insensitive lookup. Unknown names return nil, nil.
func (w *World) FindEmployee(name string) (*Business, *Employee) {
	ref, ok := w.employees[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, nil
	}
	return ref.biz, &ref.biz.Employees[ref.idx]
}

// EmployeeNames returns every employee name, sorted.
func (w *World) EmployeeNames() []string {
	names := make([]string, 0, len(w.employees))
	for _, ref := range w.employees {
		names = append(names, ref.biz.Employees[ref.idx].Name)
	}
	sort.Strings(names)
	return names
}

// BusinessNameOf resolves an employee to their business name, or "" when the
// employee is unknown. The scheduler uses this for business inclusion.
func (w *World) BusinessNameOf(employee string) string {
	biz, _ := w.FindEmployee(employee)
	if biz == nil {
		return ""
	}
	return biz.Name
}

// OptimalSteps is the exact minimum number of tool calls, including the
// final deliver, from loc to the named employee. ok=false when the employee
// does not exist.
func (w *World) OptimalSteps(loc Location, employee string) (int, bool) {
	biz, _ := w.FindEmployee(employee)
	if biz == nil {
		return 0, false
	}
	return w.topo.OptimalSteps(loc, biz.Loc), true
}
