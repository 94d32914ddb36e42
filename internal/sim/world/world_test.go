package world

import (
	"strings"
	"testing"
)

func linearConfig() Config {
	return Config{Difficulty: "easy", Kind: TopologyLinear, Floors: 5, EmployeesPerBusiness: 2}
}

func campusConfig() Config {
	return Config{Difficulty: "medium", Kind: TopologyCampus, Floors: 4, Buildings: []string{"A", "B", "C"}, EmployeesPerBusiness: 3}
}

func gridConfig() Config {
	return Config{Difficulty: "hard", Kind: TopologyGrid, Rows: 3, Cols: 5, Floors: 4, EmployeesPerBusiness: 2}
}

func allConfigs() []Config {
	return []Config{linearConfig(), campusConfig(), gridConfig()}
}

func mustWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%s): %v", cfg.Difficulty, err)
	}
	return w
}

func TestNew_UnknownTopologyFails(t *testing.T) {
	if _, err := New(Config{Difficulty: "bogus", Kind: TopologyKind("SPHERE")}); err == nil {
		t.Fatalf("expected configuration error for unknown topology")
	}
}

func TestNew_NoHolesInDeclaredLocations(t *testing.T) {
	for _, cfg := range allConfigs() {
		w := mustWorld(t, cfg)
		for _, loc := range w.Topology().DeclaredLocations() {
			biz := w.BusinessAt(loc)
			if biz == nil {
				t.Fatalf("%s: no business at declared location %s", cfg.Difficulty, loc)
			}
			if biz.Loc != loc {
				t.Fatalf("%s: business at %s claims location %s", cfg.Difficulty, loc, biz.Loc)
			}
			if len(biz.Employees) != cfg.EmployeesPerBusiness {
				t.Fatalf("%s: business %s has %d employees, want %d", cfg.Difficulty, biz.Name, len(biz.Employees), cfg.EmployeesPerBusiness)
			}
		}
	}
}

func TestFindEmployee_RoundTrips(t *testing.T) {
	for _, cfg := range allConfigs() {
		w := mustWorld(t, cfg)
		for _, name := range w.EmployeeNames() {
			biz, emp := w.FindEmployee(name)
			if biz == nil || emp == nil {
				t.Fatalf("%s: employee %q not found", cfg.Difficulty, name)
			}
			if emp.Name != name {
				t.Fatalf("%s: looked up %q, got %q", cfg.Difficulty, name, emp.Name)
			}
			if w.BusinessAt(biz.Loc) != biz {
				t.Fatalf("%s: business of %q does not round-trip through BusinessAt", cfg.Difficulty, name)
			}
		}
	}
}

func TestFindEmployee_CaseInsensitiveAndUnknown(t *testing.T) {
	w := mustWorld(t, linearConfig())
	name := w.EmployeeNames()[0]
	if biz, _ := w.FindEmployee(strings.ToUpper(name)); biz == nil {
		t.Fatalf("uppercase lookup of %q failed", name)
	}
	if biz, emp := w.FindEmployee("Nobody Nowhere"); biz != nil || emp != nil {
		t.Fatalf("unknown employee should return nil, nil")
	}
}

func TestEmployeeNames_GloballyUnique(t *testing.T) {
	for _, cfg := range allConfigs() {
		w := mustWorld(t, cfg)
		names := w.EmployeeNames()
		seen := map[string]struct{}{}
		for _, n := range names {
			key := strings.ToLower(n)
			if _, dup := seen[key]; dup {
				t.Fatalf("%s: duplicate employee name %q", cfg.Difficulty, n)
			}
			seen[key] = struct{}{}
		}
		want := len(w.Topology().DeclaredLocations()) * cfg.EmployeesPerBusiness
		if len(names) != want {
			t.Fatalf("%s: %d employee names, want %d", cfg.Difficulty, len(names), want)
		}
	}
}

func TestOptimalSteps_NeverFree(t *testing.T) {
	for _, cfg := range allConfigs() {
		w := mustWorld(t, cfg)
		topo := w.Topology()
		declared := topo.DeclaredLocations()
		starts := append([]Location{topo.Start()}, declared...)
		for _, from := range starts {
			for _, target := range declared {
				if got := topo.OptimalSteps(from, target); got < 1 {
					t.Fatalf("%s: OptimalSteps(%s, %s) = %d, want >= 1", cfg.Difficulty, from, target, got)
				}
			}
		}
	}
}

func TestBusinessNameOf(t *testing.T) {
	w := mustWorld(t, campusConfig())
	name := w.EmployeeNames()[0]
	biz, _ := w.FindEmployee(name)
	if got := w.BusinessNameOf(name); got != biz.Name {
		t.Fatalf("BusinessNameOf(%q) = %q, want %q", name, got, biz.Name)
	}
	if got := w.BusinessNameOf("Nobody Nowhere"); got != "" {
		t.Fatalf("BusinessNameOf(unknown) = %q, want empty", got)
	}
}
