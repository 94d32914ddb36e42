package registry

import (
	"os"
	"path/filepath"
	"testing"

	"courierbench.ai/internal/sim/world"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.DefaultDifficulty != "easy" || len(cfg.Difficulties) != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoad_RejectsUnknownTopology(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "difficulties.yaml")
	raw := "default_difficulty: weird\ndifficulties:\n  - name: weird\n    topology: SPHERE\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("unknown topology must fail validation")
	}
}

func TestRegistry_ConfigureAllDefaults(t *testing.T) {
	reg := New(defaults())
	for _, name := range []string{"easy", "medium", "hard"} {
		w, err := reg.Configure(name)
		if err != nil {
			t.Fatalf("configure %s: %v", name, err)
		}
		if w.Config().Difficulty != name {
			t.Fatalf("configured %s, got world for %s", name, w.Config().Difficulty)
		}
		again, err := reg.Configure(name)
		if err != nil {
			t.Fatalf("reconfigure %s: %v", name, err)
		}
		if again != w {
			t.Fatalf("%s: Configure must return the cached instance", name)
		}
	}

	kinds := map[string]world.TopologyKind{
		"easy":   world.TopologyLinear,
		"medium": world.TopologyCampus,
		"hard":   world.TopologyGrid,
	}
	for name, kind := range kinds {
		w, _ := reg.Get(name)
		if w.Config().Kind != kind {
			t.Fatalf("%s: topology %s, want %s", name, w.Config().Kind, kind)
		}
	}
}

func TestRegistry_UnknownDifficultyFatal(t *testing.T) {
	reg := New(defaults())
	if _, err := reg.Configure("nightmare"); err == nil {
		t.Fatalf("unknown difficulty must be a configuration error")
	}
}

func TestRegistry_ResetDropsInstances(t *testing.T) {
	reg := New(defaults())
	w1, err := reg.Configure("easy")
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	if _, ok := reg.Get("easy"); !ok {
		t.Fatalf("Get should see the configured world")
	}

	reg.Reset()
	if _, ok := reg.Get("easy"); ok {
		t.Fatalf("Reset must drop configured instances")
	}
	w2, err := reg.Configure("easy")
	if err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	if w1 == w2 {
		t.Fatalf("Reset must force a rebuild")
	}
}

func TestRegistry_Default(t *testing.T) {
	reg := New(defaults())
	w, err := reg.Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if w.Config().Difficulty != "easy" {
		t.Fatalf("default difficulty = %s, want easy", w.Config().Difficulty)
	}
}
