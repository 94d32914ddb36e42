// Package registry holds configured world instances keyed by difficulty,
// with an explicit configure/reset lifecycle instead of process-wide
// singletons, so tests stay isolated and reproducible.
package registry

import (
	"fmt"

	"courierbench.ai/internal/sim/world"
)

type Registry struct {
	cfg    Config
	worlds map[string]*world.World
}

func New(cfg Config) *Registry {
	return &Registry{cfg: cfg, worlds: map[string]*world.World{}}
}

// Configure builds (or returns the already-built) world for a difficulty.
// An unknown difficulty is a configuration error, not a recoverable one.
func (r *Registry) Configure(difficulty string) (*world.World, error) {
	if w, ok := r.worlds[difficulty]; ok {
		return w, nil
	}
	spec, ok := r.cfg.spec(difficulty)
	if !ok {
		return nil, fmt.Errorf("registry: unknown difficulty %q", difficulty)
	}
	w, err := world.New(spec.worldConfig())
	if err != nil {
		return nil, err
	}
	r.worlds[difficulty] = w
	return w, nil
}

// Get returns an already-configured world without building one.
func (r *Registry) Get(difficulty string) (*world.World, bool) {
	w, ok := r.worlds[difficulty]
	return w, ok
}

// Default configures the config's default difficulty.
func (r *Registry) Default() (*world.World, error) {
	return r.Configure(r.cfg.DefaultDifficulty)
}

// Reset drops every configured instance. The next Configure rebuilds from
// the spec, giving tests a clean world.
func (r *Registry) Reset() {
	r.worlds = map[string]*world.World{}
}
