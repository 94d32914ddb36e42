package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"courierbench.ai/internal/sim/courier"
	"courierbench.ai/internal/sim/registry"
	"courierbench.ai/internal/sim/schedule"
	"courierbench.ai/internal/sim/tuning"
	"courierbench.ai/internal/sim/world"
)

func main() {
	var (
		difficulty  = flag.String("difficulty", "", "difficulty to run (default: config default)")
		configDir   = flag.String("configs", "./configs", "config directory")
		n           = flag.Int("n", 10, "queue length")
		repeatRatio = flag.Float64("repeat_ratio", 0.4, "target repeat ratio (ignored in paired mode)")
		paired      = flag.Bool("paired", false, "paired mode: every selected recipient is visited exactly twice")
		business    = flag.String("business", "always", "business name inclusion: always|never|random")
		seed        = flag.Int64("seed", 0, "scheduler seed (0 = time-seeded, non-reproducible)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[benchrunner] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := registry.Load(optionalPath(*configDir, "difficulties.yaml"))
	if err != nil {
		logger.Fatalf("load difficulties: %v", err)
	}
	tun, err := tuning.Load(optionalPath(*configDir, "tuning.yaml"))
	if err != nil {
		logger.Fatalf("load tuning: %v", err)
	}

	reg := registry.New(cfg)
	var w *world.World
	if *difficulty == "" {
		w, err = reg.Default()
	} else {
		w, err = reg.Configure(*difficulty)
	}
	if err != nil {
		logger.Fatalf("configure world: %v", err)
	}
	logger.Printf("world ready: difficulty=%s topology=%s employees=%d",
		w.Config().Difficulty, w.Config().Kind, len(w.EmployeeNames()))

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	queue, err := schedule.Generate(w.EmployeeNames(), w.BusinessNameOf, schedule.Options{
		N:           *n,
		RepeatRatio: *repeatRatio,
		Paired:      *paired,
		Business:    schedule.BusinessPolicy(*business),
		Shape:       tun.Scheduler,
	}, rng)
	if err != nil {
		logger.Fatalf("generate queue: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	var delivered, steps, optimal, moveErrors int
	for {
		entry, ok := queue.Next()
		if !ok {
			break
		}
		agent := world.NewAgentState(w.Start(), world.Package{
			Recipient:    entry.Recipient,
			BusinessName: entry.Business,
		})
		opt, ok := w.OptimalSteps(agent.Loc, entry.Recipient)
		if !ok {
			logger.Fatalf("queue names unknown recipient %q", entry.Recipient)
		}
		out, err := courier.Run(w, agent, tun.StepBudget(opt))
		if err != nil {
			logger.Fatalf("delivery for %s: %v", entry.Recipient, err)
		}
		out.Repeat = entry.Repeat
		if err := enc.Encode(out); err != nil {
			logger.Fatalf("encode outcome: %v", err)
		}
		if out.Delivered {
			delivered++
		}
		steps += out.Steps
		optimal += out.OptimalSteps
		moveErrors += out.MoveErrors
	}
	logger.Printf("done: deliveries=%d delivered=%d steps=%d optimal=%d move_errors=%d",
		queue.Len(), delivered, steps, optimal, moveErrors)
}

// optionalPath returns the config file path when it exists, otherwise ""
// so the loaders fall back to compiled-in defaults.
func optionalPath(dir, name string) string {
	p := filepath.Join(dir, name)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
