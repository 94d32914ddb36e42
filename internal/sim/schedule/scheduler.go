// Package schedule generates reproducible delivery queues that exercise both
// fresh exploration and repeated exposure. The generator takes its RNG
// explicitly: callers seed it for reproducibility or pass nil for a
// time-seeded run.
package schedule

import (
	"fmt"
	"math/rand"
	"time"

	"courierbench.ai/internal/sim/tuning"
)

type BusinessPolicy string

const (
	BusinessAlways BusinessPolicy = "always"
	BusinessNever  BusinessPolicy = "never"
	BusinessRandom BusinessPolicy = "random"
)

// Entry is one scheduled delivery. Entries are immutable once generated;
// Repeat reflects first-vs-subsequent occurrence in the materialized order.
type Entry struct {
	Recipient string `json:"recipient"`
	Business  string `json:"business,omitempty"`
	Repeat    bool   `json:"repeat"`
}

type Options struct {
	N           int
	RepeatRatio float64 // ratio mode only, in [0,1]
	Paired      bool
	Business    BusinessPolicy

	// Shape defaults to tuning.Default().Scheduler when zero.
	Shape tuning.SchedulerShape
}

// Generate produces the ordered queue. businessOf resolves a recipient to
// their business name and may be nil only under BusinessNever.
func Generate(roster []string, businessOf func(string) string, opts Options, rng *rand.Rand) (*Queue, error) {
	if len(roster) == 0 {
		return nil, fmt.Errorf("schedule: empty roster")
	}
	if opts.N < 1 {
		return nil, fmt.Errorf("schedule: queue length must be >= 1, got %d", opts.N)
	}
	if opts.RepeatRatio < 0 || opts.RepeatRatio > 1 {
		return nil, fmt.Errorf("schedule: repeat ratio must be in [0,1], got %v", opts.RepeatRatio)
	}
	if opts.Business == "" {
		opts.Business = BusinessAlways
	}
	switch opts.Business {
	case BusinessAlways, BusinessNever, BusinessRandom:
	default:
		return nil, fmt.Errorf("schedule: unknown business policy %q", opts.Business)
	}
	if opts.Business != BusinessNever && businessOf == nil {
		return nil, fmt.Errorf("schedule: business policy %q needs a resolver", opts.Business)
	}
	if (opts.Shape == tuning.SchedulerShape{}) {
		opts.Shape = tuning.Default().Scheduler
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var recipients []string
	if opts.Paired {
		recipients = pairedOrder(roster, opts, rng)
	} else {
		recipients = ratioOrder(roster, opts, rng)
	}

	entries := make([]Entry, 0, len(recipients))
	seen := map[string]struct{}{}
	for _, r := range recipients {
		e := Entry{Recipient: r}
		if _, ok := seen[r]; ok {
			e.Repeat = true
		}
		seen[r] = struct{}{}
		switch opts.Business {
		case BusinessAlways:
			e.Business = businessOf(r)
		case BusinessRandom:
			if rng.Float64() < 0.5 {
				e.Business = businessOf(r)
			}
		}
		entries = append(entries, e)
	}
	return &Queue{entries: entries}, nil
}

// pairedOrder selects min(roster, N/2) distinct recipients and visits each
// exactly twice: first visits crowd the front slots, the tail interleaves
// the leftovers. Out-of-order pairs are tolerated by design. When pairs
// alone cannot reach N (roster < N/2, or odd N) the remaining slots are
// extra repeat visits drawn from the selected pool.
func pairedOrder(roster []string, opts Options, rng *rand.Rand) []string {
	k := opts.N / 2
	if k > len(roster) {
		k = len(roster)
	}
	if k < 1 {
		k = 1
	}
	picked := make([]string, 0, k)
	for _, i := range rng.Perm(len(roster))[:k] {
		picked = append(picked, roster[i])
	}

	seconds := make([]string, k)
	copy(seconds, picked)
	rng.Shuffle(k, func(i, j int) { seconds[i], seconds[j] = seconds[j], seconds[i] })

	front := int(opts.Shape.FrontLoadFrac * float64(opts.N))
	out := make([]string, 0, opts.N)
	fi, si := 0, 0
	for fi < k || si < k {
		if len(out) >= opts.N {
			break
		}
		var pickFirst bool
		switch {
		case fi >= k:
			pickFirst = false
		case si >= k:
			pickFirst = true
		case len(out) < front:
			pickFirst = rng.Float64() < opts.Shape.ExploreBias
		default:
			pickFirst = rng.Float64() < 0.5
		}
		if pickFirst {
			out = append(out, picked[fi])
			fi++
		} else {
			out = append(out, seconds[si])
			si++
		}
	}
	for len(out) < opts.N {
		out = append(out, picked[rng.Intn(k)])
	}
	return out
}

// ratioOrder draws numUnique distinct recipients, marks the first third of
// them frequent, draws the repeats biased toward that frequent subset, then
// front-loads unvisited entries before shuffling the remainder in. Exact
// repeat counts are not guaranteed to equal N*ratio: the Repeat flag follows
// the materialized order, not the draw classification.
func ratioOrder(roster []string, opts Options, rng *rand.Rand) []string {
	numUnique := opts.N - int(float64(opts.N)*opts.RepeatRatio)
	if numUnique > len(roster) {
		numUnique = len(roster)
	}
	if numUnique < 1 {
		numUnique = 1
	}
	numRepeats := opts.N - numUnique

	uniquePool := make([]string, 0, numUnique)
	for _, i := range rng.Perm(len(roster))[:numUnique] {
		uniquePool = append(uniquePool, roster[i])
	}
	freqN := int(float64(numUnique) * opts.Shape.FrequentPoolFrac)
	if freqN < 1 {
		freqN = 1
	}

	repeatPool := make([]string, 0, numRepeats)
	for i := 0; i < numRepeats; i++ {
		if rng.Float64() < opts.Shape.FrequentBias {
			repeatPool = append(repeatPool, uniquePool[rng.Intn(freqN)])
		} else {
			repeatPool = append(repeatPool, uniquePool[rng.Intn(numUnique)])
		}
	}

	unvisited := make([]string, len(uniquePool))
	copy(unvisited, uniquePool)

	front := int(opts.Shape.FrontLoadFrac * float64(opts.N))
	out := make([]string, 0, opts.N)
	for len(out) < front && len(unvisited)+len(repeatPool) > 0 {
		preferUnvisited := rng.Float64() < opts.Shape.ExploreBias
		switch {
		case preferUnvisited && len(unvisited) > 0:
			out, unvisited = append(out, unvisited[0]), unvisited[1:]
		case !preferUnvisited && len(repeatPool) > 0:
			out, repeatPool = append(out, repeatPool[0]), repeatPool[1:]
		case len(unvisited) > 0:
			out, unvisited = append(out, unvisited[0]), unvisited[1:]
		default:
			out, repeatPool = append(out, repeatPool[0]), repeatPool[1:]
		}
	}

	rest := append(append([]string{}, unvisited...), repeatPool...)
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	return append(out, rest...)
}
