package harness

import (
	"math/rand"
	"time"

	"github.com/tuannh982/listset/utils/collections"
	"github.com/tuannh982/listset/utils/observer"
	"github.com/tuannh982/listset/utils/random"
)

const (
	PhaseTest     = "test"
	PhaseAdd      = "test::add"
	PhaseRemove   = "test::remove"
	PhaseContains = "test::contains"
)

type phase struct {
	name   string
	keys   random.Range[int]
	action func(s collections.Set[int], key int) bool
}

// Harness replays one random workload against a subject set and an oracle
// and stops at the first divergence.
type Harness struct {
	cfg Config
	rnd *rand.Rand
	obs observer.Observer
}

// New validates cfg and seeds the workload generator. A zero seed is replaced
// by a time based one, which is then reported through Seed.
func New(cfg Config, obs observer.Observer) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if obs == nil {
		obs = observer.Nop
	}
	return &Harness{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(cfg.Seed)),
		obs: obs,
	}, nil
}

func (h *Harness) Seed() int64 {
	return h.cfg.Seed
}

func (h *Harness) phases() []phase {
	return []phase{
		{
			name: PhaseAdd,
			keys: h.cfg.AddRange,
			action: func(s collections.Set[int], key int) bool {
				return s.Add(key)
			},
		},
		{
			name: PhaseRemove,
			keys: h.cfg.RemoveRange,
			action: func(s collections.Set[int], key int) bool {
				return s.Remove(key)
			},
		},
		{
			name: PhaseContains,
			keys: h.cfg.ContainsRange,
			action: func(s collections.Set[int], key int) bool {
				return s.Contains(key)
			},
		},
	}
}

// Run returns a *MismatchError or *SizeMismatchError on the first divergence.
func (h *Harness) Run(subject, oracle collections.Set[int]) error {
	h.obs.Observe(observer.Event{Op: PhaseTest, Message: PhaseTest})
	for _, p := range h.phases() {
		if err := h.runPhase(p, subject, oracle); err != nil {
			return err
		}
	}
	return nil
}

func (h *Harness) runPhase(p phase, subject, oracle collections.Set[int]) error {
	h.obs.Observe(observer.Event{Op: p.name, Message: p.name})
	keys := random.Draw(h.rnd, h.cfg.Items, p.keys)
	for i, key := range keys {
		expected := p.action(oracle, key)
		actual := p.action(subject, key)
		if expected != actual {
			return &MismatchError{
				Seed:     h.cfg.Seed,
				Phase:    p.name,
				Index:    i,
				Key:      key,
				Expected: expected,
				Actual:   actual,
			}
		}
	}
	if oracle.Size() != subject.Size() {
		return &SizeMismatchError{
			Seed:     h.cfg.Seed,
			Phase:    p.name,
			Expected: oracle.Size(),
			Actual:   subject.Size(),
		}
	}
	return nil
}
