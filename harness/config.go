package harness

import (
	"errors"
	"fmt"

	"github.com/tuannh982/listset/utils/random"
)

var ErrInvalidItems = errors.New("items must be positive")

type Config struct {
	Items         int
	Seed          int64
	AddRange      random.Range[int]
	RemoveRange   random.Range[int]
	ContainsRange random.Range[int]
}

// DefaultConfig overlaps the phase ranges so each phase sees both present and
// absent keys.
func DefaultConfig() Config {
	return Config{
		Items:         100,
		AddRange:      random.Range[int]{Low: 1, High: 100},
		RemoveRange:   random.Range[int]{Low: 50, High: 100},
		ContainsRange: random.Range[int]{Low: 1, High: 50},
	}
}

func (c Config) Validate() error {
	if c.Items <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidItems, c.Items)
	}
	ranges := []struct {
		name string
		r    random.Range[int]
	}{
		{PhaseAdd, c.AddRange},
		{PhaseRemove, c.RemoveRange},
		{PhaseContains, c.ContainsRange},
	}
	for _, x := range ranges {
		if !x.r.Valid() {
			return fmt.Errorf("%s: %w: %s", x.name, random.ErrInvalidRange, x.r)
		}
	}
	return nil
}
