package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var ErrInvalidRange = errors.New("invalid range")

// Range is a closed interval [Low, High].
type Range[T constraints.Integer] struct {
	Low  T
	High T
}

func (r Range[T]) Valid() bool {
	return r.Low <= r.High
}

func (r Range[T]) Contains(v T) bool {
	return r.Low <= v && v <= r.High
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%d:%d", r.Low, r.High)
}

// UnmarshalText reads a range written as "low:high".
func (r *Range[T]) UnmarshalText(text []byte) error {
	s := string(text)
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("%w: %q, want low:high", ErrInvalidRange, s)
	}
	low, err := parseInteger[T](lo)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	high, err := parseInteger[T](hi)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	parsed := Range[T]{Low: low, High: high}
	if !parsed.Valid() {
		return fmt.Errorf("%w: %q, low > high", ErrInvalidRange, s)
	}
	*r = parsed
	return nil
}

func ParseRange(s string) (Range[int], error) {
	var r Range[int]
	err := r.UnmarshalText([]byte(s))
	return r, err
}

func parseInteger[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	if ^zero > 0 {
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return zero, err
		}
		if v := T(u); uint64(v) == u {
			return v, nil
		}
		return zero, fmt.Errorf("%s out of range", s)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return zero, err
	}
	if v := T(i); int64(v) == i {
		return v, nil
	}
	return zero, fmt.Errorf("%s out of range", s)
}

// Between draws uniformly from [low, high], low <= high. Any such range is
// accepted, including the whole domain of T.
func Between[T constraints.Integer](rnd *rand.Rand, low, high T) T {
	// width wraps modulo 2^64, which is exact for low <= high
	width := uint64(high) - uint64(low)
	if width == math.MaxUint64 {
		return low + T(rnd.Uint64())
	}
	return low + T(uint64n(rnd, width+1))
}

// uint64n draws uniformly from [0, n) by rejecting the biased tail.
func uint64n(rnd *rand.Rand, n uint64) uint64 {
	if n&(n-1) == 0 {
		return rnd.Uint64() & (n - 1)
	}
	limit := math.MaxUint64 - math.MaxUint64%n
	v := rnd.Uint64()
	for v >= limit {
		v = rnd.Uint64()
	}
	return v % n
}

func Draw[T constraints.Integer](rnd *rand.Rand, n int, r Range[T]) []T {
	arr := make([]T, 0, n)
	for i := 0; i < n; i++ {
		arr = append(arr, Between(rnd, r.Low, r.High))
	}
	return arr
}
