package life

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxNeighbors is the number of neighbours every cell has on the torus.
const MaxNeighbors = 8

// ErrInvalidRange is returned for ranges whose minimum exceeds the maximum or
// whose text form cannot be parsed.
var ErrInvalidRange = errors.New("invalid neighbour range")

// Range is an inclusive neighbour-count interval.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range, bounds included.
func (r Range) Contains(n int) bool { return n >= r.Min && n <= r.Max }

// Clamp limits both bounds to the counts a cell can actually observe.
func (r Range) Clamp() Range {
	return Range{Min: clampCount(r.Min), Max: clampCount(r.Max)}
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxNeighbors {
		return MaxNeighbors
	}
	return n
}

// Validate rejects inverted ranges.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// String renders the range as "min-max".
func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Min, r.Max) }

// MarshalText implements encoding.TextMarshaler.
func (r Range) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText accepts "min-max", "min,max" or a single count.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRange parses "2-3", "2,3" or "3". Bounds are not clamped or ordered.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		lo, hi, found = strings.Cut(s, ",")
	}
	if !found {
		hi = lo
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return Range{Min: min, Max: max}, nil
}

// Rules pairs the survival and birth ranges of a generalized Life rule.
type Rules struct {
	Survive Range
	Birth   Range
}

// Classic returns Conway's rule: survive on 2 or 3, birth on exactly 3.
func Classic() Rules {
	return Rules{Survive: Range{Min: 2, Max: 3}, Birth: Range{Min: 3, Max: 3}}
}

// Validate checks both ranges.
func (r Rules) Validate() error {
	if err := r.Survive.Validate(); err != nil {
		return fmt.Errorf("survive: %w", err)
	}
	if err := r.Birth.Validate(); err != nil {
		return fmt.Errorf("birth: %w", err)
	}
	return nil
}

// String renders the rule as "S2-3/B3-3".
func (r Rules) String() string {
	return "S" + r.Survive.String() + "/B" + r.Birth.String()
}
