// Package numgen draws uniformly distributed random integers and floats
// from an inclusive range.
package numgen

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrInvalidRange    = errors.New("min must be <= max")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Kind selects which sampling rule and result type applies.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

func ParseKind(s string) (Kind, error) {
	switch s {
	case "int":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	default:
		return 0, errors.WithMessagef(ErrInvalidArgument, "kind must be either %q or %q, got %q", "int", "float", s)
	}
}

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Int returns a uniform random integer in [min, max], both bounds inclusive.
func Int(min, max int64) (int64, error) {
	if min > max {
		return 0, errors.WithMessagef(ErrInvalidRange, "min=%d max=%d", min, max)
	}

	// Range width in uint64 so the full int64 range cannot overflow.
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(rand.Uint64()), nil
	}

	return min + int64(rand.Uint64N(span+1)), nil
}

// Float returns a uniform random value in [min, max]. The upper bound is
// reachable only with probability zero.
func Float(min, max float64) (float64, error) {
	if min > max {
		return 0, errors.WithMessagef(ErrInvalidRange, "min=%v max=%v", min, max)
	}

	return distuv.Uniform{Min: min, Max: max}.Rand(), nil
}

// Check validates a batch request without drawing anything.
func Check(kind Kind, count int, min, max float64) error {
	if kind != KindInt && kind != KindFloat {
		return errors.WithMessagef(ErrInvalidArgument, "unsupported kind: %d", int(kind))
	}
	if count < 1 {
		return errors.WithMessagef(ErrInvalidArgument, "count must be a positive integer, got %d", count)
	}
	if min > max {
		return errors.WithMessagef(ErrInvalidRange, "min=%v max=%v", min, max)
	}

	return nil
}

// Many returns count independent draws of the given kind, in generation
// order. Integer bounds are truncated from the float64 arguments.
func Many(kind Kind, count int, min, max float64) ([]float64, error) {
	if err := Check(kind, count, min, max); err != nil {
		return nil, err
	}

	out := make([]float64, 0, count)

	switch kind {
	case KindInt:
		imin, imax := int64(min), int64(max)
		for range count {
			v, err := Int(imin, imax)
			if err != nil {
				return nil, err
			}
			out = append(out, float64(v))
		}
	case KindFloat:
		for range count {
			v, err := Float(min, max)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}
