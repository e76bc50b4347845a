package regression

import "fmt"

type lagMode int

const (
	lagUnset lagMode = iota
	lagList
	lagUpTo
	lagMirror
	lagCurrent
)

// LagSpec selects which time offsets of a variable enter the feature table.
// The zero value configures no lags for that variable.
type LagSpec struct {
	mode    lagMode
	upTo    int
	offsets []int
}

// Lags selects an explicit set of offsets, kept in the given order. Target
// offsets must be strictly positive; exogenous offsets may include 0.
func Lags(offsets ...int) LagSpec {
	out := make([]int, len(offsets))
	copy(out, offsets)
	return LagSpec{mode: lagList, offsets: out}
}

// LagsUpTo selects the contiguous offsets 1 through k.
func LagsUpTo(k int) LagSpec {
	return LagSpec{mode: lagUpTo, upTo: k}
}

// SameAsTarget copies the resolved target lag set onto the exogenous
// variables. Only valid for Options.ExogLags, and requires Options.Lags to
// be set.
func SameAsTarget() LagSpec {
	return LagSpec{mode: lagMirror}
}

// CurrentOnly selects offset 0 alone, so each step is predicted from the
// exogenous values of that same step. Only valid for Options.ExogLags.
func CurrentOnly() LagSpec {
	return LagSpec{mode: lagCurrent}
}

// IsZero reports whether no lags are configured.
func (l LagSpec) IsZero() bool {
	return l.mode == lagUnset
}

// resolveTarget expands the selection into target offsets, which must be
// strictly positive.
func (l LagSpec) resolveTarget() ([]int, error) {
	switch l.mode {
	case lagUnset:
		return nil, nil
	case lagList:
		if len(l.offsets) == 0 {
			return nil, fmt.Errorf("%w: Lags requires at least one offset", ErrConfiguration)
		}
		if err := checkOffsets(l.offsets, 1, "target"); err != nil {
			return nil, err
		}
		return append([]int(nil), l.offsets...), nil
	case lagUpTo:
		if l.upTo < 1 {
			return nil, fmt.Errorf("%w: LagsUpTo requires k >= 1, got %d", ErrConfiguration, l.upTo)
		}
		return contiguous(l.upTo), nil
	default:
		return nil, fmt.Errorf("%w: SameAsTarget and CurrentOnly are only valid for exogenous lags", ErrConfiguration)
	}
}

// resolveExog expands the selection into exogenous offsets, which must be
// non-negative. targetLags is consulted for SameAsTarget.
func (l LagSpec) resolveExog(targetLags []int) ([]int, error) {
	switch l.mode {
	case lagUnset:
		return nil, nil
	case lagList:
		if len(l.offsets) == 0 {
			return nil, fmt.Errorf("%w: Lags requires at least one offset", ErrConfiguration)
		}
		if err := checkOffsets(l.offsets, 0, "exogenous"); err != nil {
			return nil, err
		}
		return append([]int(nil), l.offsets...), nil
	case lagUpTo:
		if l.upTo < 1 {
			return nil, fmt.Errorf("%w: LagsUpTo requires k >= 1, got %d", ErrConfiguration, l.upTo)
		}
		return contiguous(l.upTo), nil
	case lagMirror:
		if len(targetLags) == 0 {
			return nil, fmt.Errorf("%w: SameAsTarget requires Lags to be set", ErrConfiguration)
		}
		return append([]int(nil), targetLags...), nil
	case lagCurrent:
		return []int{0}, nil
	}
	return nil, fmt.Errorf("%w: unknown lag specification", ErrConfiguration)
}

// checkOffsets rejects offsets below min and duplicates.
func checkOffsets(offsets []int, min int, kind string) error {
	seen := make(map[int]bool, len(offsets))
	for _, off := range offsets {
		if off < min {
			if min > 0 {
				return fmt.Errorf("%w: %s lags must be strictly positive, got %d", ErrConfiguration, kind, off)
			}
			return fmt.Errorf("%w: %s lags must be non-negative, got %d", ErrConfiguration, kind, off)
		}
		if seen[off] {
			return fmt.Errorf("%w: duplicate %s lag %d", ErrConfiguration, kind, off)
		}
		seen[off] = true
	}
	return nil
}

// contiguous returns {1, ..., k}.
func contiguous(k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
