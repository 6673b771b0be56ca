package vector

import (
	"runtime"
	"strconv"

	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/geom/geos"
)

// Predicate is a binary spatial relation.
type Predicate int

const (
	Contains Predicate = iota
	Disjoint
	Equals
	Intersects
	Touches
	Crosses
	Within
	Overlaps
	Covers
	CoveredBy
	// ContainsProperly is only available as prepared predicate.
	ContainsProperly
)

var predicateNames = map[Predicate]string{
	Contains:         "contains",
	Disjoint:         "disjoint",
	Equals:           "equals",
	Intersects:       "intersects",
	Touches:          "touches",
	Crosses:          "crosses",
	Within:           "within",
	Overlaps:         "overlaps",
	Covers:           "covers",
	CoveredBy:        "covered_by",
	ContainsProperly: "contains_properly",
}

func (p Predicate) String() string {
	if name, ok := predicateNames[p]; ok {
		return name
	}
	return "Predicate(" + strconv.Itoa(int(p)) + ")"
}

// ParsePredicate returns the Predicate for names like "covered_by".
func ParsePredicate(name string) (Predicate, error) {
	for p, n := range predicateNames {
		if n == name {
			return p, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedPredicate, "%q", name)
}

// Converse returns the predicate q with q(b, a) == p(a, b). ContainsProperly
// has no plain converse.
func (p Predicate) Converse() (Predicate, error) {
	switch p {
	case Contains:
		return Within, nil
	case Within:
		return Contains, nil
	case Covers:
		return CoveredBy, nil
	case CoveredBy:
		return Covers, nil
	case Disjoint, Equals, Intersects, Touches, Crosses, Overlaps:
		return p, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedPredicate, "converse of %s", p)
}

type predicateFunc func(a, b *geos.Geom) (bool, error)

func (e *Engine) predicateFunc(p Predicate) (predicateFunc, error) {
	switch p {
	case Contains:
		return e.g.Contains, nil
	case Disjoint:
		return e.g.Disjoint, nil
	case Equals:
		return e.g.Equals, nil
	case Intersects:
		return e.g.Intersects, nil
	case Touches:
		return e.g.Touches, nil
	case Crosses:
		return e.g.Crosses, nil
	case Within:
		return e.g.Within, nil
	case Overlaps:
		return e.g.Overlaps, nil
	case Covers:
		return e.g.Covers, nil
	case CoveredBy:
		return e.g.CoveredBy, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedPredicate, "%s is not available as plain predicate", p)
}

// Predicate tests every element against other: result[i] = p(a[i], other).
func (e *Engine) Predicate(p Predicate, a *Array, other Handler) ([]bool, error) {
	fn, err := e.predicateFunc(p)
	if err != nil {
		return nil, err
	}
	og, err := handle(other)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(other)
	defer runtime.KeepAlive(a)
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}

	return collect(len(geoms), func(i int) (bool, error) {
		return fn(&geoms[i], og)
	}, p.String())
}

// VectorPredicate tests the elements of a and b pairwise:
// result[i] = p(a[i], b[i]).
func (e *Engine) VectorPredicate(p Predicate, a, b *Array) ([]bool, error) {
	fn, err := e.predicateFunc(p)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(a)
	defer runtime.KeepAlive(b)
	ga, gb, err := pairHandles(a, b)
	if err != nil {
		return nil, err
	}

	return collect(len(ga), func(i int) (bool, error) {
		return fn(&ga[i], &gb[i])
	}, p.String())
}

// ApplyPredicate is Predicate for predicate names, see ParsePredicate.
func (e *Engine) ApplyPredicate(name string, a *Array, other Handler) ([]bool, error) {
	p, err := ParsePredicate(name)
	if err != nil {
		return nil, err
	}
	return e.Predicate(p, a, other)
}

func pairHandles(a, b *Array) ([]geos.Geom, []geos.Geom, error) {
	ga, err := a.handles()
	if err != nil {
		return nil, nil, err
	}
	gb, err := b.handles()
	if err != nil {
		return nil, nil, err
	}
	if len(ga) != len(gb) {
		return nil, nil, errors.Wrapf(ErrLengthMismatch, "arrays with %d and %d elements", len(ga), len(gb))
	}
	return ga, gb, nil
}

// collect calls fn for 0 to n-1. It stops at the first error and returns
// no results in that case.
func collect[T any](n int, fn func(i int) (T, error), name string) ([]T, error) {
	result := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := fn(i)
		if err != nil {
			return nil, errors.Wrapf(err, "%s of element %d", name, i)
		}
		result[i] = v
	}
	return result, nil
}
