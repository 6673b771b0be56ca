package vector

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/geom/geos"
)

type preparedFunc func(a *geos.PreparedGeom, b *geos.Geom) (bool, error)

func (e *Engine) preparedFunc(p Predicate) (preparedFunc, error) {
	switch p {
	case Contains:
		return e.g.PreparedContains, nil
	case ContainsProperly:
		return e.g.PreparedContainsProperly, nil
	case CoveredBy:
		return e.g.PreparedCoveredBy, nil
	case Covers:
		return e.g.PreparedCovers, nil
	case Crosses:
		return e.g.PreparedCrosses, nil
	case Disjoint:
		return e.g.PreparedDisjoint, nil
	case Intersects:
		return e.g.PreparedIntersects, nil
	case Overlaps:
		return e.g.PreparedOverlaps, nil
	case Touches:
		return e.g.PreparedTouches, nil
	case Within:
		return e.g.PreparedWithin, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedPredicate, "%s is not available as prepared predicate", p)
}

// Prepared is a prepared geometry for repeated predicate tests. It is bound
// to the Engine that created it. It owns a copy of the source geometry and
// the prepared index on top of it. Both are released by Close, or by the
// garbage collector if Close is never called.
type Prepared struct {
	e      *Engine
	source []geos.Geom
	p      *geos.PreparedGeom
}

// Prepare prepares a copy of other.
func (e *Engine) Prepare(other Handler) (*Prepared, error) {
	og, err := handle(other)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(other)
	c, err := e.g.Clone(og)
	if err != nil {
		return nil, err
	}
	source := []geos.Geom{*c}
	p, err := e.g.Prepare(&source[0])
	if err != nil {
		geos.Release(source)
		return nil, err
	}
	prep := &Prepared{e: e, source: source, p: p}
	runtime.SetFinalizer(prep, (*Prepared).Close)
	return prep, nil
}

// Close destroys the prepared geometry and its source. Close uses the shared
// GEOS context and is safe to call after Engine.Finish. Closing twice is a
// no-op.
func (p *Prepared) Close() {
	runtime.SetFinalizer(p, nil)
	if p.p == nil {
		return
	}
	// the prepared index references the source, destroy it first
	geos.ReleasePrepared(p.p)
	p.p = nil
	geos.Release(p.source)
}

// PreparedPredicate prepares other once and tests it against every
// element: result[i] = p(other, a[i]). Note the reversed operands compared
// to Predicate.
func (e *Engine) PreparedPredicate(p Predicate, a *Array, other Handler) ([]bool, error) {
	if _, err := e.preparedFunc(p); err != nil {
		return nil, err
	}
	og, err := handle(other)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(other)
	if _, err := a.handles(); err != nil {
		return nil, err
	}

	prep, err := e.g.Prepare(og)
	if err != nil {
		return nil, err
	}
	defer e.g.PreparedDestroy(prep)
	return e.preparedPredicate(p, a, prep)
}

// PreparedPredicateWith is PreparedPredicate for a geometry prepared with
// Prepare. prep is not closed.
func (e *Engine) PreparedPredicateWith(p Predicate, a *Array, prep *Prepared) ([]bool, error) {
	if prep == nil || prep.p == nil {
		return nil, errors.Wrap(ErrInvalidOperand, "prepared geometry is closed")
	}
	if prep.e != e {
		return nil, errors.Wrap(ErrInvalidOperand, "prepared geometry belongs to another engine")
	}
	defer runtime.KeepAlive(prep)
	return e.preparedPredicate(p, a, prep.p)
}

func (e *Engine) preparedPredicate(p Predicate, a *Array, prep *geos.PreparedGeom) ([]bool, error) {
	fn, err := e.preparedFunc(p)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(a)
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	return collect(len(geoms), func(i int) (bool, error) {
		return fn(prep, &geoms[i])
	}, "prepared "+p.String())
}

// RContains returns other.contains(a[i]) for each element.
func (e *Engine) RContains(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(Contains, a, other)
}

func (e *Engine) RContainsProperly(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(ContainsProperly, a, other)
}

func (e *Engine) RCovers(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(Covers, a, other)
}

func (e *Engine) RCoveredBy(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(CoveredBy, a, other)
}

func (e *Engine) RCrosses(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(Crosses, a, other)
}

func (e *Engine) RDisjoint(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(Disjoint, a, other)
}

func (e *Engine) RIntersects(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(Intersects, a, other)
}

func (e *Engine) ROverlaps(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(Overlaps, a, other)
}

func (e *Engine) RTouches(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(Touches, a, other)
}

func (e *Engine) RWithin(a *Array, other Handler) ([]bool, error) {
	return e.PreparedPredicate(Within, a, other)
}
