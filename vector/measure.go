package vector

import (
	"runtime"
	"strconv"

	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/geom/geos"
)

func (e *Engine) Area(a *Array) ([]float64, error) {
	return unaryValues(a, e.g.Area, "area")
}

func (e *Engine) Length(a *Array) ([]float64, error) {
	return unaryValues(a, e.g.Length, "length")
}

func (e *Engine) IsEmpty(a *Array) ([]bool, error) {
	return unaryValues(a, e.g.IsEmpty, "is_empty")
}

func (e *Engine) IsValid(a *Array) ([]bool, error) {
	return unaryValues(a, e.g.IsValid, "is_valid")
}

func unaryValues[T any](a *Array, fn func(*geos.Geom) (T, error), name string) ([]T, error) {
	defer runtime.KeepAlive(a)
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	return collect(len(geoms), func(i int) (T, error) {
		return fn(&geoms[i])
	}, name)
}

// Distance returns the distance of every element to other.
func (e *Engine) Distance(a *Array, other Handler) ([]float64, error) {
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
	return collect(len(geoms), func(i int) (float64, error) {
		return e.g.Distance(&geoms[i], og)
	}, "distance")
}

// VectorDistance returns the pairwise distances of a and b.
func (e *Engine) VectorDistance(a, b *Array) ([]float64, error) {
	defer runtime.KeepAlive(a)
	defer runtime.KeepAlive(b)
	ga, gb, err := pairHandles(a, b)
	if err != nil {
		return nil, err
	}
	return collect(len(ga), func(i int) (float64, error) {
		return e.g.Distance(&ga[i], &gb[i])
	}, "distance")
}

// GeoOp is a binary operation that creates a new geometry.
type GeoOp int

const (
	Intersection GeoOp = iota
	Union
	Difference
	SymDifference
)

var geoOpNames = map[GeoOp]string{
	Intersection:  "intersection",
	Union:         "union",
	Difference:    "difference",
	SymDifference: "symmetric_difference",
}

func (op GeoOp) String() string {
	if name, ok := geoOpNames[op]; ok {
		return name
	}
	return "GeoOp(" + strconv.Itoa(int(op)) + ")"
}

func ParseGeoOp(name string) (GeoOp, error) {
	for op, n := range geoOpNames {
		if n == name {
			return op, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedOp, "%q", name)
}

func (e *Engine) geoOpFunc(op GeoOp) (func(a, b *geos.Geom) (*geos.Geom, error), error) {
	switch op {
	case Intersection:
		return e.g.Intersection, nil
	case Union:
		return e.g.Union, nil
	case Difference:
		return e.g.Difference, nil
	case SymDifference:
		return e.g.SymDifference, nil
	}
	return nil, errors.Wrap(ErrUnsupportedOp, op.String())
}

// BinaryGeo returns op(a[i], other) for every element.
func (e *Engine) BinaryGeo(op GeoOp, a *Array, other Handler) (*Array, error) {
	fn, err := e.geoOpFunc(op)
	if err != nil {
		return nil, err
	}
	og, err := handle(other)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(other)
	return e.mapGeoms(a, func(g *geos.Geom) (*geos.Geom, error) {
		return fn(g, og)
	}, op.String())
}

// VectorBinaryGeo returns op(a[i], b[i]) for every pair of elements.
func (e *Engine) VectorBinaryGeo(op GeoOp, a, b *Array) (*Array, error) {
	fn, err := e.geoOpFunc(op)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(a)
	defer runtime.KeepAlive(b)
	ga, gb, err := pairHandles(a, b)
	if err != nil {
		return nil, err
	}
	out := make([]geos.Geom, len(ga))
	for i := range ga {
		r, err := fn(&ga[i], &gb[i])
		if err != nil {
			e.g.DestroyAll(out)
			return nil, errors.Wrapf(err, "%s of element %d", op, i)
		}
		out[i] = *r
	}
	return newOwningArray(out), nil
}
