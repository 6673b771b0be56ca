package vector

import (
	"encoding/binary"
	"runtime"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/omniscale/vgeos/geom/geos"
)

// PointsFromXY creates an array of 2D points.
func (e *Engine) PointsFromXY(xs, ys []float64) (*Array, error) {
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d x and %d y values", len(xs), len(ys))
	}
	geoms := make([]geos.Geom, len(xs))
	for i := range xs {
		p, err := e.g.Point(xs[i], ys[i])
		if err != nil {
			e.g.DestroyAll(geoms)
			return nil, errors.Wrapf(err, "creating point %d", i)
		}
		geoms[i] = *p
	}
	return newOwningArray(geoms), nil
}

// LineString creates a single 2D linestring from at least two coordinates.
func (e *Engine) LineString(xs, ys []float64) (*Shape, error) {
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d x and %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, errors.Wrapf(ErrInvalidOperand, "linestring with %d coordinates", len(xs))
	}
	g, err := e.g.LineString(xs, ys)
	if err != nil {
		return nil, err
	}
	return newShape(g), nil
}

// CloneIntoArray creates an array with copies of all objects. The new array
// does not depend on the lifetime of objs.
func (e *Engine) CloneIntoArray(objs []Handler) (*Array, error) {
	src := make([]*geos.Geom, len(objs))
	for i, obj := range objs {
		g, err := handle(obj)
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		src[i] = g
	}
	defer runtime.KeepAlive(objs)

	geoms := make([]geos.Geom, len(src))
	for i, g := range src {
		c, err := e.g.Clone(g)
		if err != nil {
			e.g.DestroyAll(geoms)
			return nil, errors.Wrapf(err, "cloning object %d", i)
		}
		geoms[i] = *c
	}
	return newOwningArray(geoms), nil
}

// Copy returns a new owning array with copies of all elements of a. Use
// this to detach a view from its root.
func (e *Engine) Copy(a *Array) (*Array, error) {
	return e.mapGeoms(a, e.g.Clone, "copy")
}

func marshalWKB(t geom.T) ([]byte, error) {
	if t == nil {
		return nil, errors.Wrap(ErrInvalidOperand, "nil geometry")
	}
	buf, err := wkb.Marshal(t, binary.LittleEndian)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %T", t)
	}
	return buf, nil
}

// FromGeomT creates an array from go-geom geometries.
func (e *Engine) FromGeomT(ts []geom.T) (*Array, error) {
	wkbs := make([][]byte, len(ts))
	for i, t := range ts {
		buf, err := marshalWKB(t)
		if err != nil {
			return nil, errors.Wrapf(err, "geometry %d", i)
		}
		wkbs[i] = buf
	}
	return e.FromWKB(wkbs)
}

// FromWKB creates an array from WKB encoded geometries.
func (e *Engine) FromWKB(wkbs [][]byte) (*Array, error) {
	geoms := make([]geos.Geom, len(wkbs))
	for i, buf := range wkbs {
		g, err := e.g.FromWkb(buf)
		if err != nil {
			e.g.DestroyAll(geoms)
			return nil, errors.Wrapf(err, "geometry %d", i)
		}
		geoms[i] = *g
	}
	return newOwningArray(geoms), nil
}

// FromWKT creates an array from WKT strings.
func (e *Engine) FromWKT(wkts []string) (*Array, error) {
	geoms := make([]geos.Geom, len(wkts))
	for i, wkt := range wkts {
		g, err := e.g.FromWkt(wkt)
		if err != nil {
			e.g.DestroyAll(geoms)
			return nil, errors.Wrapf(err, "geometry %d", i)
		}
		geoms[i] = *g
	}
	return newOwningArray(geoms), nil
}

// ToWKB encodes all elements as WKB.
func (e *Engine) ToWKB(a *Array) ([][]byte, error) {
	defer runtime.KeepAlive(a)
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	result := make([][]byte, len(geoms))
	for i := range geoms {
		buf, err := e.g.AsWkb(&geoms[i])
		if err != nil {
			return nil, errors.Wrapf(err, "geometry %d", i)
		}
		result[i] = buf
	}
	return result, nil
}

// ToWKT encodes all elements as WKT.
func (e *Engine) ToWKT(a *Array) ([]string, error) {
	defer runtime.KeepAlive(a)
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	result := make([]string, len(geoms))
	for i := range geoms {
		result[i] = e.g.AsWkt(&geoms[i])
	}
	return result, nil
}

// ToGeomT converts all elements to go-geom geometries.
func (e *Engine) ToGeomT(a *Array) ([]geom.T, error) {
	defer runtime.KeepAlive(a)
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	result := make([]geom.T, len(geoms))
	for i := range geoms {
		t, err := e.geomT(&geoms[i])
		if err != nil {
			return nil, errors.Wrapf(err, "geometry %d", i)
		}
		result[i] = t
	}
	return result, nil
}

func (e *Engine) geomT(g *geos.Geom) (geom.T, error) {
	buf, err := e.g.AsWkb(g)
	if err != nil {
		return nil, err
	}
	t, err := wkb.Unmarshal(buf)
	if err != nil {
		return nil, errors.Wrap(err, "decoding WKB")
	}
	return t, nil
}
