package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>
*/
import "C"

type CoordSeq struct {
	v *C.GEOSCoordSequence
}

func (this *Geos) CreateCoordSeq(size, dim uint32) (*CoordSeq, error) {
	result := C.GEOSCoordSeq_create_r(this.v, C.uint(size), C.uint(dim))
	if result == nil {
		return nil, CreateError("could not create CoordSeq")
	}
	return &CoordSeq{result}, nil
}

func (this *CoordSeq) SetXY(handle *Geos, i uint32, x, y float64) error {
	if C.GEOSCoordSeq_setX_r(handle.v, this.v, C.uint(i), C.double(x)) == 0 {
		return Error("unable to SetX")
	}
	if C.GEOSCoordSeq_setY_r(handle.v, this.v, C.uint(i), C.double(y)) == 0 {
		return Error("unable to SetY")
	}
	return nil
}

// AsPoint creates a point from the coord seq. The point takes ownership of
// the coord seq, even on error.
func (this *CoordSeq) AsPoint(handle *Geos) (*Geom, error) {
	geom := C.GEOSGeom_createPoint_r(handle.v, this.v)
	if geom == nil {
		return nil, CreateError("unable to create Point")
	}
	return &Geom{geom}, nil
}

// AsLineString creates a linestring from the coord seq. The linestring
// takes ownership of the coord seq.
func (this *CoordSeq) AsLineString(handle *Geos) (*Geom, error) {
	geom := C.GEOSGeom_createLineString_r(handle.v, this.v)
	if geom == nil {
		return nil, CreateError("unable to create LineString")
	}
	return &Geom{geom}, nil
}

func (this *Geos) DestroyCoordSeq(coordSeq *CoordSeq) {
	if coordSeq.v != nil {
		C.GEOSCoordSeq_destroy_r(this.v, coordSeq.v)
		coordSeq.v = nil
	} else {
		panic("double free?")
	}
}

// Point creates a new 2D point.
func (this *Geos) Point(x, y float64) (*Geom, error) {
	coordSeq, err := this.CreateCoordSeq(1, 2)
	if err != nil {
		return nil, err
	}
	if err := coordSeq.SetXY(this, 0, x, y); err != nil {
		this.DestroyCoordSeq(coordSeq)
		return nil, err
	}
	return coordSeq.AsPoint(this)
}

// LineString creates a new 2D linestring with the coordinates xs[i], ys[i].
func (this *Geos) LineString(xs, ys []float64) (*Geom, error) {
	if len(xs) != len(ys) {
		return nil, Error("coordinate length mismatch")
	}
	coordSeq, err := this.CreateCoordSeq(uint32(len(xs)), 2)
	if err != nil {
		return nil, err
	}
	for i := range xs {
		if err := coordSeq.SetXY(this, uint32(i), xs[i], ys[i]); err != nil {
			this.DestroyCoordSeq(coordSeq)
			return nil, err
		}
	}
	return coordSeq.AsLineString(this)
}

// Ordinates for Ordinate.
const (
	X = 0
	Y = 1
	Z = 2
)

// Ordinate returns the ordinate (X, Y or Z) of the idx-th coordinate of
// geom. Only points, linestrings and linear rings have a coordinate sequence.
func (this *Geos) Ordinate(geom *Geom, idx uint32, ordinate int) (float64, error) {
	cs := C.GEOSGeom_getCoordSeq_r(this.v, geom.v)
	if cs == nil {
		return 0, Error("geometry has no coordinate sequence")
	}
	var val C.double
	if C.GEOSCoordSeq_getOrdinate_r(this.v, cs, C.uint(idx), C.uint(ordinate), &val) == 0 {
		return 0, Error("unable to get ordinate")
	}
	return float64(val), nil
}
