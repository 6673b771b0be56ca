package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>

extern void goLogString(char *msg);
extern void debug_wrap(const char *fmt, ...);
extern GEOSContextHandle_t initGEOS_r_debug();
*/
import "C"

import (
	"sync"

	"github.com/omniscale/vgeos/log"
)

var logger = log.New("geos")

//export goLogString
func goLogString(msg *C.char) {
	logger.Printf("[warn] %s", C.GoString(msg))
}

// Geos is a reentrant GEOS context. A context must only be used by one
// goroutine at a time.
type Geos struct {
	v C.GEOSContextHandle_t
}

// Geom is an opaque handle to a native geometry.
type Geom struct {
	v *C.GEOSGeometry
}

// IsNil returns true if the handle does not reference a geometry.
func (g Geom) IsNil() bool {
	return g.v == nil
}

type CreateError string
type Error string

func (e Error) Error() string {
	return string(e)
}

func (e CreateError) Error() string {
	return string(e)
}

func NewGeos() *Geos {
	geos := &Geos{}
	geos.v = C.initGEOS_r_debug()
	return geos
}

func (this *Geos) Finish() {
	if this.v != nil {
		C.finishGEOS_r(this.v)
		this.v = nil
	}
}

/*
Process wide GEOS context for destroying geometries outside of an owning
context, e.g. in finalizers or when the last reference to an array goes
away. The context is created on first use and can be torn down with
Teardown. GEOS contexts are not thread safe, so every use is serialized.
*/
var shared struct {
	mu sync.Mutex
	g  *Geos
}

func sharedGeos() *Geos {
	if shared.g == nil {
		shared.g = NewGeos()
	}
	return shared.g
}

// Release destroys all non-nil geometries with the shared context.
// Each handle is set to nil after destruction, so releasing the same slice
// again is a no-op. Safe for concurrent use.
func Release(geoms []Geom) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	g := sharedGeos()
	for i := range geoms {
		if geoms[i].v != nil {
			C.GEOSGeom_destroy_r(g.v, geoms[i].v)
			geoms[i].v = nil
		}
	}
}

// ReleasePrepared destroys p with the shared context and sets its handle to
// nil. Releasing an already released geometry is a no-op. Safe for
// concurrent use.
func ReleasePrepared(p *PreparedGeom) {
	if p == nil {
		return
	}
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if p.v != nil {
		C.GEOSPreparedGeom_destroy_r(sharedGeos().v, p.v)
		p.v = nil
	}
}

// Teardown finishes the shared context. The next Release creates a new one.
func Teardown() {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.g != nil {
		shared.g.Finish()
		shared.g = nil
	}
}

func (this *Geos) Clone(geom *Geom) (*Geom, error) {
	if geom == nil || geom.v == nil {
		return nil, Error("unable to clone nil geometry")
	}
	result := C.GEOSGeom_clone_r(this.v, geom.v)
	if result == nil {
		return nil, CreateError("unable to clone geometry")
	}
	return &Geom{result}, nil
}

func (this *Geos) Destroy(geom *Geom) {
	if geom.v != nil {
		C.GEOSGeom_destroy_r(this.v, geom.v)
		geom.v = nil
	} else {
		panic("double free?")
	}
}

// DestroyAll destroys every non-nil geometry and ignores nil handles.
func (this *Geos) DestroyAll(geoms []Geom) {
	for i := range geoms {
		if geoms[i].v != nil {
			this.Destroy(&geoms[i])
		}
	}
}

// Geometry type ids as returned by TypeID.
const (
	PointType              = int(C.GEOS_POINT)
	LineStringType         = int(C.GEOS_LINESTRING)
	LinearRingType         = int(C.GEOS_LINEARRING)
	PolygonType            = int(C.GEOS_POLYGON)
	MultiPointType         = int(C.GEOS_MULTIPOINT)
	MultiLineStringType    = int(C.GEOS_MULTILINESTRING)
	MultiPolygonType       = int(C.GEOS_MULTIPOLYGON)
	GeometryCollectionType = int(C.GEOS_GEOMETRYCOLLECTION)
)

func (this *Geos) TypeID(geom *Geom) (int, error) {
	id := C.GEOSGeomTypeId_r(this.v, geom.v)
	if id == -1 {
		return -1, Error("unable to get geometry type")
	}
	return int(id), nil
}

func (this *Geos) IsEmpty(geom *Geom) (bool, error) {
	return boolResult(C.GEOSisEmpty_r(this.v, geom.v), "isEmpty")
}

func (this *Geos) IsValid(geom *Geom) (bool, error) {
	return boolResult(C.GEOSisValid_r(this.v, geom.v), "isValid")
}

func (this *Geos) Area(geom *Geom) (float64, error) {
	var area C.double
	if ret := C.GEOSArea_r(this.v, geom.v, &area); ret != 1 {
		return 0, Error("unable to compute area")
	}
	return float64(area), nil
}

func (this *Geos) Length(geom *Geom) (float64, error) {
	var length C.double
	if ret := C.GEOSLength_r(this.v, geom.v, &length); ret != 1 {
		return 0, Error("unable to compute length")
	}
	return float64(length), nil
}

func (this *Geos) Distance(a, b *Geom) (float64, error) {
	var dist C.double
	if ret := C.GEOSDistance_r(this.v, a.v, b.v, &dist); ret != 1 {
		return 0, Error("unable to compute distance")
	}
	return float64(dist), nil
}

// boolResult converts the char results of GEOS predicates.
// 2 signals an exception, which GEOS already passed to the error handler.
func boolResult(result C.char, name string) (bool, error) {
	switch result {
	case 1:
		return true, nil
	case 0:
		return false, nil
	}
	return false, Error("GEOS exception in " + name)
}
