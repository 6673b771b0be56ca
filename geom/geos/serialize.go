package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"
)

func (this *Geos) FromWkt(wkt string) (*Geom, error) {
	wktC := C.CString(wkt)
	defer C.free(unsafe.Pointer(wktC))
	geom := C.GEOSGeomFromWKT_r(this.v, wktC)
	if geom == nil {
		return nil, CreateError("unable to parse WKT")
	}
	return &Geom{geom}, nil
}

func (this *Geos) FromWkb(wkb []byte) (*Geom, error) {
	if len(wkb) == 0 {
		return nil, CreateError("empty WKB")
	}
	geom := C.GEOSGeomFromWKB_buf_r(this.v, (*C.uchar)(&wkb[0]), C.size_t(len(wkb)))
	if geom == nil {
		return nil, CreateError("unable to parse WKB")
	}
	return &Geom{geom}, nil
}

func (this *Geos) AsWkt(geom *Geom) string {
	str := C.GEOSGeomToWKT_r(this.v, geom.v)
	if str == nil {
		return ""
	}
	result := C.GoString(str)
	C.GEOSFree_r(this.v, unsafe.Pointer(str))
	return result
}

func (this *Geos) AsWkb(geom *Geom) ([]byte, error) {
	var size C.size_t
	buf := C.GEOSGeomToWKB_buf_r(this.v, geom.v, &size)
	if buf == nil {
		return nil, Error("unable to write WKB")
	}
	result := C.GoBytes(unsafe.Pointer(buf), C.int(size))
	C.GEOSFree_r(this.v, unsafe.Pointer(buf))
	return result, nil
}
