package vector

import (
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/geom/geos"
)

// arena owns the native geometries of a root array. It is shared by the
// root and all views and destroys the geometries when the last of them is
// released.
type arena struct {
	geoms []geos.Geom
	refs  int32
}

func (ar *arena) acquire() {
	atomic.AddInt32(&ar.refs, 1)
}

func (ar *arena) release() {
	if atomic.AddInt32(&ar.refs, -1) == 0 {
		geos.Release(ar.geoms)
	}
}

// Array is a fixed length array of geometries, either an owning root or a
// view of another array.
type Array struct {
	geoms    []geos.Geom
	arena    *arena
	parent   *Array
	released int32
}

// newOwningArray takes ownership of geoms.
func newOwningArray(geoms []geos.Geom) *Array {
	return newArray(&arena{geoms: geoms}, geoms, nil)
}

func newArray(ar *arena, geoms []geos.Geom, parent *Array) *Array {
	ar.acquire()
	a := &Array{geoms: geoms, arena: ar, parent: parent}
	runtime.SetFinalizer(a, (*Array).Release)
	return a
}

// Release drops the reference of this array to the shared geometries.
// Geometries are destroyed when the root and all views are released.
// Calling Release more than once is a no-op.
func (a *Array) Release() {
	if !atomic.CompareAndSwapInt32(&a.released, 0, 1) {
		return
	}
	runtime.SetFinalizer(a, nil)
	ar := a.arena
	a.geoms = nil
	a.parent = nil
	a.arena = nil
	ar.release()
}

// Released returns true after Release was called.
func (a *Array) Released() bool {
	return atomic.LoadInt32(&a.released) == 1
}

func (a *Array) Len() int {
	return len(a.geoms)
}

// IsView returns true if the array shares its geometries with a parent.
func (a *Array) IsView() bool {
	return a.parent != nil
}

// Parent returns the array this view was created from, or nil for roots
// and released arrays.
func (a *Array) Parent() *Array {
	return a.parent
}

// Root returns the owning array of a view, or a itself.
func (a *Array) Root() *Array {
	root := a
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// handles returns the geometries for read access. Callers need to keep a
// alive (runtime.KeepAlive) while they use the handles.
func (a *Array) handles() ([]geos.Geom, error) {
	if a.Released() {
		return nil, ErrReleased
	}
	return a.geoms, nil
}

// Range selects elements Start (inclusive) to Stop (exclusive) in
// Engine.Index.
type Range struct {
	Start, Stop int
}

// Slice returns a view of the elements start to stop (exclusive).
func (a *Array) Slice(start, stop int) (*Array, error) {
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	if start < 0 || stop < start || stop > len(geoms) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "slice [%d:%d] of %d elements", start, stop, len(geoms))
	}
	return newArray(a.arena, geoms[start:stop:stop], a), nil
}

// Take returns a view of the elements at indices. Negative indices count
// from the end. Indices may repeat.
func (a *Array) Take(indices []int) (*Array, error) {
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	selected := make([]geos.Geom, len(indices))
	for i, idx := range indices {
		n, err := normIndex(idx, len(geoms))
		if err != nil {
			return nil, err
		}
		selected[i] = geoms[n]
	}
	return newArray(a.arena, selected, a), nil
}

// Filter returns a view of all elements where mask is true.
func (a *Array) Filter(mask []bool) (*Array, error) {
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	if len(mask) != len(geoms) {
		return nil, errors.Wrapf(ErrLengthMismatch, "mask with %d values for %d elements", len(mask), len(geoms))
	}
	selected := make([]geos.Geom, 0, len(geoms))
	for i, ok := range mask {
		if ok {
			selected = append(selected, geoms[i])
		}
	}
	return newArray(a.arena, selected, a), nil
}

func normIndex(idx, n int) (int, error) {
	i := idx
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d of %d elements", idx, n)
	}
	return i, nil
}
