/*
Package vector evaluates GEOS operations on whole arrays of geometries.

An Array holds native GEOS handles in one contiguous slice. Arrays are
either owning roots or views:

	points, err := e.PointsFromXY(xs, ys) // owning root
	defer points.Release()

	sub, err := points.Slice(1, 3) // view, shares handles with points
	defer sub.Release()

Roots and views share a reference counted arena. The native geometries are
destroyed once, when the last wrapper of the arena is released. Releasing
a view never destroys handles that are still reachable through its root or
another view. Wrappers that are not released explicitly are released by a
finalizer.

Operations run on an Engine, which owns one GEOS context. An Engine must not
be used by multiple goroutines at once; use one Engine per goroutine for
parallel batches. Arrays themselves are not bound to an Engine.

Every batch operation validates its arguments (operation names, operand
types, array lengths) before the first native call. A native error aborts
the batch; all geometries allocated by the batch so far are destroyed and
no partial result is returned.
*/
package vector
