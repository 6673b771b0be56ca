package vector

import (
	"runtime"
	"strconv"

	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/geom/geos"
)

// UnaryOp is an operation that creates one new geometry per element.
type UnaryOp int

const (
	Boundary UnaryOp = iota
	Centroid
	ConvexHull
	Envelope
	RepresentativePoint
)

var unaryOpNames = map[UnaryOp]string{
	Boundary:            "boundary",
	Centroid:            "centroid",
	ConvexHull:          "convex_hull",
	Envelope:            "envelope",
	RepresentativePoint: "representative_point",
}

func (op UnaryOp) String() string {
	if name, ok := unaryOpNames[op]; ok {
		return name
	}
	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}

// ParseUnaryOp returns the UnaryOp for names like "convex_hull".
func ParseUnaryOp(name string) (UnaryOp, error) {
	for op, n := range unaryOpNames {
		if n == name {
			return op, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedOp, "%q", name)
}

type geomFunc func(*geos.Geom) (*geos.Geom, error)

func (e *Engine) unaryFunc(op UnaryOp) (geomFunc, error) {
	switch op {
	case Boundary:
		return e.g.Boundary, nil
	case Centroid:
		return e.g.Centroid, nil
	case ConvexHull:
		return e.g.ConvexHull, nil
	case Envelope:
		return e.g.Envelope, nil
	case RepresentativePoint:
		return e.g.PointOnSurface, nil
	}
	return nil, errors.Wrap(ErrUnsupportedOp, op.String())
}

// Unary applies op to every element and returns the results as a new
// owning array.
func (e *Engine) Unary(op UnaryOp, a *Array) (*Array, error) {
	fn, err := e.unaryFunc(op)
	if err != nil {
		return nil, err
	}
	return e.mapGeoms(a, fn, op.String())
}

// ApplyUnary is Unary for operation names, see ParseUnaryOp.
func (e *Engine) ApplyUnary(name string, a *Array) (*Array, error) {
	op, err := ParseUnaryOp(name)
	if err != nil {
		return nil, err
	}
	return e.Unary(op, a)
}

// CapStyle of buffered line ends.
type CapStyle int

const (
	CapRound  = CapStyle(geos.CapRound)
	CapFlat   = CapStyle(geos.CapFlat)
	CapSquare = CapStyle(geos.CapSquare)
)

// JoinStyle of buffered line corners.
type JoinStyle int

const (
	JoinRound = JoinStyle(geos.JoinRound)
	JoinMitre = JoinStyle(geos.JoinMitre)
	JoinBevel = JoinStyle(geos.JoinBevel)
)

func ParseCapStyle(name string) (CapStyle, error) {
	switch name {
	case "round", "":
		return CapRound, nil
	case "flat":
		return CapFlat, nil
	case "square":
		return CapSquare, nil
	}
	return 0, errors.Wrapf(ErrInvalidOperand, "unknown cap style %q", name)
}

func ParseJoinStyle(name string) (JoinStyle, error) {
	switch name {
	case "round", "":
		return JoinRound, nil
	case "mitre", "miter":
		return JoinMitre, nil
	case "bevel":
		return JoinBevel, nil
	}
	return 0, errors.Wrapf(ErrInvalidOperand, "unknown join style %q", name)
}

type BufferParams struct {
	Distance float64
	// Resolution is the number of segments per quarter circle.
	Resolution int
	CapStyle   CapStyle
	JoinStyle  JoinStyle
	MitreLimit float64
}

// DefaultBufferParams returns round buffer parameters for distance.
func DefaultBufferParams(distance float64) BufferParams {
	return BufferParams{
		Distance:   distance,
		Resolution: 16,
		CapStyle:   CapRound,
		JoinStyle:  JoinRound,
		MitreLimit: 5.0,
	}
}

// Buffer buffers every element. The parameters are passed unchanged to
// GEOS, which also validates them.
func (e *Engine) Buffer(a *Array, p BufferParams) (*Array, error) {
	return e.mapGeoms(a, func(g *geos.Geom) (*geos.Geom, error) {
		return e.g.BufferWithStyle(g, p.Distance, p.Resolution, int(p.CapStyle), int(p.JoinStyle), p.MitreLimit)
	}, "buffer")
}

// mapGeoms calls fn for every element and collects the new geometries in
// an owning array. All new geometries are destroyed if fn fails.
func (e *Engine) mapGeoms(a *Array, fn geomFunc, name string) (*Array, error) {
	defer runtime.KeepAlive(a)
	src, err := a.handles()
	if err != nil {
		return nil, err
	}
	out := make([]geos.Geom, len(src))
	for i := range src {
		r, err := fn(&src[i])
		if err != nil {
			e.g.DestroyAll(out)
			return nil, errors.Wrapf(err, "%s of element %d", name, i)
		}
		out[i] = *r
	}
	return newOwningArray(out), nil
}
