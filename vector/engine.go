package vector

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/omniscale/vgeos/geom/geos"
)

// Engine runs batch operations with its own GEOS context.
type Engine struct {
	g *geos.Geos
}

func NewEngine() *Engine {
	return &Engine{g: geos.NewGeos()}
}

// Finish releases the GEOS context. Arrays created by the engine stay valid.
func (e *Engine) Finish() {
	e.g.Finish()
}

// Geos returns the GEOS context of the engine.
func (e *Engine) Geos() *geos.Geos {
	return e.g
}

// Handler is implemented by geometry objects that carry a native handle.
type Handler interface {
	Geom() *geos.Geom
}

// Shape is a single geometry that owns its native handle.
type Shape struct {
	geoms []geos.Geom
}

func newShape(g *geos.Geom) *Shape {
	s := &Shape{geoms: []geos.Geom{*g}}
	runtime.SetFinalizer(s, (*Shape).Close)
	return s
}

func (s *Shape) Geom() *geos.Geom {
	if s == nil || len(s.geoms) == 0 {
		return nil
	}
	return &s.geoms[0]
}

// Close destroys the geometry. Closing twice is a no-op.
func (s *Shape) Close() {
	runtime.SetFinalizer(s, nil)
	geos.Release(s.geoms)
}

// handle returns the native geometry of other.
func handle(other Handler) (*geos.Geom, error) {
	if other == nil {
		return nil, errors.Wrap(ErrInvalidOperand, "nil geometry")
	}
	g := other.Geom()
	if g == nil || g.IsNil() {
		return nil, errors.Wrapf(ErrInvalidOperand, "%T has no geometry handle", other)
	}
	return g, nil
}

func (e *Engine) Point(x, y float64) (*Shape, error) {
	p, err := e.g.Point(x, y)
	if err != nil {
		return nil, err
	}
	return newShape(p), nil
}

func (e *Engine) ShapeFromWKT(wkt string) (*Shape, error) {
	g, err := e.g.FromWkt(wkt)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", wkt)
	}
	return newShape(g), nil
}

// GeomT converts the geometry of h to a go-geom geometry.
func (e *Engine) GeomT(h Handler) (geom.T, error) {
	g, err := handle(h)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(h)
	return e.geomT(g)
}

// WKT returns the WKT of the geometry of h.
func (e *Engine) WKT(h Handler) (string, error) {
	g, err := handle(h)
	if err != nil {
		return "", err
	}
	defer runtime.KeepAlive(h)
	return e.g.AsWkt(g), nil
}

// Get returns a copy of the i-th element. Negative indices count from the
// end. The copy is independent of a and needs to be closed by the caller.
func (e *Engine) Get(a *Array, i int) (*Shape, error) {
	defer runtime.KeepAlive(a)
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	n, err := normIndex(i, len(geoms))
	if err != nil {
		return nil, err
	}
	c, err := e.g.Clone(&geoms[n])
	if err != nil {
		return nil, err
	}
	return newShape(c), nil
}

// Index returns a *Shape copy for int keys and an *Array view for Range,
// []int and []bool keys.
func (e *Engine) Index(a *Array, key interface{}) (interface{}, error) {
	switch k := key.(type) {
	case int:
		return e.Get(a, k)
	case Range:
		return a.Slice(k.Start, k.Stop)
	case []int:
		return a.Take(k)
	case []bool:
		return a.Filter(k)
	}
	return nil, errors.Wrapf(ErrInvalidOperand, "unsupported index type %T", key)
}
