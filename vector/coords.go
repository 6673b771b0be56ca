package vector

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/geom/geos"
)

// Ordinate returns the X (0), Y (1) or Z (2) ordinate of the first
// coordinate of every element.
//
// The elements are expected to be points. This is not checked: for
// linestrings the first vertex is used and geometries without a coordinate
// sequence (e.g. polygons) fail with the GEOS error.
func (e *Engine) Ordinate(a *Array, ordinate int) ([]float64, error) {
	if ordinate < geos.X || ordinate > geos.Z {
		return nil, errors.Wrapf(ErrInvalidOperand, "ordinate %d", ordinate)
	}
	defer runtime.KeepAlive(a)
	geoms, err := a.handles()
	if err != nil {
		return nil, err
	}
	return collect(len(geoms), func(i int) (float64, error) {
		return e.g.Ordinate(&geoms[i], 0, ordinate)
	}, "ordinate")
}

func (e *Engine) X(a *Array) ([]float64, error) {
	return e.Ordinate(a, geos.X)
}

func (e *Engine) Y(a *Array) ([]float64, error) {
	return e.Ordinate(a, geos.Y)
}

func (e *Engine) Z(a *Array) ([]float64, error) {
	return e.Ordinate(a, geos.Z)
}
