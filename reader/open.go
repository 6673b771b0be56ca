package reader

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/proj"
	"github.com/omniscale/vgeos/vector"
)

// Open loads the geometries of a .geojson/.json or .pbf file into a new
// owning array of e. PBF files result in one point per node. Input
// coordinates are WGS84; srid proj.WebMercator reprojects them.
func Open(ctx context.Context, e *vector.Engine, path string, srid int) (*vector.Array, error) {
	if srid != proj.WGS84 && srid != proj.WebMercator {
		return nil, errors.Errorf("unsupported srid %d", srid)
	}
	toMerc := srid == proj.WebMercator

	switch {
	case strings.HasSuffix(path, ".pbf"):
		xs, ys, err := ReadPBFNodes(ctx, path)
		if err != nil {
			return nil, err
		}
		if toMerc {
			proj.CoordsToMerc(xs, ys)
		}
		return e.PointsFromXY(xs, ys)
	case strings.HasSuffix(path, ".geojson"), strings.HasSuffix(path, ".json"):
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		geoms, err := ReadGeoJSON(f)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		if toMerc {
			for _, g := range geoms {
				proj.GeomToMerc(g)
			}
		}
		return e.FromGeomT(geoms)
	}
	return nil, errors.Errorf("unknown input format of %s", path)
}
