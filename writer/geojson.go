// Package writer serializes result arrays.
package writer

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/omniscale/vgeos/vector"
)

// WriteGeoJSON writes geoms as a FeatureCollection. Each feature carries
// its position in the input as the index property.
func WriteGeoJSON(w io.Writer, geoms []geom.T) error {
	fc := geojson.FeatureCollection{
		Features: make([]*geojson.Feature, len(geoms)),
	}
	for i, g := range geoms {
		fc.Features[i] = &geojson.Feature{
			Geometry:   g,
			Properties: map[string]interface{}{"index": i},
		}
	}
	data, err := json.Marshal(&fc)
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "writing geojson")
	}
	return nil
}

// WriteArray writes all elements of a as GeoJSON.
func WriteArray(w io.Writer, e *vector.Engine, a *vector.Array) error {
	geoms, err := e.ToGeomT(a)
	if err != nil {
		return err
	}
	return WriteGeoJSON(w, geoms)
}
