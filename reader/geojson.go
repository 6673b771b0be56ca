// Package reader loads input geometries for batch jobs.
package reader

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/omniscale/vgeos/log"
)

var logger = log.New("reader")

// ReadGeoJSON reads a FeatureCollection, a single Feature or a bare
// geometry. Features without geometry are rejected.
func ReadGeoJSON(r io.Reader) ([]geom.T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading geojson")
	}
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}

	switch probe.Type {
	case "FeatureCollection":
		fc := geojson.FeatureCollection{}
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, errors.Wrap(err, "parsing feature collection")
		}
		geoms := make([]geom.T, 0, len(fc.Features))
		for i, f := range fc.Features {
			if f == nil || f.Geometry == nil {
				return nil, errors.Errorf("feature %d without geometry", i)
			}
			geoms = append(geoms, f.Geometry)
		}
		logger.Printf("[debug] read %d features", len(geoms))
		return geoms, nil
	case "Feature":
		f := geojson.Feature{}
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "parsing feature")
		}
		if f.Geometry == nil {
			return nil, errors.New("feature without geometry")
		}
		return []geom.T{f.Geometry}, nil
	case "":
		return nil, errors.New("geojson object without type")
	}

	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", probe.Type)
	}
	return []geom.T{g}, nil
}
