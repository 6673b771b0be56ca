package reader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/omniscale/vgeos/proj"
	"github.com/omniscale/vgeos/vector"
)

const featureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "a"},
     "geometry": {"type": "Point", "coordinates": [1, 2]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "LineString", "coordinates": [[0, 0], [3, 4]]}}
  ]
}`

func TestReadGeoJSON(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		n     int
	}{
		{"collection", featureCollection, 2},
		{"feature", `{"type": "Feature", "properties": null, "geometry": {"type": "Point", "coordinates": [1, 2]}}`, 1},
		{"geometry", `{"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}`, 1},
		{"empty collection", `{"type": "FeatureCollection", "features": []}`, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			geoms, err := ReadGeoJSON(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Len(t, geoms, tc.n)
		})
	}

	geoms, err := ReadGeoJSON(strings.NewReader(featureCollection))
	require.NoError(t, err)
	p, ok := geoms[0].(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, []float64(p.Coords()))
}

func TestReadGeoJSONErrors(t *testing.T) {
	for _, input := range []string{
		`not json`,
		`{"coordinates": [1, 2]}`,
		`{"type": "Feature", "properties": {}, "geometry": null}`,
		`{"type": "Circle", "coordinates": [1, 2]}`,
	} {
		_, err := ReadGeoJSON(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.geojson")
	require.NoError(t, os.WriteFile(path, []byte(featureCollection), 0644))

	e := vector.NewEngine()
	defer e.Finish()

	a, err := Open(context.Background(), e, path, proj.WGS84)
	require.NoError(t, err)
	defer a.Release()
	assert.Equal(t, 2, a.Len())
	lengths, err := e.Length(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5}, lengths)

	merc, err := Open(context.Background(), e, path, proj.WebMercator)
	require.NoError(t, err)
	defer merc.Release()
	xs, err := e.X(merc)
	require.NoError(t, err)
	x, _ := proj.WgsToMerc(1, 2)
	assert.InDelta(t, x, xs[0], 1e-6)

	_, err = Open(context.Background(), e, path, 31467)
	assert.Error(t, err)
	_, err = Open(context.Background(), e, filepath.Join(dir, "input.csv"), proj.WGS84)
	assert.Error(t, err)
	_, err = Open(context.Background(), e, filepath.Join(dir, "missing.osm.pbf"), proj.WGS84)
	assert.Error(t, err)
}
