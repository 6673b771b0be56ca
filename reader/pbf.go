package reader

import (
	"context"
	"os"

	osm "github.com/omniscale/go-osm"
	"github.com/omniscale/go-osm/parser/pbf"
	"github.com/pkg/errors"
)

// ReadPBFNodes returns the longitude and latitude of every node in the
// PBF file at path. The order follows the file, except that blocks are
// decoded concurrently and may arrive out of order.
func ReadPBFNodes(ctx context.Context, path string) (xs, ys []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening pbf")
	}
	defer f.Close()

	coords := make(chan []osm.Node, 4)
	parser := pbf.New(f, pbf.Config{
		Coords: coords,
	})

	header, err := parser.Header()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading header of %s", path)
	}
	if header.Time.Unix() > 0 {
		logger.Printf("[info] reading %s with data till %v", path, header.Time.Local())
	}

	done := make(chan struct{})
	go func() {
		for nodes := range coords {
			for _, n := range nodes {
				xs = append(xs, n.Long)
				ys = append(ys, n.Lat)
			}
		}
		close(done)
	}()

	err = parser.Parse(ctx)
	<-done
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parsing %s", path)
	}
	logger.Printf("[info] read %d nodes from %s", len(xs), path)
	return xs, ys, nil
}
