// Package job runs a configured pipeline of vector operations.
package job

import (
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/omniscale/vgeos/cache"
	"github.com/omniscale/vgeos/config"
	"github.com/omniscale/vgeos/database/postgis"
	"github.com/omniscale/vgeos/log"
	"github.com/omniscale/vgeos/reader"
	"github.com/omniscale/vgeos/stats"
	"github.com/omniscale/vgeos/vector"
	"github.com/omniscale/vgeos/writer"
)

var logger = log.New("job")

// Run reads the input, applies all steps and writes the result to every
// configured output. All arrays are released before Run returns.
func Run(ctx context.Context, o *config.Options) error {
	defer log.Step("job")()

	e := vector.NewEngine()
	defer e.Finish()

	a, err := reader.Open(ctx, e, o.Input, o.Srid)
	if err != nil {
		return err
	}
	logger.Printf("[info] read %s geometries from %s", humanize.Comma(int64(a.Len())), o.Input)

	for i := range o.Steps {
		if err := ctx.Err(); err != nil {
			a.Release()
			return err
		}
		s := &o.Steps[i]
		counter := stats.NewCounter(s.Op)
		next, err := runStep(e, s, a, counter)
		// views of a keep the elements alive
		a.Release()
		if err != nil {
			return errors.Wrapf(err, "step %d (%s)", i+1, s.Op)
		}
		counter.Stop()
		logger.Printf("[info] %s", counter)
		a = next
	}
	defer a.Release()

	return writeOutputs(e, o, a)
}

func runStep(e *vector.Engine, s *config.Step, a *vector.Array, counter *stats.Counter) (*vector.Array, error) {
	counter.Add(a.Len())
	switch s.Op {
	case config.OpBuffer:
		return e.Buffer(a, s.BufferParams())
	case config.OpFilter:
		return filter(e, s, a)
	}
	op, err := vector.ParseUnaryOp(s.Op)
	if err != nil {
		return nil, err
	}
	return e.Unary(op, a)
}

// filter returns a view of the elements el with predicate(wkt, el).
func filter(e *vector.Engine, s *config.Step, a *vector.Array) (*vector.Array, error) {
	p, err := vector.ParsePredicate(s.Predicate)
	if err != nil {
		return nil, err
	}
	shape, err := e.ShapeFromWKT(s.WKT)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	var mask []bool
	if s.Prepared {
		mask, err = e.PreparedPredicate(p, a, shape)
	} else {
		var q vector.Predicate
		q, err = p.Converse()
		if err != nil {
			return nil, err
		}
		mask, err = e.Predicate(q, a, shape)
	}
	if err != nil {
		return nil, err
	}
	return a.Filter(mask)
}

func writeOutputs(e *vector.Engine, o *config.Options, a *vector.Array) error {
	if o.Output != "" {
		if err := writeFile(e, o.Output, a); err != nil {
			return err
		}
		logger.Printf("[info] wrote %s geometries to %s", humanize.Comma(int64(a.Len())), o.Output)
	}
	if o.Cache != "" {
		c, err := cache.Open(o.CacheDir)
		if err != nil {
			return err
		}
		err = c.PutArray(e, o.Cache, a)
		if closeErr := c.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return err
		}
	}
	if o.Table != "" {
		pg, err := postgis.Open(o.Connection)
		if err != nil {
			return err
		}
		defer pg.Close()
		schema, table := postgis.SplitTableName(o.Table)
		if err := pg.Init(schema, table, o.Srid); err != nil {
			return err
		}
		if err := pg.InsertArray(e, a); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(e *vector.Engine, path string, a *vector.Array) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := writer.WriteArray(f, e, a); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
