package vector

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnaryOp(t *testing.T) {
	for _, name := range []string{"boundary", "centroid", "convex_hull", "envelope", "representative_point"} {
		op, err := ParseUnaryOp(name)
		require.NoError(t, err)
		assert.Equal(t, name, op.String())
	}
	_, err := ParseUnaryOp("not_an_op")
	assert.Equal(t, ErrUnsupportedOp, errors.Cause(err))
}

func TestApplyUnaryUnknownOp(t *testing.T) {
	e := newTestEngine(t)
	a := points(t, e, 0, 1)
	defer a.Release()

	r, err := e.ApplyUnary("not_an_op", a)
	assert.Nil(t, r)
	assert.Equal(t, ErrUnsupportedOp, errors.Cause(err))

	r, err = e.Unary(UnaryOp(42), a)
	assert.Nil(t, r)
	assert.Equal(t, ErrUnsupportedOp, errors.Cause(err))
}

func TestUnaryOps(t *testing.T) {
	e := newTestEngine(t)
	a, err := e.FromWKT([]string{
		"POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))",
		"LINESTRING(0 0, 2 2, 4 0)",
	})
	require.NoError(t, err)
	defer a.Release()

	centroids, err := e.Unary(Centroid, a)
	require.NoError(t, err)
	defer centroids.Release()
	assert.False(t, centroids.IsView())
	xs, err := e.X(centroids)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, xs[0], 1e-9)
	assert.InDelta(t, 2.0, xs[1], 1e-9)

	for _, tc := range []struct {
		op   UnaryOp
		want []string
	}{
		{Boundary, []string{"LINESTRING", "MULTIPOINT"}},
		{ConvexHull, []string{"POLYGON", "POLYGON"}},
		{Envelope, []string{"POLYGON", "POLYGON"}},
		{RepresentativePoint, []string{"POINT", "POINT"}},
	} {
		r, err := e.ApplyUnary(tc.op.String(), a)
		require.NoError(t, err, tc.op.String())
		wkts, err := e.ToWKT(r)
		require.NoError(t, err)
		for i, prefix := range tc.want {
			assert.Regexp(t, "^"+prefix+" ", wkts[i], tc.op.String())
		}
		r.Release()
	}
}

func TestUnaryOnView(t *testing.T) {
	e := newTestEngine(t)
	a := points(t, e, 0, 1, 2)
	v, err := a.Slice(1, 3)
	require.NoError(t, err)

	r, err := e.Unary(Envelope, v)
	require.NoError(t, err)
	v.Release()
	a.Release()

	// results are independent new geometries
	xs, err := e.X(r)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, xs)
	r.Release()
}

func TestBufferRepresentativePoint(t *testing.T) {
	e := newTestEngine(t)
	a, err := e.PointsFromXY([]float64{0, 1, 2}, []float64{0, 0, 0})
	require.NoError(t, err)
	defer a.Release()

	buffered, err := e.Buffer(a, DefaultBufferParams(1.0))
	require.NoError(t, err)
	defer buffered.Release()

	reps, err := e.Unary(RepresentativePoint, buffered)
	require.NoError(t, err)
	defer reps.Release()

	xs, err := e.X(reps)
	require.NoError(t, err)
	for i, x := range xs {
		assert.True(t, x >= -1+float64(i) && x <= 1+float64(i), "x %f of element %d", x, i)
	}

	// polygons have no coordinate sequence
	_, err = e.X(buffered)
	assert.Error(t, err)
}

func TestBufferStyles(t *testing.T) {
	e := newTestEngine(t)
	a, err := e.FromWKT([]string{"LINESTRING(0 0, 10 0)"})
	require.NoError(t, err)
	defer a.Release()

	capStyle, err := ParseCapStyle("flat")
	require.NoError(t, err)
	joinStyle, err := ParseJoinStyle("mitre")
	require.NoError(t, err)

	flat, err := e.Buffer(a, BufferParams{
		Distance:   1,
		Resolution: 8,
		CapStyle:   capStyle,
		JoinStyle:  joinStyle,
		MitreLimit: 2,
	})
	require.NoError(t, err)
	defer flat.Release()
	areas, err := e.Area(flat)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, areas[0], 1e-9)

	_, err = ParseCapStyle("pointy")
	assert.Equal(t, ErrInvalidOperand, errors.Cause(err))
	_, err = ParseJoinStyle("pointy")
	assert.Equal(t, ErrInvalidOperand, errors.Cause(err))
}

func TestMeasures(t *testing.T) {
	e := newTestEngine(t)
	a, err := e.FromWKT([]string{
		"POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))",
		"POLYGON((0 0, 4 4, 4 0, 0 4, 0 0))",
		"POINT EMPTY",
	})
	require.NoError(t, err)
	defer a.Release()

	empty, err := e.IsEmpty(a)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, empty)

	valid, err := e.IsValid(a)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, valid)
}
