package jagged

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/numeric"
	"github.com/hupe1980/hepvec/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func muons(t *testing.T) *Momentum4D {
	t.Helper()
	v, err := FromFields(
		F("pt", []float64{10, 20}, nil, []float64{30}),
		F("phi", []float64{0, math.Pi / 2}, nil, []float64{math.Pi}),
		F("eta", []float64{0, 0}, nil, []float64{0}),
		F("mass", []float64{0.1, 0.1}, nil, []float64{0.1}),
		F("charge", []float64{1, -1}, nil, []float64{1}),
	)
	require.NoError(t, err)
	m, ok := v.(*Momentum4D)
	require.True(t, ok)
	return m
}

func TestLists(t *testing.T) {
	f := Lists([]float64{1, 2}, nil, []float64{3})
	assert.Equal(t, []int{0, 2, 2, 3}, f.Offsets)
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, numeric.Array{3}, f.Event(2))
	assert.Equal(t, [][]float64{{1, 2}, {}, {3}}, f.ToLists())
	assert.True(t, Uniform(1).IsUniform())
}

func TestLib(t *testing.T) {
	l := Lib{}
	a := Lists([]float64{1, 2}, []float64{3})
	b := Lists([]float64{10, 20}, []float64{30})

	assert.Equal(t, [][]float64{{11, 22}, {33}}, l.Add(a, b).ToLists())
	assert.Equal(t, [][]float64{{2, 3}, {4}}, l.Add(a, l.Const(1)).ToLists())
	assert.True(t, l.Mul(l.Const(2), l.Const(3)).IsUniform())

	c := Lists([]float64{1}, []float64{2, 3})
	assert.PanicsWithError(t, "operands could not be broadcast together with lengths [2 2]", func() { l.Add(a, c) })
}

func TestFromFields(t *testing.T) {
	m := muons(t)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []int{2, 0, 1}, m.Counts())
	assert.Equal(t, dispatch.Class{Backend: dispatch.Jagged, Dimension: coords.Dim4, Flavor: coords.Momentum}, m.Class())

	_, err := FromFields(F("x", []float64{1}), F("y", []float64{1, 2}))
	assert.True(t, errors.Is(err, numeric.ErrShapeMismatch))

	_, err = FromFields(coords.Named("x", Uniform(1)), coords.Named("y", Uniform(2)))
	assert.True(t, errors.Is(err, ErrInvalidOffsets))

	_, err = FromFlat([]int{1, 2}, columnar.F("x", 1), columnar.F("y", 1))
	assert.True(t, errors.Is(err, ErrInvalidOffsets))

	v, err := FromFlat([]int{0, 1, 3}, columnar.F("x", 1, 2, 3), columnar.F("y", 0))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}, {0, 0}}, v.(*Vector2D).Y().ToLists())
}

func TestAccessors(t *testing.T) {
	m := muons(t)
	pt := m.Pt()
	if diff := cmp.Diff([][]float64{{10, 20}, {}, {30}}, pt.ToLists(), approx); diff != "" {
		t.Errorf("pt mismatch (-want +got):\n%s", diff)
	}
	px := m.Px()
	if diff := cmp.Diff([][]float64{{10, 0}, {}, {-30}}, px.ToLists(), approx); diff != "" {
		t.Errorf("px mismatch (-want +got):\n%s", diff)
	}
	timelike, err := m.IsTimelike(0.0)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true, true}, {}, {true}}, timelike.ToLists())
}

func TestExtrasAndPerEventBroadcast(t *testing.T) {
	m := muons(t)

	rv, err := m.RotateZ(math.Pi)
	require.NoError(t, err)
	r := rv.(*Momentum4D)
	assert.Equal(t, m.Extras(), r.Extras())

	// One boost vector per event.
	boosts, err := columnar.FromFields(columnar.F("x", 0, 0, 0), columnar.F("y", 0, 0, 0), columnar.F("z", 0.5, 0.1, 0))
	require.NoError(t, err)
	b, err := m.BoostBeta3(boosts)
	require.NoError(t, err)
	bm, ok := b.(*Momentum4D)
	require.True(t, ok)
	assert.Equal(t, m.Extras(), bm.Extras())
	if diff := cmp.Diff(m.Mass().ToLists(), bm.Mass().ToLists(), approx); diff != "" {
		t.Errorf("mass changed under boost (-want +got):\n%s", diff)
	}

	// Object operands broadcast to every record.
	shift := object.FromXYZT(1, 0, 0, 0)
	sum, err := m.Add(shift)
	require.NoError(t, err)
	assert.IsType(t, &Vector4D{}, sum)
	x := sum.(*Vector4D).X()
	if diff := cmp.Diff([][]float64{{11, 1}, {}, {-29}}, x.ToLists(), approx); diff != "" {
		t.Errorf("x mismatch (-want +got):\n%s", diff)
	}

	short, err := columnar.FromFields(columnar.F("x", 0, 0), columnar.F("y", 0, 0), columnar.F("z", 0, 0))
	require.NoError(t, err)
	_, err = m.BoostBeta3(short)
	assert.True(t, errors.Is(err, numeric.ErrShapeMismatch))
}

func TestOffsetsMustMatch(t *testing.T) {
	a, err := FromFields(F("x", []float64{1}, []float64{2}), F("y", []float64{1}, []float64{2}))
	require.NoError(t, err)
	b, err := FromFields(F("x", []float64{1, 2}), F("y", []float64{1, 2}))
	require.NoError(t, err)
	_, err = a.(*Vector2D).Add(b)
	assert.True(t, errors.Is(err, numeric.ErrShapeMismatch))
}

func TestSymbolicRejected(t *testing.T) {
	m := muons(t)
	_, err := m.Add(fakeForeign{})
	assert.True(t, errors.Is(err, dispatch.ErrIncompatibleBackends))
}

type fakeForeign struct{}

func (fakeForeign) Class() dispatch.Class {
	return dispatch.Class{Backend: dispatch.Symbolic, Dimension: coords.Dim4}
}
func (fakeForeign) System() coords.System { return coords.Sys4D(coords.XY, coords.Z, coords.T) }

func TestSelection(t *testing.T) {
	m := muons(t)

	pos := m.Filter(columnar.Mask([]bool{true, false, true})).(*Momentum4D)
	assert.Equal(t, []int{2, 1}, pos.Counts())

	charge, ok := m.Column("charge")
	require.True(t, ok)
	positive := Lib{}.Less(Uniform(0), charge)
	sel := m.Select(Mask(Bools{Offsets: positive.Offsets, Content: positive.Content.Bools()})).(*Momentum4D)
	assert.Equal(t, []int{1, 0, 1}, sel.Counts())

	neg := Bools{Offsets: charge.Offsets, Content: []bool{false, true, false}}
	onlyNeg := m.Select(Mask(neg)).(*Momentum4D)
	assert.Equal(t, []int{1, 0, 0}, onlyNeg.Counts())
	got, _ := onlyNeg.Column("charge")
	assert.Equal(t, [][]float64{{-1}, {}, {}}, got.ToLists())
}

func TestEventAndFlatten(t *testing.T) {
	m := muons(t)
	ev := m.Event(0)
	cm, ok := ev.(*columnar.Momentum4D)
	require.True(t, ok)
	assert.Equal(t, 2, cm.Len())

	flat := m.Flatten().(*columnar.Momentum4D)
	assert.Equal(t, 3, flat.Len())
	charge, ok := flat.Column("charge")
	require.True(t, ok)
	assert.Equal(t, numeric.Array{1, -1, 1}, charge)

	back, err := Of(m.Offsets(), flat)
	require.NoError(t, err)
	assert.Equal(t, m.Counts(), back.(*Momentum4D).Counts())

	assert.Panics(t, func() { m.Event(3) })
}

func TestReplace(t *testing.T) {
	m := muons(t)
	r, err := m.RotateZ(math.Pi)
	require.NoError(t, err)
	require.NoError(t, m.Replace(r))
	px := m.Px()
	if diff := cmp.Diff([][]float64{{-10, 0}, {}, {30}}, px.ToLists(), approx); diff != "" {
		t.Errorf("px mismatch (-want +got):\n%s", diff)
	}
}
