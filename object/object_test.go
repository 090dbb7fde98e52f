package object

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/methods"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func elems(t *testing.T, v dispatch.Vector) []float64 {
	t.Helper()
	g, ok := Groups(v)
	require.True(t, ok)
	return g.Elements(g.Dimension())
}

func TestObj(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   dispatch.Class
		sys    coords.System
	}{
		{"xy", []Field{F("x", 3), F("y", 4)}, class(coords.Dim2, coords.Generic), coords.Sys2D(coords.XY)},
		{"px py", []Field{F("px", 3), F("py", 4)}, class(coords.Dim2, coords.Momentum), coords.Sys2D(coords.XY)},
		{"rho phi eta", []Field{F("rho", 1), F("phi", 0), F("eta", 2)}, class(coords.Dim3, coords.Generic), coords.Sys3D(coords.RhoPhi, coords.Eta)},
		{"pt phi eta mass", []Field{F("pt", 1), F("phi", 0), F("eta", 2), F("mass", 0.1)}, class(coords.Dim4, coords.Momentum), coords.Sys4D(coords.RhoPhi, coords.Eta, coords.Tau)},
		{"x y theta E", []Field{F("x", 1), F("y", 0), F("theta", 2), F("E", 5)}, class(coords.Dim4, coords.Momentum), coords.Sys4D(coords.XY, coords.Theta, coords.T)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Obj(tt.fields...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Class())
			assert.Equal(t, tt.sys, v.System())
		})
	}
}

func TestObj_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		target error
	}{
		{"z and eta", []Field{F("x", 1), F("y", 1), F("z", 1), F("eta", 1)}, coords.ErrAmbiguousCoordinates},
		{"x and pt", []Field{F("x", 1), F("y", 1), F("pt", 1), F("phi", 1)}, coords.ErrAmbiguousCoordinates},
		{"alias duplicate", []Field{F("x", 1), F("px", 1), F("y", 1)}, coords.ErrAmbiguousCoordinates},
		{"time without longitudinal", []Field{F("x", 1), F("y", 0), F("t", 2)}, coords.ErrUnrecognizedCoordinates},
		{"unknown name", []Field{F("x", 1), F("y", 0), F("charge", 1)}, coords.ErrUnrecognizedCoordinates},
		{"missing y", []Field{F("x", 1)}, coords.ErrUnrecognizedCoordinates},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Obj(tt.fields...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), err)
		})
	}
}

func TestScenario(t *testing.T) {
	v, err := Obj(F("x", 3), F("y", 4))
	require.NoError(t, err)
	v2 := v.(*Vector2D)
	assert.Equal(t, 5.0, v2.Rho())
	assert.False(t, v2.Class().IsMomentum())

	v3, err := v2.ToVector3D(dispatch.WithZ(0.0))
	require.NoError(t, err)
	v4, err := v3.(*Vector3D).ToVector4D(dispatch.WithT(10.0))
	require.NoError(t, err)
	assert.InDelta(t, 75.0, v4.(*Vector4D).Tau2(), 1e-12)

	p, err := Obj(F("px", 3), F("py", 4))
	require.NoError(t, err)
	pm := p.(*Momentum2D)
	assert.Equal(t, 5.0, pm.Pt())
	assert.Equal(t, 3.0, pm.Px())
	assert.True(t, pm.Class().IsMomentum())

	a, err := Obj(F("x", 1), F("y", 0), F("z", 0), F("t", 2))
	require.NoError(t, err)
	b, err := Obj(F("x", 1), F("y", 0), F("z", 0))
	require.NoError(t, err)
	_, err = a.(*Vector4D).Equal(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dispatch.ErrDimensionMismatch))

	same, err := a.(*Vector4D).Equal(a)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestRoundTrip(t *testing.T) {
	base := FromPtEtaPhiM(12.5, -0.7, 2.1, 3.2)
	for _, dim := range []coords.Dimension{coords.Dim2, coords.Dim3, coords.Dim4} {
		for _, flavor := range []coords.Flavor{coords.Generic, coords.Momentum} {
			var v dispatch.Vector = base
			if flavor == coords.Generic {
				v = NewVector4D(base.groups.Az, base.groups.Lon, base.groups.Temp)
			}
			v, err := dispatch.Project(v, dim)
			require.NoError(t, err)

			for _, a := range coords.Systems(dim) {
				for _, b := range coords.Systems(dim) {
					va, err := dispatch.Convert(v, a)
					require.NoError(t, err)
					vb, err := dispatch.Convert(va, b)
					require.NoError(t, err)
					back, err := dispatch.Convert(vb, a)
					require.NoError(t, err)

					assert.Equal(t, flavor, back.Class().Flavor)
					assert.Equal(t, b, vb.System())
					if diff := cmp.Diff(elems(t, va), elems(t, back), approx); diff != "" {
						t.Errorf("%s -> %s -> %s mismatch (-want +got):\n%s", a, b, a, diff)
					}
				}
			}
		}
	}
}

func TestProjection(t *testing.T) {
	v := FromXY(3, 4)

	up, err := v.ToVector3D()
	require.NoError(t, err)
	again, err := up.(*Vector3D).ToVector3D()
	require.NoError(t, err)
	assert.Equal(t, elems(t, up), elems(t, again))
	assert.Equal(t, []float64{3, 4, 0}, elems(t, up))

	z5, err := v.ToVector3D(dispatch.WithZ(5.0))
	require.NoError(t, err)
	down := z5.(*Vector3D).ToVector2D()
	assert.Equal(t, elems(t, v), elems(t, down))
	assert.IsType(t, &Vector2D{}, down)

	eta, err := v.ToVector3D(dispatch.WithEta(0.0))
	require.NoError(t, err)
	assert.Equal(t, coords.Sys3D(coords.XY, coords.Eta), eta.System())

	_, err = v.ToVector4D(dispatch.WithZ(1.0), dispatch.WithEta(1.0))
	assert.True(t, errors.Is(err, coords.ErrAmbiguousCoordinates))

	_, err = FromXYZ(1, 2, 3).ToVector4D(dispatch.WithZ(9.0), dispatch.WithTau(2.0))
	assert.True(t, errors.Is(err, coords.ErrUnrecognizedCoordinates), err)

	m := NewMomentum2D(coords.AzimuthalXY[float64]{X: 1, Y: 2})
	m4, err := m.ToVector4D(dispatch.WithTau(0.5))
	require.NoError(t, err)
	assert.IsType(t, &Momentum4D{}, m4)
	assert.InDelta(t, 0.5, m4.(*Momentum4D).Mass(), 1e-12)
}

func TestFlavorConjunction(t *testing.T) {
	m := NewMomentum3D(coords.AzimuthalXY[float64]{X: 1, Y: 2}, coords.LongitudinalZ[float64]{Z: 3})
	g := FromXYZ(1, 1, 1)

	sum, err := m.Add(g)
	require.NoError(t, err)
	assert.IsType(t, &Vector3D{}, sum)

	sum, err = m.Add(m)
	require.NoError(t, err)
	assert.IsType(t, &Momentum3D{}, sum)
	assert.Equal(t, 6.0, sum.(*Momentum3D).Pz())

	rot, err := m.RotateAxis(g, 0.3)
	require.NoError(t, err)
	assert.IsType(t, &Momentum3D{}, rot)
	assert.InDelta(t, m.Mag(), rot.(*Momentum3D).P(), 1e-12)
}

func TestMixedDimensions(t *testing.T) {
	v4 := FromXYZT(1, 2, 3, 10)
	v3 := FromXYZ(1, 1, 1)

	sum, err := v4.Add(v3)
	require.NoError(t, err)
	assert.IsType(t, &Vector3D{}, sum)
	assert.Equal(t, []float64{2, 3, 4}, elems(t, sum))

	dot, err := v4.Dot(v4)
	require.NoError(t, err)
	assert.Equal(t, 100.0-14.0, dot)

	dot, err = v4.Dot(v3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, dot)
}

func TestUpdatesKeepGroups(t *testing.T) {
	v := FromXYZT(1, 0, 7, 9)
	rv, err := v.RotateZ(math.Pi / 2)
	require.NoError(t, err)
	r := rv.(*Vector4D)
	assert.InDelta(t, 0.0, r.X(), 1e-12)
	assert.InDelta(t, 1.0, r.Y(), 1e-12)
	assert.Equal(t, 7.0, r.Z())
	assert.Equal(t, 9.0, r.T())

	n := v.Negate().(*Vector4D)
	assert.Equal(t, []float64{-1, 0, -7, -9}, elems(t, n))
}

func TestBoosts(t *testing.T) {
	rest := FromXYZT(0, 0, 0, 1)

	b, err := rest.BoostX(methods.Beta(0.6))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.75, 0, 0, 1.25}, elems(t, b), 1e-12)

	g, err := rest.BoostX(methods.Gamma(1.25))
	require.NoError(t, err)
	assert.InDeltaSlice(t, elems(t, b), elems(t, g), 1e-12)

	_, err = rest.BoostY(methods.Beta(0.1), methods.Gamma(2.0))
	assert.True(t, errors.Is(err, coords.ErrAmbiguousCoordinates))
	_, err = rest.BoostZ()
	assert.True(t, errors.Is(err, dispatch.ErrMissingParameter))

	b3, err := rest.Boost(FromXYZ(0.6, 0, 0))
	require.NoError(t, err)
	assert.InDeltaSlice(t, elems(t, b), elems(t, b3), 1e-12)

	p := FromXYZT(3, 0, 0, 5)
	back, err := p.Boost(FromXYZT(-3, 0, 0, 5))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 4}, elems(t, back), 1e-12)

	beta := p.ToBeta3()
	assert.IsType(t, &Vector3D{}, beta)
	assert.InDeltaSlice(t, []float64{0.6, 0, 0}, elems(t, beta), 1e-12)

	timelike, err := p.IsTimelike(0)
	require.NoError(t, err)
	assert.True(t, timelike)
	spacelike, err := p.IsSpacelike(0)
	require.NoError(t, err)
	assert.False(t, spacelike)
	lightlike, err := FromXYZT(3, 4, 0, 5).IsLightlike(1e-12)
	require.NoError(t, err)
	assert.True(t, lightlike)
}

func TestMomentumSynonyms(t *testing.T) {
	p := FromPtEtaPhiM(10, 0, 0, 3)
	assert.InDelta(t, 10.0, p.Pt(), 1e-12)
	assert.InDelta(t, 10.0, p.Px(), 1e-12)
	assert.InDelta(t, 3.0, p.M(), 1e-12)
	assert.InDelta(t, 3.0, p.Mass(), 1e-12)
	assert.InDelta(t, 0.0, p.Pseudorapidity(), 1e-12)
	assert.InDelta(t, math.Sqrt(109), p.E(), 1e-12)
	assert.InDelta(t, p.T(), p.Energy(), 1e-12)
	assert.InDelta(t, 109.0, p.E2(), 1e-9)
	assert.InDelta(t, 10.0, p.P(), 1e-12)
}

func TestReplace(t *testing.T) {
	v := FromXY(1, 2)
	sum, err := v.Add(FromXY(1, 1))
	require.NoError(t, err)
	require.NoError(t, v.Replace(sum))
	assert.Equal(t, 2.0, v.X())
	assert.Equal(t, 3.0, v.Y())

	err = v.Replace(FromXYZ(1, 1, 1))
	assert.True(t, errors.Is(err, dispatch.ErrDimensionMismatch))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Vector2D(x=3, y=4)", FromXY(3, 4).String())
	assert.Equal(t, "Momentum4D(rho=10, phi=0.5, eta=1, tau=0.1)", FromPtEtaPhiM(10, 1, 0.5, 0.1).String())
}

func TestNew_Panics(t *testing.T) {
	assert.Panics(t, func() { NewVector2D(nil) })
	assert.Panics(t, func() { NewVector4D(coords.AzimuthalXY[float64]{}, nil, coords.TemporalT[float64]{}) })
}

func TestNew_IncompleteGroups(t *testing.T) {
	tests := []struct {
		name string
		g    coords.Groups[float64]
	}{
		{"empty", coords.Groups[float64]{}},
		{"longitudinal only", coords.Groups[float64]{Lon: coords.LongitudinalZ[float64]{Z: 1}}},
		{"time without longitudinal", coords.Groups[float64]{Az: coords.AzimuthalXY[float64]{X: 1}, Temp: coords.TemporalT[float64]{T: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = New(coords.Generic, tt.g) })
			assert.True(t, errors.Is(err, coords.ErrUnrecognizedCoordinates), err)
		})
	}
}

func TestParameters(t *testing.T) {
	v := FromXY(1, 0)
	_, err := dispatch.Do(dispatch.Call{Op: "scale", Vectors: []dispatch.Vector{v}, Params: []any{"x"}})
	assert.True(t, errors.Is(err, dispatch.ErrInvalidParameter))

	scaled, err := v.Scale(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0}, elems(t, scaled))
	ok, err := v.IsClose(FromXY(1+1e-12, 0), 1e-9, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}
