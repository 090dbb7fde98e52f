package dispatch

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/kernels"
	"github.com/hupe1980/hepvec/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeVec struct {
	class  Class
	groups coords.Groups[float64]
	extras []coords.Field[float64]
}

func (v *fakeVec) Class() Class          { return v.class }
func (v *fakeVec) System() coords.System { return v.groups.System() }

func vec(id BackendID, f coords.Flavor, sys coords.System, elems ...float64) *fakeVec {
	return &fakeVec{
		class:  Class{Backend: id, Dimension: sys.Dimension(), Flavor: f},
		groups: coords.FromElements(sys, elems),
	}
}

// fakeBackend computes on float64 and absorbs vectors of every lower
// non-symbolic backend.
type fakeBackend struct{ id BackendID }

func (b fakeBackend) ID() BackendID                      { return b.id }
func (fakeBackend) Lib() numeric.Lib[float64]            { return numeric.Float64{} }
func (fakeBackend) Registry() *compute.Registry[float64] { return kernels.Float64() }
func (fakeBackend) Scalar(v float64) any                 { return v }
func (fakeBackend) Bool(v float64) any                   { return v != 0 }
func (fakeBackend) NewVector(c Class, op Operand[float64]) (Vector, error) {
	return &fakeVec{class: c, groups: op.Groups, extras: op.Extras}, nil
}

func (b fakeBackend) Bind(op string, vs []Vector, params []any) (Frame[float64], error) {
	var f Frame[float64]
	for _, v := range vs {
		id := v.Class().Backend
		fv, ok := v.(*fakeVec)
		if !ok || id > b.id || (id == Symbolic && b.id != Symbolic) {
			return Frame[float64]{}, NewBackendError(b.id, v.Class())
		}
		f.Operands = append(f.Operands, Operand[float64]{Groups: fv.groups, Flavor: fv.class.Flavor, Extras: fv.extras})
	}
	for _, p := range params {
		switch p := p.(type) {
		case float64:
			f.Params = append(f.Params, p)
		case int:
			f.Params = append(f.Params, float64(p))
		default:
			return Frame[float64]{}, InvalidParameter(op, p)
		}
	}
	return f, nil
}

type arrVec struct {
	groups coords.Groups[numeric.Array]
}

func (v *arrVec) Class() Class {
	return Class{Backend: Jagged, Dimension: v.groups.Dimension()}
}
func (v *arrVec) System() coords.System { return v.groups.System() }

// arrayBackend computes on numeric.Array without up-front broadcasting.
type arrayBackend struct{}

func (arrayBackend) ID() BackendID                              { return Jagged }
func (arrayBackend) Lib() numeric.Lib[numeric.Array]            { return numeric.Arrays{} }
func (arrayBackend) Registry() *compute.Registry[numeric.Array] { return kernels.Array() }
func (arrayBackend) Scalar(v numeric.Array) any                 { return v }
func (arrayBackend) Bool(v numeric.Array) any                   { return v.Bools() }
func (arrayBackend) NewVector(c Class, op Operand[numeric.Array]) (Vector, error) {
	return &arrVec{groups: op.Groups}, nil
}

func (arrayBackend) Bind(op string, vs []Vector, params []any) (Frame[numeric.Array], error) {
	var f Frame[numeric.Array]
	for _, v := range vs {
		switch v := v.(type) {
		case *arrVec:
			f.Operands = append(f.Operands, Operand[numeric.Array]{Groups: v.groups})
		case *fakeVec:
			f.Operands = append(f.Operands, Operand[numeric.Array]{Groups: coords.Map(v.groups, numeric.Scalar)})
		default:
			return f, NewBackendError(Jagged, v.Class())
		}
	}
	for _, p := range params {
		f.Params = append(f.Params, numeric.Scalar(p.(float64)))
	}
	return f, nil
}

func init() {
	Register[float64](fakeBackend{id: Symbolic})
	Register[float64](fakeBackend{id: Object})
	Register[float64](fakeBackend{id: Columnar})
	Register[numeric.Array](arrayBackend{})
}

var (
	xy    = coords.Sys2D(coords.XY)
	xyz   = coords.Sys3D(coords.XY, coords.Z)
	xyzt  = coords.Sys4D(coords.XY, coords.Z, coords.T)
	rpet  = coords.Sys4D(coords.RhoPhi, coords.Eta, coords.Tau)
	gen   = coords.Generic
	momen = coords.Momentum
)

func do(t *testing.T, c Call) any {
	t.Helper()
	res, err := Do(c)
	require.NoError(t, err)
	return res
}

func TestClass(t *testing.T) {
	c := Class{Backend: Object, Dimension: coords.Dim3, Flavor: momen}
	assert.Equal(t, "Momentum3D", c.Name())
	assert.Equal(t, "object.Momentum3D", c.String())
	assert.Equal(t, coords.Dim2, c.Projection2D().Dimension)
	assert.Equal(t, coords.Dim4, c.Projection4D().Dimension)
	assert.Equal(t, momen, c.Projection4D().Flavor)
	assert.Equal(t, "Vector3D", c.Generic().Name())
	assert.True(t, c.Generic().Momentum().IsMomentum())
	assert.Equal(t, "Backend(9)", BackendID(9).String())
}

func TestResolveHandler(t *testing.T) {
	tests := []struct {
		name string
		vs   []Vector
		want BackendID
	}{
		{"single", []Vector{vec(Object, gen, xy, 1, 2)}, Object},
		{"higher wins", []Vector{vec(Columnar, gen, xy, 1, 2), vec(Object, gen, xy, 1, 2)}, Columnar},
		{"symbolic lowest", []Vector{vec(Object, gen, xy, 1, 2), vec(Symbolic, gen, xy, 1, 2)}, Object},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveHandler(tt.vs))
		})
	}
	assert.Panics(t, func() { ResolveHandler(nil) })
}

func TestResolveFlavor(t *testing.T) {
	m := vec(Object, momen, xy, 1, 2)
	g := vec(Object, gen, xy, 1, 2)
	assert.Equal(t, momen, ResolveFlavor([]Vector{m}))
	assert.Equal(t, momen, ResolveFlavor([]Vector{m, m}))
	assert.Equal(t, gen, ResolveFlavor([]Vector{m, g}))
	assert.Equal(t, gen, ResolveFlavor([]Vector{g, m}))
}

func TestDo_Scalar(t *testing.T) {
	v := vec(Object, gen, xy, 3, 4)
	assert.InDelta(t, 5.0, do(t, Call{Op: compute.OpRho, Vectors: []Vector{v}}), 1e-12)

	is, err := Do(Call{Op: compute.OpIsParallel, Vectors: []Vector{v, v}, Params: []any{1e-9}})
	require.NoError(t, err)
	assert.Equal(t, true, is)
}

func TestDo_Promotion(t *testing.T) {
	a := vec(Object, gen, xy, 1, 2)
	b := vec(Columnar, gen, xy, 3, 4)

	res := do(t, Call{Op: compute.OpAdd, Vectors: []Vector{a, b}})
	out := res.(*fakeVec)
	assert.Equal(t, Columnar, out.class.Backend)
	assert.Equal(t, []float64{4, 6}, out.groups.Elements(coords.Dim2))

	_, err := Do(Call{Op: compute.OpAdd, Vectors: []Vector{a, vec(Symbolic, gen, xy, 1, 1)}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleBackends))
	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, Object, be.Handler)
}

func TestDo_Flavor(t *testing.T) {
	m := vec(Object, momen, xyz, 1, 2, 3)
	g := vec(Object, gen, xyz, 1, 0, 0)

	tests := []struct {
		name string
		call Call
		want coords.Flavor
	}{
		{"momentum pair", Call{Op: compute.OpAdd, Vectors: []Vector{m, m}}, momen},
		{"mixed pair", Call{Op: compute.OpAdd, Vectors: []Vector{m, g}}, gen},
		{"unary", Call{Op: compute.OpScale, Vectors: []Vector{m}, Params: []any{2.0}}, momen},
		{
			"axis does not count",
			Call{Op: compute.OpRotateAxis, Vectors: []Vector{g, m}, Params: []any{0.5}, Origin: 1, Footing: 1},
			momen,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := do(t, tt.call).(*fakeVec)
			assert.Equal(t, tt.want, out.class.Flavor)
		})
	}
}

func TestDo_ForcedGeneric(t *testing.T) {
	p := vec(Object, momen, xyzt, 1, 2, 3, 10)
	out := do(t, Call{Op: compute.OpToBeta3, Vectors: []Vector{p}}).(*fakeVec)
	assert.Equal(t, gen, out.class.Flavor)
	assert.Equal(t, coords.Dim3, out.class.Dimension)
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3}, out.groups.Elements(coords.Dim3), 1e-12)
}

func TestDo_Extras(t *testing.T) {
	v := vec(Object, gen, xy, 1, 2)
	v.extras = []coords.Field[float64]{coords.Named("charge", -1.0)}

	scaled := do(t, Call{Op: compute.OpScale, Vectors: []Vector{v}, Params: []any{2}}).(*fakeVec)
	assert.Equal(t, v.extras, scaled.extras)
	assert.Equal(t, []float64{2, 4}, scaled.groups.Elements(coords.Dim2))

	sum := do(t, Call{Op: compute.OpAdd, Vectors: []Vector{v, v}}).(*fakeVec)
	assert.Empty(t, sum.extras)
}

func TestDo_Update(t *testing.T) {
	v := vec(Object, momen, xyzt, 1, 0, 7, 9)
	out := do(t, Call{Op: compute.OpRotateZ, Vectors: []Vector{v}, Params: []any{math.Pi / 2}}).(*fakeVec)
	assert.Equal(t, xyzt, out.System())
	assert.Equal(t, momen, out.class.Flavor)
	assert.InDeltaSlice(t, []float64{0, 1, 7, 9}, out.groups.Elements(coords.Dim4), 1e-12)
}

func TestDo_GroupSelection(t *testing.T) {
	v4 := vec(Object, gen, xyzt, 1, 2, 3, 4)
	v2 := vec(Object, gen, xy, 1, 1)

	sum := do(t, Call{Op: compute.OpAdd, Vectors: []Vector{v4, v2}}).(*fakeVec)
	assert.Equal(t, xy, sum.System())
	assert.Equal(t, []float64{2, 3}, sum.groups.Elements(coords.Dim2))

	_, err := Do(Call{Op: compute.OpEta, Vectors: []Vector{v2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, compute.ErrNoSignature))
	assert.Equal(t, "function 'eta' has no planar signature (xy)", err.Error())

	_, err = Do(Call{Op: compute.OpRho, Group: compute.Lorentz, Vectors: []Vector{vec(Object, gen, xyz, 1, 1, 1)}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, compute.ErrNoSignature))

	rho := do(t, Call{Op: compute.OpRho, Group: compute.Planar, Vectors: []Vector{v4}})
	assert.InDelta(t, math.Sqrt(5), rho, 1e-12)
}

func TestDo_DimensionMismatch(t *testing.T) {
	a := vec(Object, gen, xyzt, 1, 2, 3, 4)
	b := vec(Object, gen, xyz, 1, 2, 3)

	for _, op := range []string{compute.OpEqual, compute.OpNotEqual} {
		_, err := Do(Call{Op: op, Vectors: []Vector{a, b}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDimensionMismatch))
		assert.Contains(t, err.Error(), "to_Vector3D")
	}

	eq := do(t, Call{Op: compute.OpEqual, Vectors: []Vector{a, a}})
	assert.Equal(t, true, eq)
}

func TestDo_Parameters(t *testing.T) {
	v := vec(Object, gen, xy, 1, 2)

	_, err := Do(Call{Op: compute.OpScale, Vectors: []Vector{v}})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = Do(Call{Op: compute.OpScale, Vectors: []Vector{v}, Params: []any{"two"}})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.Contains(t, err.Error(), "string")
}

func TestDo_ShapeMismatch(t *testing.T) {
	a := &arrVec{groups: coords.FromElements(xy, []numeric.Array{{1, 2}, {3, 4}})}
	b := &arrVec{groups: coords.FromElements(xy, []numeric.Array{{1, 2, 3}, {3, 4, 5}})}

	_, err := Do(Call{Op: compute.OpAdd, Vectors: []Vector{a, b}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, numeric.ErrShapeMismatch))

	// Scalars broadcast against arrays.
	res := do(t, Call{Op: compute.OpAdd, Vectors: []Vector{a, vec(Object, gen, xy, 10, 20)}}).(*arrVec)
	assert.Equal(t, []numeric.Array{{11, 12}, {23, 24}}, res.groups.Elements(coords.Dim2))
}

func TestTyped(t *testing.T) {
	v := vec(Object, gen, xy, 3, 4)

	rho, err := Typed[float64](Call{Op: compute.OpRho, Vectors: []Vector{v}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, rho, 1e-12)

	_, err = Typed[bool](Call{Op: compute.OpRho, Vectors: []Vector{v}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPromoted))
	assert.Contains(t, err.Error(), "float64")
}

func TestProject(t *testing.T) {
	v := vec(Object, momen, xy, 3, 4)
	v.extras = []coords.Field[float64]{coords.Named("charge", 1.0)}

	v3, err := Project(v, coords.Dim3)
	require.NoError(t, err)
	assert.Equal(t, xyz, v3.System())
	assert.Equal(t, Class{Backend: Object, Dimension: coords.Dim3, Flavor: momen}, v3.Class())
	assert.Equal(t, v.extras, v3.(*fakeVec).extras)

	v4, err := Project(v3, coords.Dim4, WithT(10.0))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 0, 10}, v4.(*fakeVec).groups.Elements(coords.Dim4))
	assert.InDelta(t, 75.0, do(t, Call{Op: compute.OpTau2, Vectors: []Vector{v4}}), 1e-12)

	eta, err := Project(v, coords.Dim4, WithEta(1.5), WithTau(2.0))
	require.NoError(t, err)
	assert.Equal(t, coords.Sys4D(coords.XY, coords.Eta, coords.Tau), eta.System())

	same, err := Project(v4, coords.Dim4)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 0, 10}, same.(*fakeVec).groups.Elements(coords.Dim4))

	back, err := Project(v4, coords.Dim2)
	require.NoError(t, err)
	assert.Equal(t, v.groups, back.(*fakeVec).groups)

	_, err = Project(v, coords.Dim3, WithZ(1.0), WithTheta(1.0))
	assert.True(t, errors.Is(err, coords.ErrAmbiguousCoordinates))
	_, err = Project(v, coords.Dim4, WithT(1.0), WithTau(1.0))
	assert.True(t, errors.Is(err, coords.ErrAmbiguousCoordinates))

	_, err = Project(v, coords.Dim3, WithZ("z"))
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestProject_UnusableOverrides(t *testing.T) {
	v2 := vec(Object, gen, xy, 3, 4)
	v3 := vec(Object, gen, xyz, 1, 2, 3)

	tests := []struct {
		name      string
		v         Vector
		dim       coords.Dimension
		overrides []Override
	}{
		{"longitudinal already present", v3, coords.Dim4, []Override{WithZ(9.0), WithTau(2.0)}},
		{"eta over z", v3, coords.Dim3, []Override{WithEta(1.0)}},
		{"temporal beyond 3D", v2, coords.Dim3, []Override{WithT(1.0)}},
		{"longitudinal beyond 2D", v3, coords.Dim2, []Override{WithTheta(1.0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(tt.v, tt.dim, tt.overrides...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, coords.ErrUnrecognizedCoordinates), err)
		})
	}
}

func TestConvert(t *testing.T) {
	v := vec(Object, gen, xy, 3, 4)

	out, err := Convert(v, rpet)
	require.NoError(t, err)
	assert.Equal(t, rpet, out.System())
	elems := out.(*fakeVec).groups.Elements(coords.Dim4)
	assert.InDelta(t, 5.0, elems[0], 1e-12)
	assert.InDelta(t, math.Atan2(4, 3), elems[1], 1e-12)
	assert.InDelta(t, 0.0, elems[2], 1e-12)

	down, err := Convert(out, coords.Sys2D(coords.XY))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 4}, down.(*fakeVec).groups.Elements(coords.Dim2), 1e-12)
}

func TestObserver(t *testing.T) {
	var calls atomic.Int64
	var failed atomic.Int64
	SetObserver(func(e Event) {
		calls.Add(1)
		if e.Err != nil {
			failed.Add(1)
		}
		assert.Equal(t, Object, e.Backend)
		assert.Equal(t, "float64", e.Lib)
	})
	defer SetObserver(nil)

	v := vec(Object, gen, xy, 3, 4)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = Do(Call{Op: compute.OpRho, Vectors: []Vector{v}})
			}
		}()
	}
	wg.Wait()
	_, _ = Do(Call{Op: compute.OpEta, Vectors: []Vector{v}})

	assert.Equal(t, int64(401), calls.Load())
	assert.Equal(t, int64(1), failed.Load())
}

func TestRegister_Panics(t *testing.T) {
	assert.Panics(t, func() { Register[float64](fakeBackend{id: Object}) })
	assert.Panics(t, func() { Register[float64](fakeBackend{id: 0}) })
	assert.True(t, Registered(Object))
	assert.False(t, Registered(maxBackend))
}
