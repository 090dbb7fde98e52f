package columnar

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/methods"
	"github.com/hupe1980/hepvec/numeric"
	"github.com/hupe1980/hepvec/object"
)

type (
	planar  = methods.Planar[numeric.Array, []bool, any]
	spatial = methods.Spatial[numeric.Array, []bool, any]
	lorentz = methods.Lorentz[numeric.Array, []bool, any]
)

// state holds the columns shared by every columnar vector type. All columns
// have length n.
type state struct {
	class  dispatch.Class
	groups coords.Groups[numeric.Array]
	extras []coords.Field[numeric.Array]
	n      int
}

func (s *state) data() *state { return s }

// Class returns the vector type.
func (s *state) Class() dispatch.Class { return s.class }

// System classifies the stored groups.
func (s *state) System() coords.System { return s.groups.System() }

// Len returns the number of vectors.
func (s *state) Len() int { return s.n }

// Extras returns the payload columns.
func (s *state) Extras() []coords.Field[numeric.Array] {
	return append([]coords.Field[numeric.Array](nil), s.extras...)
}

// Column returns the payload column called name.
func (s *state) Column(name string) (numeric.Array, bool) {
	for _, f := range s.extras {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// At returns the i-th vector as an object vector of the same dimension and
// flavor. Payload columns are not part of object vectors.
func (s *state) At(i int) dispatch.Vector {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("columnar: index %d out of range [0:%d]", i, s.n))
	}
	g := coords.Map(s.groups, func(a numeric.Array) float64 { return a.At(i) })
	switch {
	case s.class.Dimension == coords.Dim2 && s.class.IsMomentum():
		return object.NewMomentum2D(g.Az)
	case s.class.Dimension == coords.Dim2:
		return object.NewVector2D(g.Az)
	case s.class.Dimension == coords.Dim3 && s.class.IsMomentum():
		return object.NewMomentum3D(g.Az, g.Lon)
	case s.class.Dimension == coords.Dim3:
		return object.NewVector3D(g.Az, g.Lon)
	case s.class.IsMomentum():
		return object.NewMomentum4D(g.Az, g.Lon, g.Temp)
	default:
		return object.NewVector4D(g.Az, g.Lon, g.Temp)
	}
}

// Filter returns the vectors at the positions set in keep. Positions past
// the end are ignored.
func (s *state) Filter(keep *roaring.Bitmap) dispatch.Vector {
	idx := make([]int, 0, keep.GetCardinality())
	it := keep.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= s.n {
			break
		}
		idx = append(idx, i)
	}
	take := func(a numeric.Array) numeric.Array {
		out := make(numeric.Array, len(idx))
		for j, i := range idx {
			out[j] = a.At(i)
		}
		return out
	}
	extras := make([]coords.Field[numeric.Array], len(s.extras))
	for i, f := range s.extras {
		extras[i] = coords.Named(f.Name, take(f.Value))
	}
	return build(s.class, coords.Map(s.groups, take), extras, len(idx))
}

// Replace overwrites the receiver's coordinates with those of src, a
// columnar vector of the same dimension and length. Payload columns are
// kept. It is the in-place form of compound assignment and requires
// exclusive access to the receiver.
func (s *state) Replace(src dispatch.Vector) error {
	o, ok := src.(source)
	if !ok {
		return dispatch.NewBackendError(dispatch.Columnar, src.Class())
	}
	d := o.data()
	if d.groups.Dimension() != s.groups.Dimension() {
		return &dispatch.DimensionError{Op: "replace", Dimensions: []coords.Dimension{s.groups.Dimension(), d.groups.Dimension()}}
	}
	if d.n != s.n {
		return &numeric.ShapeError{Lengths: []int{s.n, d.n}}
	}
	s.groups = d.groups
	return nil
}

func (s *state) String() string {
	return fmt.Sprintf("%s[%d]%s", s.class.Name(), s.n, s.groups.System())
}

type source interface {
	dispatch.Vector
	data() *state
}

// Vector2D is a column of generic 2D vectors.
type Vector2D struct {
	planar
	state
}

// Momentum2D is a column of 2D momentum vectors.
type Momentum2D struct {
	planar
	methods.PlanarMomentum[numeric.Array]
	state
}

// Vector3D is a column of generic 3D vectors.
type Vector3D struct {
	spatial
	state
}

// Momentum3D is a column of 3D momentum vectors.
type Momentum3D struct {
	spatial
	methods.SpatialMomentum[numeric.Array]
	state
}

// Vector4D is a column of generic 4D vectors.
type Vector4D struct {
	lorentz
	state
}

// Momentum4D is a column of 4D momentum vectors.
type Momentum4D struct {
	lorentz
	methods.LorentzMomentum[numeric.Array]
	state
}

// Mask returns the positions where keep is true.
func Mask(keep []bool) *roaring.Bitmap {
	bm := roaring.New()
	for i, k := range keep {
		if k {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// build returns the concrete type of class c. Columns must already have
// length n.
func build(c dispatch.Class, g coords.Groups[numeric.Array], extras []coords.Field[numeric.Array], n int) dispatch.Vector {
	c.Backend = dispatch.Columnar
	if !g.System().Valid() || g.Dimension() != c.Dimension {
		panic(coords.Invariantf("%s cannot hold coordinates %s", c, g.System()))
	}
	s := state{class: c, groups: g, extras: extras, n: n}
	switch {
	case c.Dimension == coords.Dim2 && !c.IsMomentum():
		v := &Vector2D{state: s}
		v.planar = methods.NewPlanar[numeric.Array, []bool, any](v)
		return v
	case c.Dimension == coords.Dim2:
		v := &Momentum2D{state: s}
		v.planar = methods.NewPlanar[numeric.Array, []bool, any](v)
		v.PlanarMomentum = methods.NewPlanarMomentum[numeric.Array](v)
		return v
	case c.Dimension == coords.Dim3 && !c.IsMomentum():
		v := &Vector3D{state: s}
		v.spatial = methods.NewSpatial[numeric.Array, []bool, any](v)
		return v
	case c.Dimension == coords.Dim3:
		v := &Momentum3D{state: s}
		v.spatial = methods.NewSpatial[numeric.Array, []bool, any](v)
		v.SpatialMomentum = methods.NewSpatialMomentum[numeric.Array](v)
		return v
	case !c.IsMomentum():
		v := &Vector4D{state: s}
		v.lorentz = methods.NewLorentz[numeric.Array, []bool, any](v)
		return v
	default:
		v := &Momentum4D{state: s}
		v.lorentz = methods.NewLorentz[numeric.Array, []bool, any](v)
		v.LorentzMomentum = methods.NewLorentzMomentum[numeric.Array](v)
		return v
	}
}

// assemble broadcasts groups and extras to a common length and builds the
// vector.
func assemble(c dispatch.Class, g coords.Groups[numeric.Array], extras []coords.Field[numeric.Array]) (dispatch.Vector, error) {
	elems := g.Elements(g.Dimension())
	cols := append([]numeric.Array(nil), elems...)
	for _, f := range extras {
		cols = append(cols, f.Value)
	}
	cols, err := numeric.Broadcast(cols...)
	if err != nil {
		return nil, err
	}
	out := make([]coords.Field[numeric.Array], len(extras))
	for i, f := range extras {
		out[i] = coords.Named(f.Name, cols[len(elems)+i])
	}
	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	return build(c, coords.FromElements(g.System(), cols[:len(elems)]), out, n), nil
}
