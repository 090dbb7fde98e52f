package jagged

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/methods"
	"github.com/hupe1980/hepvec/numeric"
)

type (
	planar  = methods.Planar[Floats, Bools, any]
	spatial = methods.Spatial[Floats, Bools, any]
	lorentz = methods.Lorentz[Floats, Bools, any]
)

// state holds the fields shared by every jagged vector type. Every field
// uses offsets.
type state struct {
	class   dispatch.Class
	groups  coords.Groups[Floats]
	extras  []coords.Field[Floats]
	offsets []int
}

func (s *state) data() *state { return s }

// Class returns the vector type.
func (s *state) Class() dispatch.Class { return s.class }

// System classifies the stored groups.
func (s *state) System() coords.System { return s.groups.System() }

// Len returns the number of events.
func (s *state) Len() int { return len(s.offsets) - 1 }

// Counts returns the number of records per event.
func (s *state) Counts() []int {
	out := make([]int, s.Len())
	for i := range out {
		out[i] = s.offsets[i+1] - s.offsets[i]
	}
	return out
}

// Offsets returns a copy of the event offsets.
func (s *state) Offsets() []int { return slices.Clone(s.offsets) }

// Extras returns the payload fields.
func (s *state) Extras() []coords.Field[Floats] {
	return slices.Clone(s.extras)
}

// Column returns the payload field called name.
func (s *state) Column(name string) (Floats, bool) {
	for _, f := range s.extras {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Floats{}, false
}

// Event returns the records of event i as a columnar vector.
func (s *state) Event(i int) dispatch.Vector {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("jagged: event %d out of range [0:%d]", i, s.Len()))
	}
	lo, hi := s.offsets[i], s.offsets[i+1]
	return s.columns(func(a numeric.Array) numeric.Array { return a[lo:hi] })
}

// Flatten returns every record of every event as one columnar vector.
func (s *state) Flatten() dispatch.Vector {
	return s.columns(func(a numeric.Array) numeric.Array { return a })
}

func (s *state) columns(slice func(numeric.Array) numeric.Array) dispatch.Vector {
	g := coords.Map(s.groups, func(f Floats) numeric.Array { return slice(f.Content) })
	extras := make([]columnar.Field, len(s.extras))
	for i, f := range s.extras {
		extras[i] = coords.Named(f.Name, slice(f.Value.Content))
	}
	v, err := columnar.New(s.class.Flavor, g, extras...)
	if err != nil {
		panic(coords.Invariantf("jagged fields out of step: %v", err))
	}
	return v
}

// Filter keeps the events whose index is set in keep.
func (s *state) Filter(keep *roaring.Bitmap) dispatch.Vector {
	offsets := []int{0}
	var records []int
	for i := 0; i < s.Len(); i++ {
		if !keep.Contains(uint32(i)) {
			continue
		}
		for j := s.offsets[i]; j < s.offsets[i+1]; j++ {
			records = append(records, j)
		}
		offsets = append(offsets, len(records))
	}
	return s.take(offsets, records)
}

// Select keeps the records whose flat index is set in keep. Every event is
// kept, possibly empty.
func (s *state) Select(keep *roaring.Bitmap) dispatch.Vector {
	offsets := make([]int, 1, len(s.offsets))
	var records []int
	for i := 0; i < s.Len(); i++ {
		for j := s.offsets[i]; j < s.offsets[i+1]; j++ {
			if keep.Contains(uint32(j)) {
				records = append(records, j)
			}
		}
		offsets = append(offsets, len(records))
	}
	return s.take(offsets, records)
}

func (s *state) take(offsets, records []int) dispatch.Vector {
	pick := func(f Floats) Floats {
		out := make(numeric.Array, len(records))
		for k, j := range records {
			out[k] = f.Content[j]
		}
		return Floats{Offsets: offsets, Content: out}
	}
	extras := make([]coords.Field[Floats], len(s.extras))
	for i, f := range s.extras {
		extras[i] = coords.Named(f.Name, pick(f.Value))
	}
	return build(s.class, coords.Map(s.groups, pick), extras, offsets)
}

// Replace overwrites the receiver's coordinates with those of src, a
// jagged vector of the same dimension and offsets. Payload fields are kept.
// It is the in-place form of compound assignment and requires exclusive
// access to the receiver.
func (s *state) Replace(src dispatch.Vector) error {
	o, ok := src.(source)
	if !ok {
		return dispatch.NewBackendError(dispatch.Jagged, src.Class())
	}
	d := o.data()
	if d.groups.Dimension() != s.groups.Dimension() {
		return &dispatch.DimensionError{Op: "replace", Dimensions: []coords.Dimension{s.groups.Dimension(), d.groups.Dimension()}}
	}
	if !sameOffsets(s.offsets, d.offsets) {
		return &numeric.ShapeError{Lengths: []int{s.offsets[len(s.offsets)-1], d.offsets[len(d.offsets)-1]}}
	}
	s.groups = d.groups
	return nil
}

func (s *state) String() string {
	return fmt.Sprintf("%s[%d events]%s", s.class.Name(), s.Len(), s.groups.System())
}

type source interface {
	dispatch.Vector
	data() *state
}

// Vector2D holds generic 2D vectors per event.
type Vector2D struct {
	planar
	state
}

// Momentum2D holds 2D momentum vectors per event.
type Momentum2D struct {
	planar
	methods.PlanarMomentum[Floats]
	state
}

// Vector3D holds generic 3D vectors per event.
type Vector3D struct {
	spatial
	state
}

// Momentum3D holds 3D momentum vectors per event.
type Momentum3D struct {
	spatial
	methods.SpatialMomentum[Floats]
	state
}

// Vector4D holds generic 4D vectors per event.
type Vector4D struct {
	lorentz
	state
}

// Momentum4D holds 4D momentum vectors per event.
type Momentum4D struct {
	lorentz
	methods.LorentzMomentum[Floats]
	state
}

// Mask returns the flat record positions where keep is true.
func Mask(keep Bools) *roaring.Bitmap {
	bm := roaring.New()
	for i, k := range keep.Content {
		if k {
			bm.Add(uint32(i))
		}
	}
	return bm
}

func build(c dispatch.Class, g coords.Groups[Floats], extras []coords.Field[Floats], offsets []int) dispatch.Vector {
	c.Backend = dispatch.Jagged
	if !g.System().Valid() || g.Dimension() != c.Dimension {
		panic(coords.Invariantf("%s cannot hold coordinates %s", c, g.System()))
	}
	s := state{class: c, groups: g, extras: extras, offsets: offsets}
	switch {
	case c.Dimension == coords.Dim2 && !c.IsMomentum():
		v := &Vector2D{state: s}
		v.planar = methods.NewPlanar[Floats, Bools, any](v)
		return v
	case c.Dimension == coords.Dim2:
		v := &Momentum2D{state: s}
		v.planar = methods.NewPlanar[Floats, Bools, any](v)
		v.PlanarMomentum = methods.NewPlanarMomentum[Floats](v)
		return v
	case c.Dimension == coords.Dim3 && !c.IsMomentum():
		v := &Vector3D{state: s}
		v.spatial = methods.NewSpatial[Floats, Bools, any](v)
		return v
	case c.Dimension == coords.Dim3:
		v := &Momentum3D{state: s}
		v.spatial = methods.NewSpatial[Floats, Bools, any](v)
		v.SpatialMomentum = methods.NewSpatialMomentum[Floats](v)
		return v
	case !c.IsMomentum():
		v := &Vector4D{state: s}
		v.lorentz = methods.NewLorentz[Floats, Bools, any](v)
		return v
	default:
		v := &Momentum4D{state: s}
		v.lorentz = methods.NewLorentz[Floats, Bools, any](v)
		v.LorentzMomentum = methods.NewLorentzMomentum[Floats](v)
		return v
	}
}

// assemble expands uniform fields to the shared offsets and builds the
// vector.
func assemble(c dispatch.Class, g coords.Groups[Floats], extras []coords.Field[Floats]) (dispatch.Vector, error) {
	elems := g.Elements(g.Dimension())
	all := slices.Clone(elems)
	for _, f := range extras {
		all = append(all, f.Value)
	}
	offsets, err := offsetsOf(all...)
	if err != nil {
		return nil, err
	}
	if offsets == nil {
		panic(coords.Invariantf("jagged %s without offsets", c))
	}
	total := offsets[len(offsets)-1]
	for i, f := range all {
		if f.Offsets != nil {
			if len(f.Content) != total {
				return nil, &numeric.ShapeError{Lengths: []int{total, len(f.Content)}}
			}
			continue
		}
		if len(f.Content) != 1 {
			return nil, &numeric.ShapeError{Lengths: []int{total, len(f.Content)}}
		}
		all[i] = Floats{Offsets: offsets, Content: numeric.Fill(total, f.Content[0])}
	}
	out := make([]coords.Field[Floats], len(extras))
	for i, f := range extras {
		out[i] = coords.Named(f.Name, all[len(elems)+i])
	}
	return build(c, coords.FromElements(g.System(), all[:len(elems)]), out, offsets), nil
}
