package dispatch

import (
	"fmt"
	"time"

	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/numeric"
)

// Call describes one operation request.
type Call struct {
	// Op is the operation name, e.g. "rho" or "boost_p4".
	Op string
	// Group selects the kernel family. Auto picks it from the lowest
	// operand dimension.
	Group compute.Group
	// Vectors holds every vector argument in kernel order.
	Vectors []Vector
	// Params holds the non-vector parameters in kernel order.
	Params []any
	// Origin is the index in Vectors of the vector whose untouched groups
	// an update result keeps.
	Origin int
	// Footing is the number of vectors, counted from Origin, that decide
	// the result's flavor. Zero means every vector.
	Footing int
}

// Do runs c on the backend selected by ResolveHandler and wraps the result
// in that backend's types.
func Do(c Call) (any, error) {
	id := ResolveHandler(c.Vectors)
	h := handlerFor(id)

	start := time.Now()
	res, err := h.run(c)
	notify(Event{
		Op:       c.Op,
		Backend:  id,
		Lib:      h.lib,
		Duration: time.Since(start),
		Err:      err,
	})
	return res, err
}

// Typed runs c and asserts the result type. A result of another type means
// the call was promoted to a backend the caller did not expect; Typed then
// returns a *BackendError wrapping ErrPromoted.
func Typed[T any](c Call) (T, error) {
	var zero T
	res, err := Do(c)
	if err != nil {
		return zero, err
	}
	t, ok := res.(T)
	if !ok {
		return zero, &BackendError{
			Handler: ResolveHandler(c.Vectors),
			Operand: fmt.Sprintf("%T", res),
			cause:   ErrPromoted,
		}
	}
	return t, nil
}

func footing(c Call) []Vector {
	if c.Footing == 0 {
		return c.Vectors
	}
	return c.Vectors[c.Origin : c.Origin+c.Footing]
}

func run[E any](b Backend[E], c Call) (any, error) {
	if c.Origin < 0 || c.Origin >= len(c.Vectors) {
		panic(coords.Invariantf("%s: origin %d out of range", c.Op, c.Origin))
	}

	frame, err := b.Bind(c.Op, c.Vectors, c.Params)
	if err != nil {
		return nil, err
	}

	minDim := coords.Dim4
	dims := make([]coords.Dimension, len(frame.Operands))
	for i, op := range frame.Operands {
		dims[i] = op.Dimension()
		minDim = min(minDim, dims[i])
	}
	if compute.EqualityOps[c.Op] {
		for _, d := range dims {
			if d != dims[0] {
				return nil, &DimensionError{Op: c.Op, Dimensions: dims}
			}
		}
	}

	reg := b.Registry()
	group := c.Group
	if group == compute.Auto {
		group = selectGroup(reg, c.Op, minDim)
	}
	if group == compute.Auto || group.Dimension() > frame.Operands[c.Origin].Dimension() {
		systems := make([]coords.System, len(frame.Operands))
		for i, op := range frame.Operands {
			systems[i] = op.System()
		}
		g := group
		if g == compute.Auto {
			g = compute.GroupFor(minDim)
		}
		return nil, &compute.SignatureError{Group: g, Op: c.Op, Signature: compute.SignatureOf(systems...)}
	}

	// Operands below the group's dimension keep their own groups; mixed
	// signatures such as (4D, 3D) are registered explicitly.
	dim := group.Dimension()
	systems := make([]coords.System, len(frame.Operands))
	for i, op := range frame.Operands {
		systems[i] = op.System().Truncate(dim)
	}
	entry, err := reg.Lookup(group, c.Op, compute.SignatureOf(systems...))
	if err != nil {
		return nil, err
	}
	if len(frame.Params) != entry.Params {
		return nil, &ParameterError{
			Op:    c.Op,
			Msg:   fmt.Sprintf("expects %d parameters, got %d", entry.Params, len(frame.Params)),
			cause: ErrInvalidParameter,
		}
	}

	args := append([]E(nil), frame.Params...)
	for _, op := range frame.Operands {
		args = append(args, op.Groups.Elements(dim)...)
	}
	if br, ok := b.(Broadcaster[E]); ok {
		if args, err = br.Broadcast(args); err != nil {
			return nil, err
		}
	}

	out, err := invoke(entry.Kernel, b.Lib(), args)
	if err != nil {
		return nil, err
	}
	if len(out) != entry.Shape.Arity() {
		panic(coords.Invariantf("%s %s returned %d values for shape %s", group, c.Op, len(out), entry.Shape))
	}
	return reconstitute(b, c, frame, entry.Shape, out)
}

// selectGroup steps down from the lowest operand dimension until op has a
// kernel family. It returns Auto when none has.
func selectGroup[E any](reg *compute.Registry[E], op string, dim coords.Dimension) compute.Group {
	for g := compute.GroupFor(dim); g != compute.Auto; g-- {
		if reg.Has(g, op) {
			return g
		}
	}
	return compute.Auto
}

// invoke runs a kernel and turns element-length panics into errors.
func invoke[E any](k compute.Kernel[E], l numeric.Lib[E], args []E) (out []E, err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*numeric.ShapeError)
			if !ok {
				panic(r)
			}
			err = se
		}
	}()
	return k(l, args), nil
}

func reconstitute[E any](b Backend[E], c Call, frame Frame[E], shape compute.Shape, out []E) (any, error) {
	origin := frame.Operands[c.Origin]

	var groups coords.Groups[E]
	switch shape.Kind {
	case compute.ScalarShape:
		return b.Scalar(out[0]), nil
	case compute.BoolShape:
		return b.Bool(out[0]), nil
	case compute.UpdateShape:
		lead := coords.FromElements(shape.System, out)
		groups = origin.Groups
		groups.Az = lead.Az
		if lead.Lon != nil {
			groups.Lon = lead.Lon
		}
		if lead.Temp != nil {
			groups.Temp = lead.Temp
		}
	case compute.VectorShape:
		groups = coords.FromElements(shape.System, out)
	default:
		panic(coords.Invariantf("%s: unknown result shape %s", c.Op, shape))
	}

	on := footing(c)
	flavor := ResolveFlavor(on)
	if shape.Generic {
		flavor = coords.Generic
	}
	var extras []coords.Field[E]
	if len(on) == 1 {
		extras = origin.Extras
	}

	class := Class{Backend: b.ID(), Dimension: groups.Dimension(), Flavor: flavor}
	return b.NewVector(class, Operand[E]{Groups: groups, Flavor: flavor, Extras: extras})
}
