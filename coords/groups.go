package coords

// Azimuthal is the transverse-plane coordinate group of a vector.
// The only implementations are AzimuthalXY and AzimuthalRhoPhi.
type Azimuthal[E any] interface {
	Kind() Kind
	Elements() []E
	azimuthal()
}

// Longitudinal is the beam-axis coordinate group of a 3D or 4D vector.
// The only implementations are LongitudinalZ, LongitudinalTheta and
// LongitudinalEta.
type Longitudinal[E any] interface {
	Kind() Kind
	Elements() []E
	longitudinal()
}

// Temporal is the time coordinate group of a 4D vector.
// The only implementations are TemporalT and TemporalTau.
type Temporal[E any] interface {
	Kind() Kind
	Elements() []E
	temporal()
}

// AzimuthalXY holds Cartesian transverse coordinates.
type AzimuthalXY[E any] struct{ X, Y E }

func (AzimuthalXY[E]) Kind() Kind      { return XY }
func (g AzimuthalXY[E]) Elements() []E { return []E{g.X, g.Y} }
func (AzimuthalXY[E]) azimuthal()      {}

// AzimuthalRhoPhi holds polar transverse coordinates.
type AzimuthalRhoPhi[E any] struct{ Rho, Phi E }

func (AzimuthalRhoPhi[E]) Kind() Kind      { return RhoPhi }
func (g AzimuthalRhoPhi[E]) Elements() []E { return []E{g.Rho, g.Phi} }
func (AzimuthalRhoPhi[E]) azimuthal()      {}

// LongitudinalZ holds the Cartesian longitudinal coordinate.
type LongitudinalZ[E any] struct{ Z E }

func (LongitudinalZ[E]) Kind() Kind      { return Z }
func (g LongitudinalZ[E]) Elements() []E { return []E{g.Z} }
func (LongitudinalZ[E]) longitudinal()   {}

// LongitudinalTheta holds the polar angle.
type LongitudinalTheta[E any] struct{ Theta E }

func (LongitudinalTheta[E]) Kind() Kind      { return Theta }
func (g LongitudinalTheta[E]) Elements() []E { return []E{g.Theta} }
func (LongitudinalTheta[E]) longitudinal()   {}

// LongitudinalEta holds the pseudorapidity.
type LongitudinalEta[E any] struct{ Eta E }

func (LongitudinalEta[E]) Kind() Kind      { return Eta }
func (g LongitudinalEta[E]) Elements() []E { return []E{g.Eta} }
func (LongitudinalEta[E]) longitudinal()   {}

// TemporalT holds the time coordinate.
type TemporalT[E any] struct{ T E }

func (TemporalT[E]) Kind() Kind      { return T }
func (g TemporalT[E]) Elements() []E { return []E{g.T} }
func (TemporalT[E]) temporal()       {}

// TemporalTau holds the proper time.
type TemporalTau[E any] struct{ Tau E }

func (TemporalTau[E]) Kind() Kind      { return Tau }
func (g TemporalTau[E]) Elements() []E { return []E{g.Tau} }
func (TemporalTau[E]) temporal()       {}

// MakeAzimuthal builds an azimuthal group of kind k from its elements.
// It panics if k is not azimuthal or the element count is wrong.
func MakeAzimuthal[E any](k Kind, elems []E) Azimuthal[E] {
	checkArity(k, elems)
	switch k {
	case XY:
		return AzimuthalXY[E]{X: elems[0], Y: elems[1]}
	case RhoPhi:
		return AzimuthalRhoPhi[E]{Rho: elems[0], Phi: elems[1]}
	}
	panic(Invariantf("%s is not an azimuthal kind", k))
}

// MakeLongitudinal builds a longitudinal group of kind k from its elements.
func MakeLongitudinal[E any](k Kind, elems []E) Longitudinal[E] {
	checkArity(k, elems)
	switch k {
	case Z:
		return LongitudinalZ[E]{Z: elems[0]}
	case Theta:
		return LongitudinalTheta[E]{Theta: elems[0]}
	case Eta:
		return LongitudinalEta[E]{Eta: elems[0]}
	}
	panic(Invariantf("%s is not a longitudinal kind", k))
}

// MakeTemporal builds a temporal group of kind k from its elements.
func MakeTemporal[E any](k Kind, elems []E) Temporal[E] {
	checkArity(k, elems)
	switch k {
	case T:
		return TemporalT[E]{T: elems[0]}
	case Tau:
		return TemporalTau[E]{Tau: elems[0]}
	}
	panic(Invariantf("%s is not a temporal kind", k))
}

func checkArity[E any](k Kind, elems []E) {
	if len(elems) != k.Arity() {
		panic(Invariantf("kind %s expects %d elements, got %d", k, k.Arity(), len(elems)))
	}
}

// ClassifyAzimuthal returns the kind of an azimuthal group, or None for a
// nil group. A System without an azimuthal kind is not Valid.
func ClassifyAzimuthal[E any](g Azimuthal[E]) Kind {
	switch g.(type) {
	case nil:
		return None
	case AzimuthalXY[E]:
		return XY
	case AzimuthalRhoPhi[E]:
		return RhoPhi
	}
	panic(Invariantf("%T is not a recognized azimuthal coordinate kind", g))
}

// ClassifyLongitudinal returns the kind of a longitudinal group, or None for
// a nil group.
func ClassifyLongitudinal[E any](g Longitudinal[E]) Kind {
	switch g.(type) {
	case nil:
		return None
	case LongitudinalZ[E]:
		return Z
	case LongitudinalTheta[E]:
		return Theta
	case LongitudinalEta[E]:
		return Eta
	}
	panic(Invariantf("%T is not a recognized longitudinal coordinate kind", g))
}

// ClassifyTemporal returns the kind of a temporal group, or None for a nil
// group.
func ClassifyTemporal[E any](g Temporal[E]) Kind {
	switch g.(type) {
	case nil:
		return None
	case TemporalT[E]:
		return T
	case TemporalTau[E]:
		return Tau
	}
	panic(Invariantf("%T is not a recognized temporal coordinate kind", g))
}

// Groups is the set of coordinate groups of one vector. Lon and Temp are nil
// for lower-dimensional vectors.
type Groups[E any] struct {
	Az   Azimuthal[E]
	Lon  Longitudinal[E]
	Temp Temporal[E]
}

// System classifies every present group.
func (g Groups[E]) System() System {
	return System{
		Azimuthal:    ClassifyAzimuthal(g.Az),
		Longitudinal: ClassifyLongitudinal(g.Lon),
		Temporal:     ClassifyTemporal(g.Temp),
	}
}

// Dimension returns the dimension implied by the present groups.
func (g Groups[E]) Dimension() Dimension {
	switch {
	case g.Temp != nil:
		return Dim4
	case g.Lon != nil:
		return Dim3
	default:
		return Dim2
	}
}

// Elements flattens the groups up to dim in kind order.
func (g Groups[E]) Elements(dim Dimension) []E {
	out := append([]E(nil), g.Az.Elements()...)
	if dim >= Dim3 && g.Lon != nil {
		out = append(out, g.Lon.Elements()...)
	}
	if dim >= Dim4 && g.Temp != nil {
		out = append(out, g.Temp.Elements()...)
	}
	return out
}

// Truncate drops the groups above dim.
func (g Groups[E]) Truncate(dim Dimension) Groups[E] {
	if dim < Dim4 {
		g.Temp = nil
	}
	if dim < Dim3 {
		g.Lon = nil
	}
	return g
}

// FromElements rebuilds groups of the given system from flat elements.
func FromElements[E any](sys System, elems []E) Groups[E] {
	if len(elems) != sys.Arity() {
		panic(Invariantf("system %s expects %d elements, got %d", sys, sys.Arity(), len(elems)))
	}
	n := sys.Azimuthal.Arity()
	g := Groups[E]{Az: MakeAzimuthal(sys.Azimuthal, elems[:n])}
	if sys.Longitudinal != None {
		g.Lon = MakeLongitudinal(sys.Longitudinal, elems[n:n+1])
		n++
	}
	if sys.Temporal != None {
		g.Temp = MakeTemporal(sys.Temporal, elems[n:n+1])
	}
	return g
}

// Map applies fn to every element, producing groups over another element
// type with the same kinds.
func Map[E, F any](g Groups[E], fn func(E) F) Groups[F] {
	sys := g.System()
	elems := g.Elements(sys.Dimension())
	out := make([]F, len(elems))
	for i, e := range elems {
		out[i] = fn(e)
	}
	return FromElements(sys, out)
}
