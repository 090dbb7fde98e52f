package coords

import (
	"fmt"
	"strings"
)

// Kind identifies which fields a coordinate group exposes.
type Kind uint8

const (
	// None marks an absent group.
	None Kind = iota
	// XY is the Cartesian azimuthal representation (x, y).
	XY
	// RhoPhi is the polar azimuthal representation (rho, phi).
	RhoPhi
	// Z is the Cartesian longitudinal representation (z).
	Z
	// Theta is the polar-angle longitudinal representation (theta).
	Theta
	// Eta is the pseudorapidity longitudinal representation (eta).
	Eta
	// T is the time temporal representation (t).
	T
	// Tau is the proper-time temporal representation (tau).
	Tau
)

// Group is one of the three orthogonal coordinate groups.
type Group uint8

const (
	// GroupAzimuthal is the transverse-plane group.
	GroupAzimuthal Group = iota + 1
	// GroupLongitudinal is the beam-axis group.
	GroupLongitudinal
	// GroupTemporal is the time group.
	GroupTemporal
)

func (g Group) String() string {
	switch g {
	case GroupAzimuthal:
		return "azimuthal"
	case GroupLongitudinal:
		return "longitudinal"
	case GroupTemporal:
		return "temporal"
	default:
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
}

// AzimuthalKinds, LongitudinalKinds and TemporalKinds list the closed
// variant sets in registration order.
var (
	AzimuthalKinds    = []Kind{XY, RhoPhi}
	LongitudinalKinds = []Kind{Z, Theta, Eta}
	TemporalKinds     = []Kind{T, Tau}
)

// Group returns the coordinate group k belongs to.
func (k Kind) Group() Group {
	switch k {
	case XY, RhoPhi:
		return GroupAzimuthal
	case Z, Theta, Eta:
		return GroupLongitudinal
	case T, Tau:
		return GroupTemporal
	default:
		return 0
	}
}

// Names returns the field names of k in element order.
func (k Kind) Names() []string {
	switch k {
	case XY:
		return []string{"x", "y"}
	case RhoPhi:
		return []string{"rho", "phi"}
	case Z:
		return []string{"z"}
	case Theta:
		return []string{"theta"}
	case Eta:
		return []string{"eta"}
	case T:
		return []string{"t"}
	case Tau:
		return []string{"tau"}
	default:
		return nil
	}
}

// Arity returns the number of elements a group of kind k holds.
func (k Kind) Arity() int { return len(k.Names()) }

func (k Kind) String() string {
	if k == None {
		return "none"
	}
	if names := k.Names(); names != nil {
		return strings.Join(names, "")
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Dimension is the number of spacetime dimensions a vector spans.
type Dimension uint8

// Valid dimensions.
const (
	Dim2 Dimension = 2
	Dim3 Dimension = 3
	Dim4 Dimension = 4
)

func (d Dimension) String() string { return fmt.Sprintf("%dD", uint8(d)) }

// Flavor distinguishes plain vectors from momentum vectors.
type Flavor uint8

const (
	// Generic vectors expose only the geometric names.
	Generic Flavor = iota
	// Momentum vectors additionally expose px, pt, E, M and friends.
	Momentum
)

func (f Flavor) String() string {
	if f == Momentum {
		return "momentum"
	}
	return "generic"
}

// System is the coordinate kind of every group of a vector.
type System struct {
	Azimuthal    Kind
	Longitudinal Kind
	Temporal     Kind
}

// Sys2D, Sys3D and Sys4D build systems without naming fields.
func Sys2D(az Kind) System      { return System{Azimuthal: az} }
func Sys3D(az, lon Kind) System { return System{Azimuthal: az, Longitudinal: lon} }
func Sys4D(az, lon, temp Kind) System {
	return System{Azimuthal: az, Longitudinal: lon, Temporal: temp}
}

// Valid reports whether every present group holds a kind of the right group
// and groups are present from azimuthal upwards without gaps.
func (s System) Valid() bool {
	if s.Azimuthal.Group() != GroupAzimuthal {
		return false
	}
	if s.Longitudinal == None {
		return s.Temporal == None
	}
	if s.Longitudinal.Group() != GroupLongitudinal {
		return false
	}
	return s.Temporal == None || s.Temporal.Group() == GroupTemporal
}

// Dimension returns 2, 3 or 4, or 0 for an invalid system.
func (s System) Dimension() Dimension {
	if !s.Valid() {
		return 0
	}
	switch {
	case s.Temporal != None:
		return Dim4
	case s.Longitudinal != None:
		return Dim3
	default:
		return Dim2
	}
}

// Kinds returns the present kinds in group order.
func (s System) Kinds() []Kind {
	out := []Kind{s.Azimuthal}
	if s.Longitudinal != None {
		out = append(out, s.Longitudinal)
	}
	if s.Temporal != None {
		out = append(out, s.Temporal)
	}
	return out
}

// Arity returns the total number of elements of the system.
func (s System) Arity() int {
	return s.Azimuthal.Arity() + s.Longitudinal.Arity() + s.Temporal.Arity()
}

// Truncate drops the groups above dim.
func (s System) Truncate(dim Dimension) System {
	if dim < Dim4 {
		s.Temporal = None
	}
	if dim < Dim3 {
		s.Longitudinal = None
	}
	return s
}

// Name returns the concatenated field names, e.g. "rhophietatau". Absent
// groups contribute nothing.
func (s System) Name() string {
	var b strings.Builder
	for _, k := range s.Kinds() {
		if k != None {
			b.WriteString(k.String())
		}
	}
	return b.String()
}

func (s System) String() string {
	parts := make([]string, 0, 3)
	for _, k := range s.Kinds() {
		parts = append(parts, k.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Systems enumerates every valid system of the given dimension.
func Systems(dim Dimension) []System {
	var out []System
	for _, az := range AzimuthalKinds {
		if dim == Dim2 {
			out = append(out, Sys2D(az))
			continue
		}
		for _, lon := range LongitudinalKinds {
			if dim == Dim3 {
				out = append(out, Sys3D(az, lon))
				continue
			}
			for _, temp := range TemporalKinds {
				out = append(out, Sys4D(az, lon, temp))
			}
		}
	}
	return out
}
