package object

import (
	"sort"
	"strings"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
)

// Field is a named coordinate value.
type Field = coords.Field[float64]

// F returns the field name=v.
func F(name string, v float64) Field { return coords.Named(name, v) }

// Obj builds a vector from named coordinates. The names must form one of
// the allowed combinations; any momentum synonym makes the result a
// momentum vector.
func Obj(fields ...Field) (dispatch.Vector, error) {
	g, err := coords.Gather(fields...)
	if err != nil {
		return nil, err
	}
	if len(g.Extras) > 0 {
		names := make([]string, len(g.Extras))
		for i, f := range g.Extras {
			names[i] = f.Name
		}
		sort.Strings(names)
		return nil, coords.Unrecognizedf("unrecognized coordinates %s, allowed combinations are: %s",
			strings.Join(names, ", "), coords.AllowedCombinations())
	}
	flavor := coords.Generic
	if g.Momentum {
		flavor = coords.Momentum
	}
	return build(class(g.Groups.Dimension(), flavor), g.Groups), nil
}

// FromXY returns the generic 2D vector (x, y).
func FromXY(x, y float64) *Vector2D {
	return NewVector2D(coords.AzimuthalXY[float64]{X: x, Y: y})
}

// FromRhoPhi returns the generic 2D vector with polar coordinates (rho, phi).
func FromRhoPhi(rho, phi float64) *Vector2D {
	return NewVector2D(coords.AzimuthalRhoPhi[float64]{Rho: rho, Phi: phi})
}

// FromXYZ returns the generic 3D vector (x, y, z).
func FromXYZ(x, y, z float64) *Vector3D {
	return NewVector3D(coords.AzimuthalXY[float64]{X: x, Y: y}, coords.LongitudinalZ[float64]{Z: z})
}

// FromXYZT returns the generic 4D vector (x, y, z, t).
func FromXYZT(x, y, z, t float64) *Vector4D {
	return NewVector4D(coords.AzimuthalXY[float64]{X: x, Y: y}, coords.LongitudinalZ[float64]{Z: z}, coords.TemporalT[float64]{T: t})
}

// FromPtEtaPhiM returns the momentum 4D vector of a particle with
// transverse momentum pt, pseudorapidity eta, azimuth phi and mass m.
func FromPtEtaPhiM(pt, eta, phi, m float64) *Momentum4D {
	return NewMomentum4D(coords.AzimuthalRhoPhi[float64]{Rho: pt, Phi: phi}, coords.LongitudinalEta[float64]{Eta: eta}, coords.TemporalTau[float64]{Tau: m})
}

// NewVector2D returns a generic 2D vector. It panics on a nil group.
func NewVector2D(az coords.Azimuthal[float64]) *Vector2D {
	return build(class(coords.Dim2, coords.Generic), coords.Groups[float64]{Az: az}).(*Vector2D)
}

// NewMomentum2D returns a 2D momentum vector. It panics on a nil group.
func NewMomentum2D(az coords.Azimuthal[float64]) *Momentum2D {
	return build(class(coords.Dim2, coords.Momentum), coords.Groups[float64]{Az: az}).(*Momentum2D)
}

// NewVector3D returns a generic 3D vector. It panics on a nil group.
func NewVector3D(az coords.Azimuthal[float64], lon coords.Longitudinal[float64]) *Vector3D {
	return build(class(coords.Dim3, coords.Generic), coords.Groups[float64]{Az: az, Lon: lon}).(*Vector3D)
}

// NewMomentum3D returns a 3D momentum vector. It panics on a nil group.
func NewMomentum3D(az coords.Azimuthal[float64], lon coords.Longitudinal[float64]) *Momentum3D {
	return build(class(coords.Dim3, coords.Momentum), coords.Groups[float64]{Az: az, Lon: lon}).(*Momentum3D)
}

// NewVector4D returns a generic 4D vector. It panics on a nil group.
func NewVector4D(az coords.Azimuthal[float64], lon coords.Longitudinal[float64], temp coords.Temporal[float64]) *Vector4D {
	return build(class(coords.Dim4, coords.Generic), coords.Groups[float64]{Az: az, Lon: lon, Temp: temp}).(*Vector4D)
}

// NewMomentum4D returns a 4D momentum vector. It panics on a nil group.
func NewMomentum4D(az coords.Azimuthal[float64], lon coords.Longitudinal[float64], temp coords.Temporal[float64]) *Momentum4D {
	return build(class(coords.Dim4, coords.Momentum), coords.Groups[float64]{Az: az, Lon: lon, Temp: temp}).(*Momentum4D)
}

// Groups returns the coordinate groups of an object vector.
func Groups(v dispatch.Vector) (coords.Groups[float64], bool) {
	s, ok := v.(source)
	if !ok {
		return coords.Groups[float64]{}, false
	}
	return s.data(), true
}

// New builds a vector of the given flavor from groups.
func New(flavor coords.Flavor, g coords.Groups[float64]) (dispatch.Vector, error) {
	if !g.System().Valid() {
		return nil, coords.Unrecognizedf("incomplete coordinate groups %s", g.System())
	}
	return build(class(g.Dimension(), flavor), g), nil
}
