package compute

import (
	"fmt"

	"github.com/hupe1980/hepvec/coords"
)

// Group selects the family of kernels an operation is looked up in.
type Group uint8

const (
	// Auto selects the group from the operands' dimensions.
	Auto Group = iota
	// Planar kernels read the azimuthal group only.
	Planar
	// Spatial kernels read the azimuthal and longitudinal groups.
	Spatial
	// Lorentz kernels read all three groups.
	Lorentz
)

// Groups lists the concrete groups from lowest to highest.
var Groups = []Group{Planar, Spatial, Lorentz}

// GroupFor returns the group matching a dimension.
func GroupFor(dim coords.Dimension) Group {
	switch dim {
	case coords.Dim2:
		return Planar
	case coords.Dim3:
		return Spatial
	case coords.Dim4:
		return Lorentz
	default:
		return Auto
	}
}

// Dimension returns the number of dimensions the group's kernels read.
func (g Group) Dimension() coords.Dimension {
	switch g {
	case Planar:
		return coords.Dim2
	case Spatial:
		return coords.Dim3
	case Lorentz:
		return coords.Dim4
	default:
		return 0
	}
}

func (g Group) String() string {
	switch g {
	case Auto:
		return "auto"
	case Planar:
		return "planar"
	case Spatial:
		return "spatial"
	case Lorentz:
		return "lorentz"
	default:
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
}
