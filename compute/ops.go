package compute

import "github.com/hupe1980/hepvec/coords"

// Planar operations.
const (
	OpX               = "x"
	OpY               = "y"
	OpRho             = "rho"
	OpRho2            = "rho2"
	OpPhi             = "phi"
	OpDeltaPhi        = "deltaphi"
	OpRotateZ         = "rotateZ"
	OpTransform2D     = "transform2D"
	OpUnit            = "unit"
	OpDot             = "dot"
	OpAdd             = "add"
	OpSubtract        = "subtract"
	OpScale           = "scale"
	OpEqual           = "equal"
	OpNotEqual        = "not_equal"
	OpIsClose         = "isclose"
	OpIsParallel      = "is_parallel"
	OpIsAntiparallel  = "is_antiparallel"
	OpIsPerpendicular = "is_perpendicular"
)

// Spatial operations.
const (
	OpZ                = "z"
	OpTheta            = "theta"
	OpEta              = "eta"
	OpCosTheta         = "costheta"
	OpCotTheta         = "cottheta"
	OpMag              = "mag"
	OpMag2             = "mag2"
	OpCross            = "cross"
	OpDeltaAngle       = "deltaangle"
	OpDeltaEta         = "deltaeta"
	OpDeltaR           = "deltaR"
	OpDeltaR2          = "deltaR2"
	OpRotateX          = "rotateX"
	OpRotateY          = "rotateY"
	OpRotateAxis       = "rotate_axis"
	OpRotateQuaternion = "rotate_quaternion"
	OpTransform3D      = "transform3D"
)

// Lorentz operations.
const (
	OpT                 = "t"
	OpT2                = "t2"
	OpTau               = "tau"
	OpTau2              = "tau2"
	OpBeta              = "beta"
	OpGamma             = "gamma"
	OpRapidity          = "rapidity"
	OpEt                = "Et"
	OpEt2               = "Et2"
	OpMt                = "Mt"
	OpMt2               = "Mt2"
	OpDeltaRapidityPhi  = "deltaRapidityPhi"
	OpDeltaRapidityPhi2 = "deltaRapidityPhi2"
	OpBoostP4           = "boost_p4"
	OpBoostBeta3        = "boost_beta3"
	OpBoostXBeta        = "boostX_beta"
	OpBoostYBeta        = "boostY_beta"
	OpBoostZBeta        = "boostZ_beta"
	OpBoostXGamma       = "boostX_gamma"
	OpBoostYGamma       = "boostY_gamma"
	OpBoostZGamma       = "boostZ_gamma"
	OpTransform4D       = "transform4D"
	OpToBeta3           = "to_beta3"
	OpIsTimelike        = "is_timelike"
	OpIsSpacelike       = "is_spacelike"
	OpIsLightlike       = "is_lightlike"
)

// ConvertOp names the conversion to target, e.g. "to_rhophieta".
func ConvertOp(target coords.System) string { return "to_" + target.Name() }

// EqualityOps require operands of equal dimension.
var EqualityOps = map[string]bool{
	OpEqual:    true,
	OpNotEqual: true,
	OpIsClose:  true,
}
