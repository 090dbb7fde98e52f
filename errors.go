package hepvec

import (
	"github.com/hupe1980/hepvec/blobstore"
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/numeric"
	"github.com/hupe1980/hepvec/persist"
)

// Sentinel errors of the subpackages, for use with errors.Is.
var (
	ErrNoSignature             = compute.ErrNoSignature
	ErrDimensionMismatch       = dispatch.ErrDimensionMismatch
	ErrIncompatibleBackends    = dispatch.ErrIncompatibleBackends
	ErrPromoted                = dispatch.ErrPromoted
	ErrMissingParameter        = dispatch.ErrMissingParameter
	ErrInvalidParameter        = dispatch.ErrInvalidParameter
	ErrAmbiguousCoordinates    = coords.ErrAmbiguousCoordinates
	ErrUnrecognizedCoordinates = coords.ErrUnrecognizedCoordinates
	ErrShapeMismatch           = numeric.ErrShapeMismatch
	ErrCorrupt                 = persist.ErrCorrupt
	ErrVersion                 = persist.ErrVersion
	ErrNotFound                = blobstore.ErrNotFound
)

// Error types of the subpackages, for use with errors.As.
type (
	// SignatureError reports a missing kernel signature.
	SignatureError = compute.SignatureError
	// DimensionError reports operands of different dimensions.
	DimensionError = dispatch.DimensionError
	// BackendError reports operands that cannot meet in one backend.
	BackendError = dispatch.BackendError
	// ParameterError reports a missing or unusable parameter.
	ParameterError = dispatch.ParameterError
	// CoordinateError reports an invalid keyword construction.
	CoordinateError = coords.CoordinateError
	// ShapeError reports columns that cannot broadcast.
	ShapeError = numeric.ShapeError
	// InvariantError is the panic value of internal invariant violations.
	InvariantError = coords.InvariantError
)
