// Package kernels assembles the process-wide kernel registries.
//
// The registries are populated and frozen in init and are read-only for the
// rest of the process lifetime, so lookups need no locking.
package kernels

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/compute/lorentz"
	"github.com/hupe1980/hepvec/compute/planar"
	"github.com/hupe1980/hepvec/compute/spatial"
	"github.com/hupe1980/hepvec/numeric"
)

// Build returns a frozen registry holding every planar, spatial and Lorentz
// kernel instantiated for element type T.
func Build[T any]() *compute.Registry[T] {
	r := compute.NewRegistry[T]()
	planar.Register(r)
	spatial.Register(r)
	lorentz.Register(r)
	r.Freeze()
	return r
}

var (
	float64Registry *compute.Registry[float64]
	arrayRegistry   *compute.Registry[numeric.Array]
)

// init populates the shared registries.
// No mutex needed: Go guarantees init() runs before any other code in
// importing packages.
func init() {
	float64Registry = Build[float64]()
	arrayRegistry = Build[numeric.Array]()
}

// Float64 returns the registry for scalar backends.
func Float64() *compute.Registry[float64] { return float64Registry }

// Array returns the registry for column-array backends.
func Array() *compute.Registry[numeric.Array] { return arrayRegistry }
