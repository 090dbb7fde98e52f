package dispatch

import (
	"fmt"

	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/numeric"
)

// Frame holds the operands and parameters of one call lifted into a
// backend's element type.
type Frame[E any] struct {
	Operands []Operand[E]
	Params   []E
}

// Reconstitutor wraps raw kernel output in a backend's result types.
type Reconstitutor[E any] interface {
	// NewVector builds a concrete vector of class c from op. The groups of
	// op may mix broadcastable element lengths.
	NewVector(c Class, op Operand[E]) (Vector, error)
	// Scalar wraps a numeric result.
	Scalar(v E) any
	// Bool wraps a truth-valued result.
	Bool(v E) any
}

// Backend is a numeric container implementation.
type Backend[E any] interface {
	Reconstitutor[E]
	ID() BackendID
	Lib() numeric.Lib[E]
	Registry() *compute.Registry[E]
	// Bind lifts the vectors and parameters of a call into E. It returns a
	// *BackendError for vectors the backend cannot absorb and a
	// *ParameterError for parameters it cannot represent.
	Bind(op string, vectors []Vector, params []any) (Frame[E], error)
}

// Broadcaster is implemented by backends whose elements have a length that
// must agree across a kernel's arguments.
type Broadcaster[E any] interface {
	Broadcast(args []E) ([]E, error)
}

type handler struct {
	lib     string
	run     func(c Call) (any, error)
	project func(v Vector, dim coords.Dimension, overrides []Override) (Vector, error)
}

// handlers is written by Register during package initialization only.
// No mutex needed: Go guarantees init() runs before any other code.
var handlers [maxBackend]*handler

// Register installs b as the handler for its BackendID. Backends call it
// from init. It panics on an unknown or already registered id and when the
// registry is not frozen.
func Register[E any](b Backend[E]) {
	id := b.ID()
	if id == 0 || id >= maxBackend {
		panic(fmt.Sprintf("dispatch: register unknown backend %s", id))
	}
	if handlers[id] != nil {
		panic(fmt.Sprintf("dispatch: backend %s registered twice", id))
	}
	if !b.Registry().Frozen() {
		panic(fmt.Sprintf("dispatch: backend %s registered with a mutable registry", id))
	}
	handlers[id] = &handler{
		lib: b.Lib().Name(),
		run: func(c Call) (any, error) {
			return run(b, c)
		},
		project: func(v Vector, dim coords.Dimension, overrides []Override) (Vector, error) {
			return project(b, v, dim, overrides)
		},
	}
}

// Registered reports whether a backend is installed for id.
func Registered(id BackendID) bool {
	return id > 0 && id < maxBackend && handlers[id] != nil
}

func handlerFor(id BackendID) *handler {
	if !Registered(id) {
		panic(coords.Invariantf("no backend registered for %s", id))
	}
	return handlers[id]
}
