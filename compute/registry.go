package compute

import (
	"fmt"
	"sort"

	"github.com/hupe1980/hepvec/numeric"
)

// Kernel computes one formula for one signature. args holds the non-vector
// parameters followed by every operand's elements in kind order. The result
// holds Shape.Arity() values.
type Kernel[T any] func(l numeric.Lib[T], args []T) []T

// Entry is a registered kernel with its declared output.
type Entry[T any] struct {
	Kernel Kernel[T]
	Shape  Shape
	// Params is the number of non-vector parameters the kernel expects.
	Params int
}

type key struct {
	group Group
	op    string
	sig   Signature
}

// Registry maps (group, operation, signature) to kernels.
//
// A registry is populated once, frozen, and read-only afterwards. Lookups
// take no locks: population must happen-before any lookup, which package
// init provides.
type Registry[T any] struct {
	entries map[key]Entry[T]
	ops     map[Group]map[string][]Signature
	frozen  bool
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[key]Entry[T]),
		ops:     make(map[Group]map[string][]Signature),
	}
}

// Register adds a kernel. It panics on duplicate registration, on a malformed
// shape, or after Freeze.
func (r *Registry[T]) Register(g Group, op string, sig Signature, params int, shape Shape, k Kernel[T]) {
	if r.frozen {
		panic(fmt.Sprintf("compute: register %s %q after freeze", g, op))
	}
	if g == Auto {
		panic(fmt.Sprintf("compute: register %q in auto group", op))
	}
	if !shape.Valid() {
		panic(fmt.Sprintf("compute: register %s %q with invalid shape %s", g, op, shape))
	}
	kk := key{group: g, op: op, sig: sig}
	if _, dup := r.entries[kk]; dup {
		panic(fmt.Sprintf("compute: duplicate kernel %s %q %s", g, op, sig))
	}
	r.entries[kk] = Entry[T]{Kernel: k, Shape: shape, Params: params}
	if r.ops[g] == nil {
		r.ops[g] = make(map[string][]Signature)
	}
	r.ops[g][op] = append(r.ops[g][op], sig)
}

// Freeze makes the registry read-only.
func (r *Registry[T]) Freeze() { r.frozen = true }

// Frozen reports whether Freeze was called.
func (r *Registry[T]) Frozen() bool { return r.frozen }

// Lookup returns the kernel registered for (g, op, sig) or a *SignatureError.
func (r *Registry[T]) Lookup(g Group, op string, sig Signature) (Entry[T], error) {
	e, ok := r.entries[key{group: g, op: op, sig: sig}]
	if !ok {
		return Entry[T]{}, &SignatureError{Group: g, Op: op, Signature: sig}
	}
	return e, nil
}

// Has reports whether op has any kernel in group g.
func (r *Registry[T]) Has(g Group, op string) bool {
	_, ok := r.ops[g][op]
	return ok
}

// Ops returns the sorted operation names of group g.
func (r *Registry[T]) Ops(g Group) []string {
	out := make([]string, 0, len(r.ops[g]))
	for op := range r.ops[g] {
		out = append(out, op)
	}
	sort.Strings(out)
	return out
}

// Signatures returns the signatures registered for op in group g, in
// registration order.
func (r *Registry[T]) Signatures(g Group, op string) []Signature {
	return append([]Signature(nil), r.ops[g][op]...)
}

// Len returns the number of registered kernels.
func (r *Registry[T]) Len() int { return len(r.entries) }
