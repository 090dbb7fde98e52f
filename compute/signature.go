package compute

import (
	"strings"

	"github.com/hupe1980/hepvec/coords"
)

// MaxKinds is the largest number of coordinate kinds a signature holds.
const MaxKinds = 8

// Signature is the ordered tuple of operand coordinate kinds a kernel is
// registered for. It is comparable and used as a map key.
type Signature struct {
	n     uint8
	kinds [MaxKinds]coords.Kind
}

// NewSignature builds a signature from kinds in operand order.
func NewSignature(kinds ...coords.Kind) Signature {
	if len(kinds) > MaxKinds {
		panic("compute: signature holds at most 8 kinds")
	}
	var s Signature
	s.n = uint8(len(kinds))
	copy(s.kinds[:], kinds)
	return s
}

// SignatureOf concatenates the kinds of the given systems.
func SignatureOf(systems ...coords.System) Signature {
	var kinds []coords.Kind
	for _, sys := range systems {
		kinds = append(kinds, sys.Kinds()...)
	}
	return NewSignature(kinds...)
}

// Kinds returns the kinds in operand order.
func (s Signature) Kinds() []coords.Kind {
	return append([]coords.Kind(nil), s.kinds[:s.n]...)
}

// Len returns the number of kinds.
func (s Signature) Len() int { return int(s.n) }

func (s Signature) String() string {
	parts := make([]string, s.n)
	for i := range parts {
		parts[i] = s.kinds[i].String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
