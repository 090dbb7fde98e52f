// Package codec encodes the header that describes a persisted vector array:
// its backend, flavor, record count and the layout of every column block.
//
// A file records the name of the codec that wrote its header, and readers
// resolve it with ByName. Changing Default therefore only affects files
// written afterwards.
package codec

// Codec turns an array header into bytes and back. Implementations are
// stateless and safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Name identifies the codec inside a file. At most 255 bytes.
	Name() string
}

// Default writes new headers.
var Default Codec = GoJSON{}

var builtin = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName resolves the codec recorded in a file header.
func ByName(name string) (Codec, bool) {
	c, ok := builtin[name]
	return c, ok
}
