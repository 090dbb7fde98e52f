package persist

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"math"
)

const (
	// Magic identifies hepvec array files (ASCII "HVEC").
	Magic uint32 = 0x43455648
	// Version is the current file format version.
	Version uint16 = 1

	prefixSize  = 4 + 2 + 1
	trailerSize = 4
)

var (
	// ErrCorrupt is returned for files that fail validation.
	ErrCorrupt = errors.New("persist: corrupt file")
	// ErrVersion is returned for files written by an unknown format version.
	ErrVersion = errors.New("persist: unsupported version")
	// ErrUnsupported is returned for vectors that cannot be stored, such as
	// object and symbolic vectors.
	ErrUnsupported = errors.New("persist: unsupported vector")
	// ErrExists is returned by Write with WithNoOverwrite when name exists.
	ErrExists = errors.New("persist: file exists")
)

// Role says what a column holds.
type Role string

const (
	RoleCoordinate Role = "coordinate"
	RolePayload    Role = "payload"
	RoleOffsets    Role = "offsets"
)

type header struct {
	Backend  string         `json:"backend"`
	Momentum bool           `json:"momentum,omitempty"`
	Length   int            `json:"length"`
	Events   int            `json:"events,omitempty"`
	Columns  []columnHeader `json:"columns"`
}

type columnHeader struct {
	Name        string      `json:"name"`
	Role        Role        `json:"role"`
	Compression Compression `json:"compression"`
	// Raw is the decoded size, Size the stored size in bytes.
	Raw  int    `json:"raw"`
	Size int    `json:"size"`
	CRC  uint32 `json:"crc"`
}

var crcTable = crc32.MakeTable(crc32.IEEE)

func checksum(data []byte) uint32 { return crc32.Checksum(data, crcTable) }

func encodeFloats(xs []float64) []byte {
	out := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(x))
	}
	return out
}

func decodeFloats(b []byte) []float64 {
	out := make([]float64, len(b)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return out
}

func encodeInts(xs []int) []byte {
	out := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint64(out[8*i:], uint64(int64(x)))
	}
	return out
}

func decodeInts(b []byte) []int {
	out := make([]int, len(b)/8)
	for i := range out {
		out[i] = int(int64(binary.LittleEndian.Uint64(b[8*i:])))
	}
	return out
}
