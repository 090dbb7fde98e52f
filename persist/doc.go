// Package persist stores columnar and jagged vector arrays in a BlobStore.
//
// A file is laid out as
//
//	magic "HVEC" | version uint16 | codec name | header length uint32 | header | column blocks | CRC32
//
// The header is encoded with the named codec (see package codec) and lists
// the backend, flavor, record count and one entry per column. Columns hold
// little-endian float64 values, event offsets of jagged arrays are stored as
// int64. Each column block may be compressed with LZ4 or Zstandard and
// carries its own CRC32; the trailing CRC32 covers everything before it.
//
// Coordinate columns are stored under their generic names (x, rho, eta, tau,
// ...) and the flavor is recorded separately, so a momentum array written as
// px/py/pz reads back as the same momentum array.
package persist
