// Package mmap maps persisted vector array files read-only into memory so
// column payloads can be decoded without an extra copy.
//
// Unix systems use mmap(2) with madvise(2) hints; Windows uses
// CreateFileMapping/MapViewOfFile and ignores the hints.
//
// Close is idempotent. Slices returned by Bytes must not be used after
// Close returns.
package mmap
