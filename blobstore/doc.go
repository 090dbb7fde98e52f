// Package blobstore provides the storage abstraction used to persist vector
// arrays.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, blobs opened with mmap
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
// Implement BlobStore to support other storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Blobs that hold their content in memory should also implement Mappable so
// readers can skip the copy.
package blobstore
