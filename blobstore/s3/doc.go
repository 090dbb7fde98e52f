// Package s3 provides an S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket", "vectors/",
//	    s3.WithRegion("us-east-1"),
//	    s3.WithRateLimiter(rate.NewLimiter(100, 10)),
//	)
//
//	err = persist.Write(ctx, store, "muons.hvec", muons)
//
// # Features
//
//   - Range reads
//   - Multipart uploads for large arrays, CRC32C-checked single puts otherwise
//   - Conditional create (PutIfAbsent)
//   - Optional client-side request rate limiting
package s3
