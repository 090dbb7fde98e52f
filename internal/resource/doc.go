// Package resource limits the memory, concurrency and IO bandwidth that
// persistence operations may use.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   1 << 30,
//	    MaxWorkers:         4,
//	    IOLimitBytesPerSec: 100 << 20,
//	})
//
// Memory reservations fail fast with ErrMemoryLimitExceeded; worker slots and
// IO tokens block until available or the context is canceled.
//
// All methods are safe for concurrent use, and a nil *Controller imposes no
// limits.
package resource
