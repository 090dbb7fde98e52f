package hepvec

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hupe1980/hepvec/blobstore"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/object"
	"github.com/hupe1980/hepvec/persist"
)

var current atomic.Pointer[options]

func init() {
	o := applyOptions(nil)
	current.Store(&o)
}

// Configure installs the process-wide logger and metrics collector. Every
// dispatched operation is reported to both; calling Configure with no
// options restores the defaults and detaches the observer.
func Configure(opts ...Option) {
	o := applyOptions(opts)
	current.Store(&o)
	if len(opts) == 0 {
		dispatch.SetObserver(nil)
		return
	}
	dispatch.SetObserver(func(e dispatch.Event) {
		o.metricsCollector.RecordDispatch(e.Op, e.Backend, e.Duration, e.Err)
		o.logger.LogDispatch(context.Background(), e)
	})
}

func config() *options { return current.Load() }

// Obj builds an object vector from named coordinates, e.g.
//
//	v, err := hepvec.Obj(object.F("pt", 50), object.F("phi", 0.3), object.F("eta", 1.1), object.F("mass", 0.105))
func Obj(fields ...object.Field) (dispatch.Vector, error) {
	return object.Obj(fields...)
}

// Save writes a columnar or jagged array to store under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, v dispatch.Vector, opts ...persist.Option) error {
	o := config()
	start := time.Now()
	opts = append([]persist.Option{persist.WithLogger(o.logger.Logger)}, opts...)
	err := persist.Write(ctx, store, name, v, opts...)
	o.metricsCollector.RecordSave(time.Since(start), err)
	o.logger.LogSave(ctx, name, v.Class(), err)
	return err
}

// Load reads the array stored under name.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...persist.Option) (dispatch.Vector, error) {
	o := config()
	start := time.Now()
	opts = append([]persist.Option{persist.WithLogger(o.logger.Logger)}, opts...)
	v, err := persist.Read(ctx, store, name, opts...)
	o.metricsCollector.RecordLoad(time.Since(start), err)
	var class dispatch.Class
	if v != nil {
		class = v.Class()
	}
	o.logger.LogLoad(ctx, name, class, err)
	return v, err
}
