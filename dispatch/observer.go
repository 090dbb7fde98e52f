package dispatch

import (
	"sync/atomic"
	"time"
)

// Event describes one completed dispatch.
type Event struct {
	Op       string
	Backend  BackendID
	Lib      string
	Duration time.Duration
	Err      error
}

// Observer receives an Event after every Do. It must be safe for
// concurrent use.
type Observer func(Event)

var observer atomic.Pointer[Observer]

// SetObserver installs fn as the dispatch observer. A nil fn removes it.
func SetObserver(fn Observer) {
	if fn == nil {
		observer.Store(nil)
		return
	}
	observer.Store(&fn)
}

func notify(e Event) {
	if fn := observer.Load(); fn != nil {
		(*fn)(e)
	}
}
