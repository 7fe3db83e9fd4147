package signals

import (
	"github.com/krew-solutions/deferred-go/deferredgo/disposable"
)

type Observer[E any] func(E)

// Signal is a detachable multi-observer fan-out. Where a Deferred's handler
// lists are append-only and owned by one instance, a Signal lets independent
// subscribers come and go across triggers.
type Signal[E any] interface {
	Attach(observer Observer[E], observerID ...any) disposable.Disposable
	Detach(observer Observer[E], observerID ...any)
	Notify(event E)
}
