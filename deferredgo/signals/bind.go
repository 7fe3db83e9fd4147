package signals

import (
	"github.com/krew-solutions/deferred-go/deferredgo/deferred"
	"github.com/krew-solutions/deferred-go/deferredgo/outcome"
)

// BindOutcome registers the signal's Notify as an outcome handler on d, so
// every trigger of d fans out to whatever observers are attached at dispatch
// time. The registration itself is permanent (a Deferred's handler lists are
// append-only); subscribe and unsubscribe on the signal side.
func BindOutcome[V, F any](s Signal[outcome.Outcome[V, F]], d deferred.Deferred[V, F]) deferred.Deferred[V, F] {
	return d.OnOutcomeDo(s.Notify)
}

// BindSuccess registers the signal's Notify as a success handler on d.
func BindSuccess[V, F any](s Signal[V], d deferred.Deferred[V, F]) deferred.Deferred[V, F] {
	return d.OnSuccessDo(s.Notify)
}

// BindFailure registers the signal's Notify as a failure handler on d.
func BindFailure[V, F any](s Signal[F], d deferred.Deferred[V, F]) deferred.Deferred[V, F] {
	return d.OnFailureDo(s.Notify)
}
