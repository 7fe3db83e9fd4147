package deferred

import (
	"github.com/krew-solutions/deferred-go/deferredgo/outcome"
)

// Operation is the caller-supplied unit of asynchronous work wrapped by a
// Deferred. It receives a completion callback and calls it with the final
// outcome — synchronously, later, or from another execution context; the
// Deferred imposes no scheduling of its own.
type Operation[V, F any] func(complete func(outcome.Outcome[V, F]))

type Deferred[V, F any] interface {
	OnSuccessDo(handler func(V)) Deferred[V, F]
	OnFailureDo(handler func(F)) Deferred[V, F]
	OnOutcomeDo(handler func(outcome.Outcome[V, F])) Deferred[V, F]
	Invoke() Deferred[V, F]
	Run(onOutcome func(outcome.Outcome[V, F]))
	RunWith(onSuccess func(V), onFailure ...func(F))
}
