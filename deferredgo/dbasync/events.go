package dbasync

import (
	"time"

	"github.com/krew-solutions/deferred-go/deferredgo/signals"
)

type QueryStartedEvent struct {
	Query  string
	Params []any
	Sender any
}

type QueryEndedEvent struct {
	Query        string
	Params       []any
	Sender       any
	ResponseTime time.Duration
}

// QueryEvents carries the signals a connection notifies around each query
// trigger. A nil *QueryEvents disables notification.
type QueryEvents struct {
	onQueryStarted signals.Signal[QueryStartedEvent]
	onQueryEnded   signals.Signal[QueryEndedEvent]
}

func NewQueryEvents() *QueryEvents {
	return &QueryEvents{
		onQueryStarted: signals.NewSignal[QueryStartedEvent](),
		onQueryEnded:   signals.NewSignal[QueryEndedEvent](),
	}
}

func (e *QueryEvents) OnQueryStarted() signals.Signal[QueryStartedEvent] {
	return e.onQueryStarted
}

func (e *QueryEvents) OnQueryEnded() signals.Signal[QueryEndedEvent] {
	return e.onQueryEnded
}

func (e *QueryEvents) notifyStarted(query string, params []any, sender any) {
	if e == nil {
		return
	}
	e.onQueryStarted.Notify(QueryStartedEvent{Query: query, Params: params, Sender: sender})
}

func (e *QueryEvents) notifyEnded(query string, params []any, sender any, responseTime time.Duration) {
	if e == nil {
		return
	}
	e.onQueryEnded.Notify(QueryEndedEvent{Query: query, Params: params, Sender: sender, ResponseTime: responseTime})
}
