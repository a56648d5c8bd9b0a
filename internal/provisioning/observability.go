package provisioning

import (
	"time"

	"github.com/rs/zerolog"
)

// EventType classifies provisioning events.
type EventType string

const (
	// EventPhaseStarted indicates a provisioning phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventResourceEnsured indicates a resource was converged to its
	// declared state.
	EventResourceEnsured EventType = "resource.ensured"
	// EventResourceDeleted indicates a resource was deleted.
	EventResourceDeleted EventType = "resource.deleted"
	// EventResourceSkipped indicates a resource was skipped because its
	// feature is disabled.
	EventResourceSkipped EventType = "resource.skipped"
)

// Event is one structured provisioning event.
type Event struct {
	Type     EventType
	Phase    string
	Resource string
	Message  string
	Err      error
}

// Observer receives structured events during provisioning.
type Observer interface {
	Event(event Event)
}

// logObserver emits events through a zerolog logger.
type logObserver struct {
	logger zerolog.Logger
}

// NewLogObserver wraps a zerolog logger as an Observer.
func NewLogObserver(logger zerolog.Logger) Observer {
	return &logObserver{logger: logger}
}

func (o *logObserver) Event(event Event) {
	entry := o.logger.Info()
	if event.Type == EventPhaseFailed {
		entry = o.logger.Error().Err(event.Err)
	}
	entry = entry.
		Str("event", string(event.Type)).
		Time("at", time.Now())
	if event.Phase != "" {
		entry = entry.Str("phase", event.Phase)
	}
	if event.Resource != "" {
		entry = entry.Str("resource", event.Resource)
	}
	entry.Msg(event.Message)
}

// NopObserver discards all events, for tests.
type NopObserver struct{}

func (NopObserver) Event(Event) {}
