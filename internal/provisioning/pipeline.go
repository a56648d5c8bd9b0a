package provisioning

import (
	"fmt"
	"time"
)

// Phase is one step of the rollout. Phases read and extend the shared
// state through the context and must be safe to re-run.
type Phase interface {
	Name() string
	Run(ctx *Context) error
}

// DefaultPhases returns the apply pipeline in dependency order.
func DefaultPhases() []Phase {
	return []Phase{
		&ValidationPhase{},
		&ResourceGroupPhase{},
		&SecurityPhase{},
		&HubPhase{},
		&FirewallPhase{},
		&SpokesPhase{},
		&PeeringPhase{},
		&VaultPhase{},
	}
}

// RunPhases executes phases in order, emitting lifecycle events. The
// first failure aborts the run; completed phases keep their state so a
// re-run converges from where it stopped.
func RunPhases(ctx *Context, phases []Phase) error {
	for _, phase := range phases {
		started := time.Now()
		ctx.event(Event{Type: EventPhaseStarted, Phase: phase.Name(), Message: "phase started"})

		if err := phase.Run(ctx); err != nil {
			ctx.event(Event{Type: EventPhaseFailed, Phase: phase.Name(), Err: err, Message: "phase failed"})
			return fmt.Errorf("phase %s: %w", phase.Name(), err)
		}

		ctx.event(Event{
			Type:    EventPhaseCompleted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("phase completed in %s", time.Since(started).Round(time.Millisecond)),
		})
	}
	return nil
}

// Apply runs the full default pipeline.
func Apply(ctx *Context) error {
	return RunPhases(ctx, DefaultPhases())
}
