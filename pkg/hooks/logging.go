package hooks

import (
	"fmt"
	"time"

	"github.com/lerenn/bumped/pkg/logger"
	"github.com/lerenn/bumped/pkg/reporter"
)

// ReporterObserver prints hook progress for the user.
type ReporterObserver struct {
	reporter reporter.Reporter
}

// NewReporterObserver creates a ReporterObserver instance.
func NewReporterObserver(r reporter.Reporter) *ReporterObserver {
	return &ReporterObserver{reporter: r}
}

// OnStart prints the hook being started.
func (o *ReporterObserver) OnStart(event Event) {
	o.reporter.Success(fmt.Sprintf("[%s] Starting %s", Tag(event.Phase), event.Description))
}

// OnStop prints the outcome and duration of the hook.
func (o *ReporterObserver) OnStop(event Event, elapsed time.Duration, err error) {
	if err != nil {
		o.reporter.Warn(fmt.Sprintf("[%s] Errored %s after %s", Tag(event.Phase), event.Description, formatElapsed(elapsed)))
		return
	}
	o.reporter.Success(fmt.Sprintf("[%s] Finished %s after %s", Tag(event.Phase), event.Description, formatElapsed(elapsed)))
}

// LoggingObserver traces hook invocations.
type LoggingObserver struct {
	logger logger.Logger
}

// NewLoggingObserver creates a LoggingObserver instance.
func NewLoggingObserver(l logger.Logger) *LoggingObserver {
	return &LoggingObserver{logger: l}
}

// OnStart logs the start of a hook.
func (o *LoggingObserver) OnStart(event Event) {
	o.logger.Logf("Starting hook: %s (phase: %s, plugin: %s)", event.Description, event.Phase, event.Plugin)
}

// OnStop logs the completion of a hook.
func (o *LoggingObserver) OnStop(event Event, elapsed time.Duration, err error) {
	if err != nil {
		o.logger.Logf("Hook failed: %s after %s, error: %v", event.Description, elapsed, err)
		return
	}
	o.logger.Logf("Hook completed: %s after %s", event.Description, elapsed)
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}
