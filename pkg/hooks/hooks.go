// Package hooks runs the plugins registered around a release.
package hooks

import (
	"time"

	"github.com/lerenn/bumped/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=hooks.go -destination=mocks/hooks.gen.go -package=mocks

// Event describes one hook invocation.
type Event struct {
	Phase       string
	Description string
	Plugin      string
	Start       time.Time
}

// Observer is notified around every hook invocation.
type Observer interface {
	OnStart(event Event)
	OnStop(event Event, elapsed time.Duration, err error)
}

// Tag returns the short phase label used in output.
func Tag(phase string) string {
	switch phase {
	case config.PhasePrerelease:
		return "pre"
	case config.PhasePostrelease:
		return "post"
	default:
		return phase
	}
}

type observers []Observer

// Observers fans events out to every observer, in order.
func Observers(obs ...Observer) Observer {
	return observers(obs)
}

func (o observers) OnStart(event Event) {
	for _, obs := range o {
		obs.OnStart(event)
	}
}

func (o observers) OnStop(event Event, elapsed time.Duration, err error) {
	for _, obs := range o {
		obs.OnStop(event, elapsed, err)
	}
}
