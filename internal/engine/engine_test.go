package engine

import (
	"citadel_backend/internal/clock"
	"citadel_backend/internal/events"
	"citadel_backend/internal/random"
)

const testRootToken = "test-root-token"

// newTestEngine builds an engine on a fixed clock and a scripted roll
// sequence. With no rolls given every die comes up zero.
func newTestEngine(rolls ...int) (*Engine, *clock.Fixed) {
	if len(rolls) == 0 {
		rolls = []int{0}
	}
	c := &clock.Fixed{Millis: 1_700_000_000_000}
	e := New(c, &random.Sequence{Values: rolls}, events.NewLog(), testRootToken)
	return e, c
}

// registerFunded registers a profile and claims the onboarding grant so the
// wallet can pay mill fees.
func registerFunded(e *Engine, id string) {
	if _, err := e.RegisterProfile(id, id, ""); err != nil {
		panic(err)
	}
	if err := e.DistributeInitialRewards(id); err != nil {
		panic(err)
	}
}

// lastEvent returns the newest recorded event.
func lastEvent(e *Engine) events.Event {
	snap := e.Events().Snapshot()
	return snap[len(snap)-1]
}
