// Package ecs provides ECS adapters for spotlight.
package ecs

import (
	"github.com/phanxgames/spotlight"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChangeEventType is the Donburi event type for prompt state changes.
// Subscribe to this in your ECS systems to react to prompts being pressed,
// dismissed or finished.
var StateChangeEventType = events.NewEventType[spotlight.StateChange]()

// Listener returns a state-change listener that publishes every change into
// world. Events are queued until ProcessEvents runs.
func Listener(world donburi.World) func(spotlight.StateChange) {
	return func(c spotlight.StateChange) {
		StateChangeEventType.Publish(world, c)
	}
}

// Attach subscribes world to p's state changes. Remove the returned handle
// to stop publishing.
func Attach(world donburi.World, p *spotlight.Prompt) spotlight.CallbackHandle {
	return p.OnStateChange(Listener(world))
}
