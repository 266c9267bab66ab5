// Package ecs provides ECS adapters for aspen.
package ecs

import (
	"github.com/phanxgames/aspen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for aspen gesture events.
// Subscribe to this in your ECS systems to receive click, flick, and hover
// events.
var GestureEventType = events.NewEventType[aspen.GestureEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) aspen.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitGesture(ev aspen.GestureEvent) {
	GestureEventType.Publish(s.world, ev)
}
