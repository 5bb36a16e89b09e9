// Package ecs provides ECS adapters for orbit.
package ecs

import (
	"github.com/phanxgames/orbit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for orbit gesture events.
var GestureEventType = events.NewEventType[orbit.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Gesture
// events are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) orbit.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event orbit.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
