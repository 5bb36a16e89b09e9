// Package ecs provides ECS adapters for orbit's gesture events.
//
// The primary adapter is [NewDonburiStore], which publishes orbit gesture
// events (drag, pinch, zoom, reset) into a [Donburi] world as typed events.
// Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ctrl.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
