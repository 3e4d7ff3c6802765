// Package ecs bridges heartfield pointer events into a [Donburi] world.
//
// [NewDonburiSink] publishes every event the simulation handles as a typed
// Donburi event. Subscribe to [PointerEventType] in your systems, or call
// [TrackPointer] to mirror the pointer into a component on a singleton
// entity.
//
// Usage:
//
//	world := donburi.NewWorld()
//	sim.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.TrackPointer(world)
//	// each frame:
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
