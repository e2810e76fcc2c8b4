// Package ecs provides ECS adapters for cloudview's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which forwards cloud events
// (pool rebuilt, pass scheduled/started/finished, animation started/stopped)
// into a [Donburi] world as typed events. Subscribe to [CloudEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	view := cloudview.New(cloudview.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
