// Package ecs provides ECS adapters for aspen's gesture event system.
//
// The primary adapter is [NewDonburiSink], which bridges aspen gesture
// events (click, double-click, long press, flick, hover) into a [Donburi]
// world as typed events. Subscribe to [GestureEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	flickable.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
