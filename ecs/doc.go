// Package ecs provides ECS adapters for spotlight's prompt lifecycle.
//
// The primary adapter is [Attach], which bridges a prompt's state changes
// into a [Donburi] world as typed events. Subscribe to
// [StateChangeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	handle := ecs.Attach(world, prompt)
//	defer handle.Remove()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
