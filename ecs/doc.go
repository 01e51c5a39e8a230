// Package ecs provides a [Donburi]-backed marker layer for droste.
//
// [NewMarkerWorld] stores every marker as an entity with a [Marker]
// component, fades it out with a gween tween, and removes it once its
// lifetime elapses. Each removal is published as a [MarkerExpired] event.
//
// Usage:
//
//	world := donburi.NewWorld()
//	markers := ecs.NewMarkerWorld(world, 0)
//	ecs.MarkerExpiredType.Subscribe(world, func(w donburi.World, e ecs.MarkerExpired) {
//		// ...
//	})
//	sink := droste.StyledSink(markers, droste.DefaultWalkerStyle())
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
