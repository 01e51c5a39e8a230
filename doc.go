// Package droste is a small generative-art demo for [Ebitengine].
//
// Three things happen on screen every frame:
//
//   - a [PathWalker] glides along a chain of cubic Bezier segments and drops a
//     short-lived, hue-shifting marker at its current position,
//   - a [Painter] drops fading circles wherever the left mouse button is held,
//   - a [DrosteView] feeds the previous frame back into nested, shrinking
//     copies of itself, producing the recursive "picture in a picture" look.
//
// # PathWalker
//
// A PathWalker owns a [RepeatingTimer] and one [CubicBezier]. Each time the
// timer completes a period the walker samples a new random target inside the
// sampling bounds, jitters it, and starts a new segment at the end of the old
// one:
//
//	walker := droste.NewPathWalker(droste.DefaultPathConfig())
//	rng := rand.New(rand.NewPCG(1, 2))
//	bounds, err := droste.Rect{Width: 800, Height: 600}.Inset(100, 100)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for {
//		walker.Tick(1.0/60, bounds, rng)
//		pos, hue := walker.Evaluate()
//		sink.Emit(pos, hue)
//	}
//
// Randomness is injected through [Rand], so a seeded generator makes every
// run reproducible.
//
// # Markers
//
// The walker and the painter never draw anything themselves. They emit
// (position, hue) pairs into a [MarkerSink]. The ecs subpackage provides a
// Donburi-backed sink that keeps each marker alive for a fixed lifetime and
// fades it out with a [gween] tween.
//
// # Running
//
// [Run] wires everything into an [ebiten.Game]:
//
//	cfg := droste.DefaultConfig()
//	if err := droste.Run(cfg, ecs.NewMarkerWorld(donburi.NewWorld(), 0)); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package droste
