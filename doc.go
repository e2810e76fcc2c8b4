// Package cloudview is a decorative sky widget for [Ebitengine]: a container
// that spawns a pool of cloud sprites and drifts them across its box from
// right to left on independent, randomized timers.
//
// # Quick start
//
//	scene := cloudview.NewScene()
//	view := cloudview.New()
//	scene.Root().AddChild(view.Node())
//	view.StartAnimation()
//	cloudview.Run(scene, cloudview.RunConfig{
//		Title: "Clouds", Width: 960, Height: 540,
//	})
//
// # Readiness
//
// A view does not know its size until the scene has drawn it. Calls that
// need the size (changing the count, resizing, changing the image, starting)
// are accepted at any time; before the first draw they are recorded, one per
// kind with the latest winning, and replayed once the first draw completes.
// Removing the view's node from its parent stops the clouds and re-arms this
// wait.
//
// # Timing
//
// Each pass of a cloud lasts base + variance·U milliseconds and starts after
// a delay of (base + variance)·U′ milliseconds, with U and U′ fresh uniform
// samples in [0, 1). When a pass ends the same cloud is sent again, at a new
// height, for as long as the view keeps animating that pool. Use [WithRand]
// to make timings reproducible.
//
// Motion and fade use [gween] tweens with linear easing. The default cloud
// artwork is drawn with [gg]; views can also be configured from YAML with
// [LoadAttributes] and [NewFromAttributes].
//
// # Debugging
//
// [Scene.SetDebugMode] logs per-frame draw stats and panics on use of
// disposed nodes. [NewFPSWidget] returns an overlay sprite, and
// [Scene.Screenshot] saves the next frame as a PNG. Log output goes to
// stderr unless redirected with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [gg]: https://github.com/fogleman/gg
package cloudview
