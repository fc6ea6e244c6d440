// Package shapes is a small toolkit for drawing and animating simple shapes
// with [Ebitengine], aimed at teaching programming.
//
// A program creates a [Canvas], puts circles, rectangles, images and text on
// it, and reacts to touches. Every property change can be animated just by
// making it inside an animation block.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	canvas := shapes.NewCanvas(shapes.CanvasConfig{Width: 640, Height: 480})
//	ball := shapes.NewCircle(canvas, 8)
//	ball.SetColor(shapes.ColorOrange)
//	ball.Draggable = true
//	shapes.Run(canvas, shapes.RunConfig{Title: "Ball"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Canvas.Update] and [Canvas.Draw] directly:
//
//	type Game struct{ canvas *shapes.Canvas }
//
//	func (g *Game) Update() error              { return g.canvas.Update() }
//	func (g *Game) Draw(s *ebiten.Image)       { g.canvas.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return g.canvas.ScreenSize() }
//
// # Model space
//
// Positions and sizes are given in model units. The origin is the center of
// the canvas and Y grows upward. By default the shorter side of the canvas
// spans 100 units, so a circle of radius 50 touches both edges of a square
// canvas. [Canvas.ConvertPointToScreen] and friends map between model space
// and screen points.
//
// # Drawables
//
// [Circle], [Rectangle], [Image] and [Text] all embed [Drawable], which
// carries the shared center, scale, rotation, drop shadow, z-order and touch
// handling. A new drawable is added to its canvas on top of everything
// already there; [Drawable.Remove] and [Drawable.Add] take it off and put it
// back.
//
//	box := shapes.NewRectangle(canvas, 20, 10, 2)
//	box.SetCenter(shapes.Point{X: -20, Y: 15})
//	box.SetRotation(math.Pi / 8)
//	box.SetDropShadow(shapes.DefaultShadow())
//
// [Drawable.Overlaps] tests two drawables for overlap using their unscaled,
// unrotated footprints. Text never overlaps anything.
//
// # Touches
//
// Touch handlers receive a [TouchContext] with the location in model space.
// A touch series belongs to the topmost drawable that wants touches and was
// hit when the series began; later phases go to that drawable even if the
// pointer leaves it. Draggable drawables follow the pointer and pop up
// slightly while held.
//
//	ball.OnTouchUp(func(tc shapes.TouchContext) {
//		ball.SetColor(shapes.RandomColor())
//	})
//
// # Animation
//
// Property changes made inside an animation's Changes func move smoothly
// from their current on-screen value to the new one:
//
//	canvas.Animate(1, 0, func() {
//		ball.SetCenter(shapes.Point{X: 30, Y: 0})
//		ball.SetColor(shapes.ColorGreen)
//	})
//
// An [Animator] plays a list of [Animation] steps in order, optionally
// looping, and can be paused, resumed, stopped and restarted. A change to a
// property that is already animating supersedes the earlier animation of
// that property.
//
// # Testing
//
// [Canvas.Advance] steps animations by an explicit time and
// [Canvas.HandleTouch] feeds touches directly, so behavior can be tested
// without opening a window. [LoadTestScript] drives a running canvas from a
// JSON script of taps, drags and screenshots.
//
// [Ebitengine]: https://ebitengine.org
package shapes
