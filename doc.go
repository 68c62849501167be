// Package linden is a small retained button widget kit for [Ebitengine].
//
// Linden gives you a configurable on-screen button with a drop shadow, a
// text label, hover highlighting, and built-in click rate limiting. It is
// deliberately tiny: there is no layout engine, no theming system, and no
// widget container — you place buttons yourself and drive them from your
// game loop.
//
// # Quick start
//
// Buttons are created through a [Registry], which hands out process-unique
// ids and lets you look buttons up by tag later:
//
//	reg := linden.NewRegistry()
//	btn, err := reg.New(linden.Options{
//		Title:  "Quit",
//		Width:  85,
//		Height: 35,
//		X:      30,
//		Y:      30,
//	})
//
// Each frame, feed the button the current hover state and draw it:
//
//	mx, my := ebiten.CursorPosition()
//	btn.SetHovered(btn.Contains(mx, my))
//	btn.Draw(screen)
//
// When the pointer is held down over a button, [Button.Clicked] limits how
// often the press registers as a logical click (500ms between clicks), so a
// prolonged mouse-down does not flood your event handling:
//
//	if btn.Hovered() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
//		if !btn.Clicked() {
//			// accept the click
//		}
//	}
//
// # Appearance
//
// A button composes three layers onto its own backing surface: the shadow
// (offset behind the face), the face (base color, or the highlight color
// while hovered when [Options.HighlightFace] is set), and the label
// (rendered with the hover-dependent text color and aligned per
// [Options.Align]). Setting [Options.FadeDuration] makes the face color
// ease between base and highlight via [gween] instead of snapping.
//
// See examples/buttons for a complete program with three buttons wired to
// an application-level notification queue.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package linden
