package linden

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightFade eases a blend factor between 0 (base face color) and 1
// (highlight color) when the hover state flips. With a zero duration the
// factor snaps, reproducing an instant color swap.
//
// There is no global animation manager — the owning button advances the
// fade from its Update method.
type highlightFade struct {
	duration float32
	fn       ease.TweenFunc
	tween    *gween.Tween
	value    float32
}

// retarget starts easing toward the hover state's end value. Retargeting
// mid-fade starts from the current blend value, so rapid hover flicker
// never jumps.
func (h *highlightFade) retarget(hovered bool) {
	target := float32(0)
	if hovered {
		target = 1
	}
	if h.duration <= 0 {
		h.value = target
		h.tween = nil
		return
	}
	h.tween = gween.New(h.value, target, h.duration, h.fn)
}

// update advances an active fade by dt seconds.
func (h *highlightFade) update(dt float32) {
	if h.tween == nil {
		return
	}
	v, finished := h.tween.Update(dt)
	h.value = v
	if finished {
		h.tween = nil
	}
}

// mix returns the blend of base and highlight at the current fade value.
func (h *highlightFade) mix(base, highlight color.RGBA) color.RGBA {
	switch h.value {
	case 0:
		return base
	case 1:
		return highlight
	}
	t := float64(h.value)
	return color.RGBA{
		R: lerp8(base.R, highlight.R, t),
		G: lerp8(base.G, highlight.G, t),
		B: lerp8(base.B, highlight.B, t),
		A: lerp8(base.A, highlight.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
