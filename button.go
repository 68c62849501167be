package linden

import (
	"fmt"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// debounceWindow is the minimum time between accepted clicks on a button.
const debounceWindow = 500 * time.Millisecond

// Registry constructs buttons, assigning each a process-unique id, and
// indexes them by tag for event handling. Ids start at 0, increase in
// construction order, and are never reused.
//
// Configure Clock and Fonts before creating buttons; each button captures
// them at construction.
type Registry struct {
	// Clock supplies timestamps for click debouncing. Defaults to the
	// process monotonic clock. Swap in a fake for tests.
	Clock Clock

	// Fonts resolves label font families. Defaults to a library serving
	// only the built-in face.
	Fonts *FontLibrary

	nextID  atomic.Int64
	byTag   map[string]*Button
	buttons []*Button
}

// NewRegistry returns a registry with the default clock and font library.
func NewRegistry() *Registry {
	return &Registry{
		Clock: newSystemClock(),
		Fonts: NewFontLibrary(),
		byTag: make(map[string]*Button),
	}
}

// New constructs a button from the given options. The zero Options value
// yields the default 60×20 button titled "button <id>".
func (r *Registry) New(opts Options) (*Button, error) {
	if r.Clock == nil {
		r.Clock = newSystemClock()
	}
	if r.Fonts == nil {
		r.Fonts = NewFontLibrary()
	}

	resolved, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	surfW, surfH, translucent := backingSize(
		resolved.Width, resolved.Height,
		resolved.ShadowOffsetX, resolved.ShadowOffsetY,
	)
	if surfW <= 0 || surfH <= 0 {
		return nil, fmt.Errorf("linden: backing surface %dx%d: %w", surfW, surfH, ErrInvalidGeometry)
	}

	face, err := r.Fonts.Face(resolved.FontFamily, resolved.FontSize)
	if err != nil {
		return nil, err
	}

	id := int(r.nextID.Add(1) - 1)
	title := resolved.Title
	if title == "" {
		title = fmt.Sprintf("button %d", id)
	}

	b := &Button{
		id:          id,
		title:       title,
		opts:        resolved,
		font:        face,
		clock:       r.Clock,
		surfW:       surfW,
		surfH:       surfH,
		translucent: translucent,
		rect:        Rect{Width: surfW, Height: surfH}.Place(resolved.Anchor, resolved.X, resolved.Y),
		fade: highlightFade{
			duration: resolved.FadeDuration,
			fn:       resolved.FadeEase,
		},
	}

	if r.byTag == nil {
		r.byTag = make(map[string]*Button)
	}
	r.byTag[b.title] = b
	r.buttons = append(r.buttons, b)
	return b, nil
}

// Find returns the button whose tag equals tag, or nil. When several
// buttons share a tag, the most recently constructed one wins.
func (r *Registry) Find(tag string) *Button {
	return r.byTag[tag]
}

// Buttons returns all buttons in construction order.
func (r *Registry) Buttons() []*Button {
	return r.buttons
}

// backingSize computes the backing surface dimensions for a face size and
// shadow offset. The surface grows by the offset and becomes translucent
// only when both offset components are nonzero; a zero in either axis
// means the shadow is disabled and the surface matches the face exactly.
func backingSize(width, height, offsetX, offsetY int) (w, h int, translucent bool) {
	if offsetX != 0 && offsetY != 0 {
		return width + offsetX, height + offsetY, true
	}
	return width, height, false
}

// Button is a clickable visual control: a colored face with a text label,
// an optional drop shadow, hover-dependent colors, and click rate
// limiting. Construct buttons with [Registry.New]; the zero Button is not
// usable.
//
// Configuration is fixed at construction. The only mutable state is the
// hover flag, fed in once per frame via [Button.SetHovered], and the
// debounce timer advanced by [Button.Clicked].
type Button struct {
	id    int
	title string
	opts  Options
	font  *Face
	clock Clock

	surfW, surfH int
	translucent  bool
	rect         Rect

	hovered bool
	armed   bool          // a click was accepted and the window is open
	armedAt time.Duration // timestamp of the accepted click

	fade highlightFade

	// Surfaces, allocated on first Draw so buttons can be constructed
	// and unit-tested without a graphics context.
	backing *ebiten.Image
	faceImg *ebiten.Image
	shadow  *ebiten.Image
}

// ID returns the button's process-unique id.
func (b *Button) ID() int {
	return b.id
}

// Title returns the label text, after any auto-naming.
func (b *Button) Title() string {
	return b.title
}

// Tag returns the button's tag. It always equals the title.
func (b *Button) Tag() string {
	return b.title
}

// Rect returns the button's bounding rectangle on the target surface.
// It covers the whole backing surface, shadow margin included.
func (b *Button) Rect() Rect {
	return b.rect
}

// Contains reports whether the point (x, y), in target-surface
// coordinates, lies inside the button's bounding rectangle.
func (b *Button) Contains(x, y int) bool {
	return b.rect.Contains(x, y)
}

// SurfaceSize returns the backing surface dimensions and whether the
// surface is translucent (true only when the shadow is enabled).
func (b *Button) SurfaceSize() (w, h int, translucent bool) {
	return b.surfW, b.surfH, b.translucent
}

// Hovered returns the hover flag last set via SetHovered.
func (b *Button) Hovered() bool {
	return b.hovered
}

// SetHovered records whether the pointer is currently over the button.
// Call once per frame from your input polling; the button never reads the
// pointer itself.
func (b *Button) SetHovered(hovered bool) {
	if hovered == b.hovered {
		return
	}
	b.hovered = hovered
	b.fade.retarget(hovered)
}

// Update advances the highlight fade by dt seconds. Only needed when
// [Options.FadeDuration] is set; otherwise it is a no-op.
func (b *Button) Update(dt float32) {
	b.fade.update(dt)
}

// Clicked advances the debounce timer and reports whether this press
// should be suppressed. A false return means the click is accepted and
// opens a 500ms window during which further presses report true.
//
// The call that first notices an expired window clears the timer but
// still reports true; the next call starts a fresh cycle. Holding the
// mouse down therefore produces at most one accepted click per window.
func (b *Button) Clicked() bool {
	if !b.armed {
		b.armed = true
		b.armedAt = b.clock.Now()
		return false
	}
	if b.clock.Now()-b.armedAt > debounceWindow {
		b.armed = false
	}
	return true
}

// faceColor returns the current face fill. Without HighlightFace the face
// never reacts to hover; with it, the fill tracks the highlight fade
// (which snaps when no fade duration is configured).
func (b *Button) faceColor() color.RGBA {
	if !b.opts.HighlightFace {
		return b.opts.FaceColor
	}
	return b.fade.mix(b.opts.FaceColor, b.opts.HighlightColor)
}

// textColor returns the current label color. Hover always swaps the text
// color, independently of HighlightFace.
func (b *Button) textColor() color.RGBA {
	if b.hovered {
		return b.opts.TextColorHovered
	}
	return b.opts.TextColor
}

// Draw composes shadow, face, and label onto the button's backing surface
// and blits it onto dst at the button's rectangle. Call every frame; the
// button is fully redrawn each time.
func (b *Button) Draw(dst *ebiten.Image) {
	b.ensureSurfaces()
	b.backing.Clear()

	// Shadow first, so the face covers it except where the offset lets
	// it peek out.
	if b.shadow != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(b.opts.ShadowOffsetX), float64(b.opts.ShadowOffsetY))
		b.backing.DrawImage(b.shadow, &op)
	}

	// Label goes onto the face before the face goes onto the backing
	// surface, so the label can never extend past the face's layer.
	b.faceImg.Fill(b.faceColor())
	b.drawLabel()
	b.backing.DrawImage(b.faceImg, nil)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(b.rect.X), float64(b.rect.Y))
	dst.DrawImage(b.backing, &op)
}

// drawLabel renders the title onto the face image at its aligned position.
func (b *Button) drawLabel() {
	w, h := b.font.Measure(b.title)
	x, y := alignLabel(b.opts.Width, b.opts.Height, int(w+0.5), int(h+0.5), b.opts.Align)
	b.font.Draw(b.faceImg, b.title, b.textColor(), x, y)
}

// alignLabel positions a labelW×labelH label within a faceW×faceH face.
// Left and right alignment inset the label horizontally by labelPadding
// and center it vertically; center alignment centers both axes.
func alignLabel(faceW, faceH, labelW, labelH int, align Align) (x, y int) {
	y = (faceH - labelH) / 2
	switch align {
	case AlignLeft:
		x = labelPadding
	case AlignRight:
		x = faceW - labelW - labelPadding
	default:
		x = (faceW - labelW) / 2
	}
	return x, y
}

// ensureSurfaces allocates the pixel buffers on first use. The shadow
// surface is filled once; its color never changes.
func (b *Button) ensureSurfaces() {
	if b.backing != nil {
		return
	}
	b.backing = ebiten.NewImage(b.surfW, b.surfH)
	b.faceImg = ebiten.NewImage(b.opts.Width, b.opts.Height)
	if b.translucent {
		b.shadow = ebiten.NewImage(b.opts.Width, b.opts.Height)
		b.shadow.Fill(b.opts.ShadowColor)
	}
}
