package linden

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/tanema/gween/ease"
)

// Construction errors. Returned wrapped by [Registry.New]; test with
// [errors.Is].
var (
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrUnknownAnchor   = errors.New("unknown anchor")
	ErrUnknownAlign    = errors.New("unknown alignment")
)

// Align controls horizontal label alignment within the button face.
type Align uint8

const (
	AlignCenter Align = iota // center the label on the face (default)
	AlignLeft                // label left edge 4px in from the face's left edge
	AlignRight               // label right edge 4px in from the face's right edge
)

// labelPadding is the horizontal inset for left/right aligned labels.
const labelPadding = 4

// valid reports whether a holds one of the defined alignment constants.
func (a Align) valid() bool {
	return a <= AlignRight
}

// String returns the alignment's name.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Default appearance values applied by [Options] when the corresponding
// field is left zero.
var (
	defaultTextColor        = color.RGBA{215, 255, 255, 255}
	defaultTextColorHovered = color.RGBA{225, 255, 255, 255}
	defaultFaceColor        = color.RGBA{70, 130, 180, 255}
	defaultShadowColor      = color.RGBA{99, 184, 255, 255}
)

const (
	defaultWidth           = 60
	defaultHeight          = 20
	defaultHighlightAmount = 1.5
	defaultShadowOffsetX   = 3
	defaultShadowOffsetY   = 2
)

// Options configures a [Button]. The zero value is usable: every field has
// a documented default. Options are copied and resolved at construction;
// mutating an Options after [Registry.New] has no effect on the button.
type Options struct {
	// Title is the label text. Empty means "button <id>", filled in with
	// the id assigned at construction. The resolved title doubles as the
	// button's tag for registry lookup.
	Title string

	// Width and Height are the face size in pixels. Both zero means the
	// default 60×20. A negative or partially-zero size is rejected with
	// ErrInvalidGeometry.
	Width, Height int

	// X, Y and Anchor place the button's bounding rectangle: the anchor
	// point of the rectangle is moved to (X, Y). Default: top-left at
	// the origin. The rectangle covers the backing surface, so an enabled
	// shadow widens it by the shadow offset.
	X, Y   int
	Anchor Anchor

	// Align positions the label against the face. Default AlignCenter.
	Align Align

	// FontFamily selects a family registered on the [FontLibrary]. Empty
	// selects the built-in default face.
	FontFamily string

	// FontSize is the label size in points. Zero applies the heuristic
	// (width+height)/3 - len(title), using the title as supplied (the
	// auto-naming sentinel counts as 6 characters). The heuristic can go
	// non-positive for long titles on small buttons; that is the caller's
	// lookout and renders no visible label rather than failing.
	FontSize int

	// TextColor and TextColorHovered are the label colors for the idle
	// and hovered states. The hovered color applies regardless of
	// HighlightFace.
	TextColor        color.RGBA
	TextColorHovered color.RGBA

	// FaceColor is the face fill. HighlightColor is the hovered face
	// fill; when unset it is derived from FaceColor by scaling each
	// channel by HighlightAmount (default 1.5), clamped to 255.
	FaceColor       color.RGBA
	HighlightColor  color.RGBA
	HighlightAmount float64

	// HighlightFace swaps the face fill to HighlightColor while hovered.
	// When false the face keeps FaceColor; only the label color reacts.
	HighlightFace bool

	// ShadowColor fills the drop shadow. ShadowOffsetX/Y displace it from
	// the face's top-left; both default to (3, 2) when zero unless
	// NoShadow is set. The shadow only renders when both offset
	// components are nonzero: an offset with a zero in either axis
	// disables it entirely.
	ShadowColor   color.RGBA
	ShadowOffsetX int
	ShadowOffsetY int

	// NoShadow forces the shadow off, overriding the offset defaults.
	NoShadow bool

	// FadeDuration, when positive, eases the face fill between FaceColor
	// and HighlightColor over this many seconds on hover changes instead
	// of snapping. Requires HighlightFace and [Button.Update] being
	// called each frame. FadeEase selects the easing curve; nil means
	// ease.Linear.
	FadeDuration float32
	FadeEase     ease.TweenFunc
}

// resolve validates o and fills in every defaulted field, returning the
// fully-specified options. The title is left as supplied; auto-naming
// happens at construction once the id is known.
func (o Options) resolve() (Options, error) {
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = defaultWidth, defaultHeight
	}
	if o.Width <= 0 || o.Height <= 0 {
		return o, fmt.Errorf("linden: %dx%d: %w", o.Width, o.Height, ErrInvalidGeometry)
	}
	if !o.Anchor.valid() {
		return o, fmt.Errorf("linden: anchor %d: %w", o.Anchor, ErrUnknownAnchor)
	}
	if !o.Align.valid() {
		return o, fmt.Errorf("linden: alignment %d: %w", o.Align, ErrUnknownAlign)
	}

	if o.FontSize == 0 {
		o.FontSize = defaultFontSize(o.Width, o.Height, o.Title)
	}
	if o.TextColor == (color.RGBA{}) {
		o.TextColor = defaultTextColor
	}
	if o.TextColorHovered == (color.RGBA{}) {
		o.TextColorHovered = defaultTextColorHovered
	}
	if o.FaceColor == (color.RGBA{}) {
		o.FaceColor = defaultFaceColor
	}
	if o.HighlightAmount == 0 {
		o.HighlightAmount = defaultHighlightAmount
	}
	if o.HighlightColor == (color.RGBA{}) {
		o.HighlightColor = scaleRGB(o.FaceColor, o.HighlightAmount)
	}
	if o.ShadowColor == (color.RGBA{}) {
		o.ShadowColor = defaultShadowColor
	}
	if o.NoShadow {
		o.ShadowOffsetX, o.ShadowOffsetY = 0, 0
	} else if o.ShadowOffsetX == 0 && o.ShadowOffsetY == 0 {
		o.ShadowOffsetX = defaultShadowOffsetX
		o.ShadowOffsetY = defaultShadowOffsetY
	}
	if o.FadeEase == nil {
		o.FadeEase = ease.Linear
	}
	return o, nil
}

// shadowEnabled reports whether the resolved offset renders a shadow.
// Both components must be nonzero; (0, n) and (n, 0) count as disabled.
func (o Options) shadowEnabled() bool {
	return o.ShadowOffsetX != 0 && o.ShadowOffsetY != 0
}

// defaultFontSize is the label size heuristic: a third of the combined
// face dimensions, shrunk by the title length. An unsupplied title counts
// as the 6-character auto-naming sentinel.
func defaultFontSize(width, height int, title string) int {
	n := len(title)
	if title == "" {
		n = 6
	}
	return (width+height)/3 - n
}

// scaleRGB scales each color channel by amount, clamping to 255.
// Alpha is left fully opaque.
func scaleRGB(c color.RGBA, amount float64) color.RGBA {
	return color.RGBA{
		R: clamp255(float64(c.R) * amount),
		G: clamp255(float64(c.G) * amount),
		B: clamp255(float64(c.B) * amount),
		A: 255,
	}
}

func clamp255(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
