package linden

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultSource parses the embedded Go Regular face once, on first use.
var defaultSource = sync.OnceValues(func() (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("linden: failed to parse built-in font: %w", err)
	}
	return source, nil
})

// FontLibrary maps family names to font sources. Buttons resolve their
// label face through a library; families that were never registered fall
// back to the built-in default face (Go Regular), mirroring how desktop
// frameworks tolerate unknown system font names.
//
// The zero value is ready to use and serves only the default face.
type FontLibrary struct {
	sources map[string]*text.GoTextFaceSource
}

// NewFontLibrary returns an empty library.
func NewFontLibrary() *FontLibrary {
	return &FontLibrary{}
}

// Register parses raw TTF/OTF data and stores it under the given family
// name, replacing any previous registration for that name.
func (l *FontLibrary) Register(family string, ttfData []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return fmt.Errorf("linden: failed to parse font %q: %w", family, err)
	}
	if l.sources == nil {
		l.sources = make(map[string]*text.GoTextFaceSource)
	}
	l.sources[family] = source
	return nil
}

// Face resolves a family name and size to a renderable face. An empty or
// unregistered family name selects the built-in default.
func (l *FontLibrary) Face(family string, size int) (*Face, error) {
	source := l.sources[family]
	if source == nil {
		var err error
		source, err = defaultSource()
		if err != nil {
			return nil, err
		}
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   float64(size),
	}

	var lh float64
	if size > 0 {
		m := face.Metrics()
		lh = m.HAscent + m.HDescent + m.HLineGap
	}

	return &Face{face: face, size: size, lh: lh}, nil
}

// Face is a sized font face used for label measurement and rendering.
// A face with a non-positive size measures as empty and draws nothing.
type Face struct {
	face *text.GoTextFace
	size int
	lh   float64
}

// Size returns the point size the face was created with.
func (f *Face) Size() int {
	return f.size
}

// Measure returns the rendered width and height of s in pixels.
func (f *Face) Measure(s string) (width, height float64) {
	if f.size <= 0 || s == "" {
		return 0, 0
	}
	return text.Measure(s, f.face, f.lh)
}

// Draw renders s anti-aliased onto dst with its top-left at (x, y).
func (f *Face) Draw(dst *ebiten.Image, s string, clr color.RGBA, x, y int) {
	if f.size <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.LineSpacing = f.lh
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, f.face, op)
}
