package linden

// Rect is an axis-aligned rectangle in pixel coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() int {
	return r.X + r.Width/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() int {
	return r.Y + r.Height/2
}

// Anchor names a reference point of a rectangle used for positioning.
type Anchor uint8

const (
	AnchorTopLeft     Anchor = iota // position is the rectangle's top-left corner (default)
	AnchorTopRight                  // position is the top-right corner
	AnchorBottomLeft                // position is the bottom-left corner
	AnchorBottomRight               // position is the bottom-right corner
	AnchorCenter                    // position is the rectangle's center
)

// valid reports whether a holds one of the defined anchor constants.
func (a Anchor) valid() bool {
	return a <= AnchorCenter
}

// String returns the anchor's name.
func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "topleft"
	case AnchorTopRight:
		return "topright"
	case AnchorBottomLeft:
		return "bottomleft"
	case AnchorBottomRight:
		return "bottomright"
	case AnchorCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Place returns a copy of r moved so that the given anchor point sits at
// (x, y). The rectangle's size is unchanged.
func (r Rect) Place(a Anchor, x, y int) Rect {
	switch a {
	case AnchorTopLeft:
		r.X, r.Y = x, y
	case AnchorTopRight:
		r.X, r.Y = x-r.Width, y
	case AnchorBottomLeft:
		r.X, r.Y = x, y-r.Height
	case AnchorBottomRight:
		r.X, r.Y = x-r.Width, y-r.Height
	case AnchorCenter:
		r.X, r.Y = x-r.Width/2, y-r.Height/2
	}
	return r
}
