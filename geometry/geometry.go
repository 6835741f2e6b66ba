// Package geometry computes tooltip overlay placement from plain values.
// It has no dependency on any UI toolkit so placement stays testable in
// isolation.
package geometry

// Location is a 2D point in viewport coordinates.
type Location struct {
	X float32
	Y float32
}

// Add returns the component-wise sum of two locations.
func (l Location) Add(o Location) Location {
	return Location{X: l.X + o.X, Y: l.Y + o.Y}
}

// Size is a non-negative width/height pair.
type Size struct {
	Width  float32
	Height float32
}

// IsZero reports whether both dimensions are zero. A zero size is the
// sentinel for content that has not been laid out yet.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// BoundingBox is an axis-aligned rectangle anchored at its top-left origin.
type BoundingBox struct {
	Origin Location
	Size   Size
}

func (b BoundingBox) Top() float32 {
	return b.Origin.Y
}

func (b BoundingBox) Left() float32 {
	return b.Origin.X
}

func (b BoundingBox) Bottom() float32 {
	return b.Origin.Y + b.Size.Height
}

func (b BoundingBox) Right() float32 {
	return b.Origin.X + b.Size.Width
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Location {
	return Location{
		X: b.Left() + b.Size.Width/2,
		Y: b.Top() + b.Size.Height/2,
	}
}
