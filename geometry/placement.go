package geometry

import "fmt"

// DefaultMargin is the clearance kept between the overlay and both the
// trigger and the viewport edges when no explicit margin is configured.
const DefaultMargin float32 = 16

// ViewportTooSmallError reports a viewport that cannot contain the overlay
// near its trigger under any candidate placement.
type ViewportTooSmallError struct {
	Viewport Size
	Content  Size
}

func (e *ViewportTooSmallError) Error() string {
	return fmt.Sprintf(
		"viewport %gx%g too small for tooltip content %gx%g",
		e.Viewport.Width, e.Viewport.Height, e.Content.Width, e.Content.Height,
	)
}

type side int

const (
	sideTop side = iota
	sideRight
	sideLeft
	sideBottom
)

// candidateOrder is the priority order of the first, fully-contained pass.
var candidateOrder = [4]side{sideTop, sideRight, sideLeft, sideBottom}

// correctedOrder is the priority order of the fallback pass, where only the
// secondary axis may be shifted.
var correctedOrder = [4]side{sideTop, sideBottom, sideLeft, sideRight}

// ComputeOrigin returns the top-left origin for overlay content of the given
// size anchored to the trigger box inside the viewport. Candidates are tried
// above, right of, left of, and below the trigger; the first one fully
// contained wins. When none fits, candidates whose primary axis still fits
// are shifted along the other axis until flush with the margin. The function
// is pure: identical inputs always produce identical output.
func ComputeOrigin(trigger BoundingBox, content, viewport Size, margin float32) (Location, error) {
	for _, s := range candidateOrder {
		box := candidate(s, trigger, content, margin)
		if contained(box, viewport, margin) {
			return box.Origin, nil
		}
	}

	for _, s := range correctedOrder {
		box := candidate(s, trigger, content, margin)
		switch s {
		case sideTop, sideBottom:
			if !containedVertically(box, viewport, margin) {
				continue
			}
			return box.Origin.Add(Location{X: horizontalCorrection(box, viewport, margin)}), nil
		case sideLeft, sideRight:
			if !containedHorizontally(box, viewport, margin) {
				continue
			}
			return box.Origin.Add(Location{Y: verticalCorrection(box, viewport, margin)}), nil
		}
	}

	return Location{}, &ViewportTooSmallError{Viewport: viewport, Content: content}
}

func candidate(s side, trigger BoundingBox, content Size, margin float32) BoundingBox {
	center := trigger.Center()

	var origin Location
	switch s {
	case sideTop:
		origin = Location{X: center.X - content.Width/2, Y: trigger.Top() - content.Height - margin}
	case sideRight:
		origin = Location{X: trigger.Right() + margin, Y: center.Y - content.Height/2}
	case sideLeft:
		origin = Location{X: trigger.Left() - content.Width - margin, Y: center.Y - content.Height/2}
	case sideBottom:
		origin = Location{X: center.X - content.Width/2, Y: trigger.Bottom() + margin}
	}

	return BoundingBox{Origin: origin, Size: content}
}

// Containment is deliberately asymmetric: inclusive of zero on the low edge,
// strictly below the viewport dimension on the high edge. Kept exactly for
// compatibility with the original placement behavior.
func contained(b BoundingBox, viewport Size, margin float32) bool {
	return containedVertically(b, viewport, margin) && containedHorizontally(b, viewport, margin)
}

func containedVertically(b BoundingBox, viewport Size, margin float32) bool {
	return b.Top()-margin >= 0 && b.Bottom()+margin < viewport.Height
}

func containedHorizontally(b BoundingBox, viewport Size, margin float32) bool {
	return b.Left()-margin >= 0 && b.Right()+margin < viewport.Width
}

// horizontalCorrection shifts the box flush with the violated horizontal
// edge: left edge to margin, or right edge to viewport width minus margin.
// The left edge wins if both violate.
func horizontalCorrection(b BoundingBox, viewport Size, margin float32) float32 {
	if b.Left()-margin < 0 {
		return -b.Left() + margin
	}
	if b.Right()+margin >= viewport.Width {
		return viewport.Width - margin - b.Right()
	}

	return 0
}

func verticalCorrection(b BoundingBox, viewport Size, margin float32) float32 {
	if b.Top()-margin < 0 {
		return -b.Top() + margin
	}
	if b.Bottom()+margin >= viewport.Height {
		return viewport.Height - margin - b.Bottom()
	}

	return 0
}
