// Package core provides fundamental types shared by the simulation and the
// platform layer. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in world coordinates, used for
// overlap-based collision detection. Bounds are inclusive on all four
// edges: two boxes that merely touch still collide.
type Box struct {
	MinX, MaxX int
	MinY, MaxY int
}

// BoxAround builds a box centered on the display position (x, y) extending
// half units in every direction.
func BoxAround(x, y, half int) Box {
	return Box{
		MinX: x - half,
		MaxX: x + half,
		MinY: y - half,
		MaxY: y + half,
	}
}

// Overlaps reports whether the two boxes intersect, comparing all four
// boundaries with closed-interval semantics. The predicate is symmetric.
func (b Box) Overlaps(other Box) bool {
	return b.MinX <= other.MaxX &&
		b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY &&
		b.MaxY >= other.MinY
}

// Rect is a screen-space rectangle used by the cell buffer drawing helpers.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
