// Package core provides fundamental types and utilities for the paper plane game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle used for drawing and hit-testing
// on the terminal grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec2 is a point or a displacement in playfield-local pixel coordinates.
type Vec2 struct {
	X float64
	Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// RectF is an axis-aligned rectangle in pixel coordinates, stored by its edges.
// Callers guarantee Left <= Right and Top <= Bottom.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// RectFromPos builds a rectangle from its top-left corner and size.
func RectFromPos(pos Vec2, w, h float64) RectF {
	return RectF{Left: pos.X, Top: pos.Y, Right: pos.X + w, Bottom: pos.Y + h}
}

// Width returns Right - Left.
func (r RectF) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r RectF) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area (e.g. it was never measured).
func (r RectF) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// TopLeft returns the top-left corner.
func (r RectF) TopLeft() Vec2 {
	return Vec2{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec2 {
	return Vec2{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Inset shrinks the rectangle by d on every side.
func (r RectF) Inset(d float64) RectF {
	return RectF{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// PointInRect reports whether p lies inside r. All four edges are inclusive.
func PointInRect(p Vec2, r RectF) bool {
	return r.Left <= p.X && p.X <= r.Right && r.Top <= p.Y && p.Y <= r.Bottom
}

// RectsOverlap reports whether a and b overlap. Touching edges do not count.
func RectsOverlap(a, b RectF) bool {
	return a.Left < b.Right && a.Right > b.Left && a.Top < b.Bottom && a.Bottom > b.Top
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
