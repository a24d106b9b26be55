// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned area of the screen in character cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport projects a continuous world rectangle onto a character rectangle.
// Games simulate in world units and render through a viewport so the same
// simulation draws correctly at any terminal size.
type Viewport struct {
	WorldX, WorldY float64 // Top-left corner of the visible world area
	WorldW, WorldH float64 // Size of the visible world area
	Dst            Rect    // Screen area the world is drawn into
}

// Project maps a world point to a screen cell inside Dst.
// Points outside the world area are clamped to the nearest edge cell.
func (v Viewport) Project(x, y float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 || v.Dst.W <= 0 || v.Dst.H <= 0 {
		return v.Dst.X, v.Dst.Y
	}
	fx := (x - v.WorldX) / v.WorldW * float64(v.Dst.W)
	fy := (y - v.WorldY) / v.WorldH * float64(v.Dst.H)
	cx := Clamp(int(math.Floor(fx)), 0, v.Dst.W-1)
	cy := Clamp(int(math.Floor(fy)), 0, v.Dst.H-1)
	return v.Dst.X + cx, v.Dst.Y + cy
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
