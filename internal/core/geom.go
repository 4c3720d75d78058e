// Package core provides fundamental types and utilities for the game platforms.
// It contains no UI dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a point or direction in world space.
// World space is measured in display pixels with Y growing downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
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

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// FromAngle returns a vector of the given length pointing at angle radians,
// where 0 points up the screen and angles grow clockwise.
func FromAngle(length, angle float64) Vec2 {
	return Vec2{X: length * math.Sin(angle), Y: -length * math.Cos(angle)}
}

// Circle is a collision shape centred on a point.
type Circle struct {
	Center Vec2
	Radius float64
}

// Overlaps reports whether the centres are closer than the sum of the radii.
// Touching circles do not overlap.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Dist(o.Center) < c.Radius+o.Radius
}

// Box is an axis-aligned rectangle in world space.
type Box struct {
	Min, Max Vec2
}

// BoxAround returns the box of size w x h centred on p.
func BoxAround(p Vec2, w, h float64) Box {
	return Box{
		Min: Vec2{X: p.X - w/2, Y: p.Y - h/2},
		Max: Vec2{X: p.X + w/2, Y: p.Y + h/2},
	}
}

// Intersects reports whether two boxes overlap.
func (b Box) Intersects(o Box) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X &&
		b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T constraints.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of a signed number.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
