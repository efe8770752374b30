package playfield

import "math"

// Vec2 is a position in grid units. X grows right, Y grows down.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rotate turns v around the origin by quarter turns (positive is clockwise on
// screen). Quarter turns are computed exactly so truncation never drifts.
func (v Vec2) Rotate(quarterTurns int) Vec2 {
	switch ((quarterTurns % 4) + 4) % 4 {
	case 1:
		return Vec2{X: -v.Y, Y: v.X}
	case 2:
		return Vec2{X: -v.X, Y: -v.Y}
	case 3:
		return Vec2{X: v.Y, Y: -v.X}
	}
	return v
}

// RotateDegrees is the general form used for non-quarter angles.
func (v Vec2) RotateDegrees(deg float64) Vec2 {
	if math.Mod(deg, 90) == 0 {
		return v.Rotate(int(deg / 90))
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Cell truncates to integer column and row indices.
func (v Vec2) Cell() (x, y int) {
	return int(v.X), int(v.Y)
}
