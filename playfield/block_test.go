package playfield_test

import (
	"testing"

	"github.com/plus3/stackfall/playfield"
	"github.com/stretchr/testify/assert"
)

func TestVec2Rotate(t *testing.T) {
	v := playfield.Vec2{X: 0, Y: -1}

	assert.Equal(t, playfield.Vec2{X: 1, Y: 0}, v.Rotate(1))
	assert.Equal(t, playfield.Vec2{X: -1, Y: 0}, v.Rotate(-1))
	assert.Equal(t, playfield.Vec2{X: 0, Y: 1}, v.Rotate(2))
	assert.Equal(t, v, v.Rotate(4))
	assert.Equal(t, v.Rotate(-1), v.RotateDegrees(-90))

	half := v.RotateDegrees(45)
	assert.InDelta(t, 0.7071, half.X, 1e-4)
	assert.InDelta(t, -0.7071, half.Y, 1e-4)
}

func TestVec2Cell(t *testing.T) {
	x, y := playfield.Vec2{X: 3.9, Y: -1}.Cell()
	assert.Equal(t, 3, x)
	assert.Equal(t, -1, y)
}

func TestBlockRotate(t *testing.T) {
	b := playfield.Block{Pos: playfield.Vec2{X: 5, Y: 4}}
	pivot := playfield.Vec2{X: 5, Y: 5}

	assert.Equal(t, playfield.Vec2{X: 4, Y: 5}, b.Rotate(pivot, -1))
	assert.Equal(t, playfield.Vec2{X: 6, Y: 5}, b.Rotate(pivot, 1))
	assert.Equal(t, playfield.Vec2{X: 5, Y: 4}, b.Pos, "rotate must not mutate")
}

func TestBlockHorizontalCollide(t *testing.T) {
	grid := playfield.NewGrid(10, 20)
	b := playfield.Block{Pos: playfield.Vec2{X: 0, Y: 5}}

	assert.True(t, b.HorizontalCollide(-1, grid))
	assert.True(t, b.HorizontalCollide(10, grid))
	assert.False(t, b.HorizontalCollide(1, grid))

	grid.Set(1, 5, 99)
	assert.True(t, b.HorizontalCollide(1, grid))

	grid.Set(1, 5, 0)
	grid.Set(1, 6, 99)
	assert.False(t, b.HorizontalCollide(1, grid), "only the block's own row counts")
}

func TestBlockVerticalCollide(t *testing.T) {
	grid := playfield.NewGrid(10, 20)
	b := playfield.Block{Pos: playfield.Vec2{X: 3, Y: 5}}

	assert.True(t, b.VerticalCollide(20, grid))
	assert.True(t, b.VerticalCollide(25, grid))
	assert.False(t, b.VerticalCollide(19, grid))
	assert.False(t, b.VerticalCollide(-1, grid))
	assert.False(t, b.VerticalCollide(-5, grid))

	grid.Set(3, 6, 7)
	assert.True(t, b.VerticalCollide(6, grid))

	grid.Set(3, 0, 7)
	above := playfield.Block{Pos: playfield.Vec2{X: 3, Y: -2}}
	assert.False(t, above.VerticalCollide(-1, grid), "rows above the field never collide")
	assert.True(t, above.VerticalCollide(0, grid))
}
