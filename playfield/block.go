package playfield

import (
	"image"
	"image/color"
)

// BlockId is a stable handle into an Arena. Zero is never a live block.
type BlockId uint64

// Block is one occupied cell of a piece or of the settled stack.
type Block struct {
	Pos   Vec2
	Color color.RGBA

	// Screen is the top-left pixel of the block, synced from Pos once per frame.
	Screen image.Point

	// Locked is set when the block has been transferred into the grid.
	Locked bool
}

// Rotate returns the position of b after a quarter turn around pivot.
// direction is -1 or +1. b is not modified.
func (b *Block) Rotate(pivot Vec2, direction int) Vec2 {
	return pivot.Add(b.Pos.Sub(pivot).Rotate(direction))
}

// HorizontalCollide reports whether b cannot move into column x on its current row.
func (b *Block) HorizontalCollide(x int, grid *Grid) bool {
	if x < 0 || x >= grid.Columns() {
		return true
	}
	_, y := b.Pos.Cell()
	return grid.Occupied(x, y)
}

// VerticalCollide reports whether b cannot move into row y in its current column.
// Rows above the field never collide.
func (b *Block) VerticalCollide(y int, grid *Grid) bool {
	if y >= grid.Rows() {
		return true
	}
	if y < 0 {
		return false
	}
	x, _ := b.Pos.Cell()
	return grid.Occupied(x, y)
}

// syncScreen recomputes the pixel position for the given cell size.
func (b *Block) syncScreen(cellSize int) {
	b.Screen = image.Pt(int(b.Pos.X*float64(cellSize)), int(b.Pos.Y*float64(cellSize)))
}
