package playfield

// Grid is the settled field: one BlockId per cell, zero meaning empty.
// Row 0 is the top of the visible field.
type Grid struct {
	columns int
	rows    int
	cells   []BlockId
}

func NewGrid(columns, rows int) *Grid {
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]BlockId, columns*rows),
	}
}

func (g *Grid) Columns() int { return g.columns }
func (g *Grid) Rows() int    { return g.rows }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < g.rows
}

// At returns the block id at (x, y), or zero when empty or out of bounds.
func (g *Grid) At(x, y int) BlockId {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y*g.columns+x]
}

// Occupied reports whether (x, y) holds a block. Out-of-bounds cells are empty.
func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y) != 0
}

// Set writes id into (x, y) and reports whether the cell exists.
func (g *Grid) Set(x, y int, id BlockId) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.columns+x] = id
	return true
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []BlockId {
	row := make([]BlockId, g.columns)
	copy(row, g.cells[y*g.columns:(y+1)*g.columns])
	return row
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	for _, id := range g.cells[y*g.columns : (y+1)*g.columns] {
		if id == 0 {
			return false
		}
	}
	return true
}

// FullRows returns the indices of every full row in ascending order.
func (g *Grid) FullRows() []int {
	var full []int
	for y := 0; y < g.rows; y++ {
		if g.RowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, id := range g.cells {
		if id != 0 {
			n++
		}
	}
	return n
}

// Rebuild clears the grid and writes every locked block of the arena at its
// current cell.
func (g *Grid) Rebuild(arena *Arena) {
	g.Reset()
	for id, b := range arena.All() {
		if !b.Locked {
			continue
		}
		x, y := b.Pos.Cell()
		g.Set(x, y, id)
	}
}

// String renders the grid with '#' for occupied and '.' for empty cells.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.columns+1)*g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.columns; x++ {
			if g.Occupied(x, y) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
