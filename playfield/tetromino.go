package playfield

// Tetromino is the falling piece: four arena blocks sharing a shape.
// blocks[0] is the rotation pivot.
type Tetromino struct {
	kind   ShapeKind
	blocks [4]BlockId

	arena *Arena
	grid  *Grid

	strictFloor bool
	onLock      func()
}

// NewTetromino spawns the blocks of kind at offset and returns the piece.
// onLock runs after the piece has been written into the grid.
func NewTetromino(kind ShapeKind, offset Vec2, arena *Arena, grid *Grid, strictFloor bool, onLock func()) *Tetromino {
	def := kind.Def()
	t := &Tetromino{
		kind:        kind,
		arena:       arena,
		grid:        grid,
		strictFloor: strictFloor,
		onLock:      onLock,
	}
	for i, off := range def.Offsets {
		t.blocks[i] = arena.Spawn(Block{
			Pos:   off.Add(offset),
			Color: def.Color,
		})
	}
	return t
}

func (t *Tetromino) Kind() ShapeKind {
	return t.kind
}

// Ids returns the arena ids of the four blocks, pivot first.
func (t *Tetromino) Ids() [4]BlockId {
	return t.blocks
}

// Blocks returns copies of the four blocks, pivot first.
func (t *Tetromino) Blocks() [4]Block {
	var out [4]Block
	for i, id := range t.blocks {
		out[i] = *t.arena.Get(id)
	}
	return out
}

// MoveHorizontal shifts every block by amount columns, or none of them.
func (t *Tetromino) MoveHorizontal(amount int) bool {
	for _, id := range t.blocks {
		b := t.arena.Get(id)
		x, _ := b.Pos.Cell()
		if b.HorizontalCollide(x+amount, t.grid) {
			return false
		}
	}

	for _, id := range t.blocks {
		t.arena.Get(id).Pos.X += float64(amount)
	}
	return true
}

// MoveDown drops the piece one row. When any block would collide the piece is
// locked into the grid instead and the lock callback runs.
func (t *Tetromino) MoveDown() (locked bool) {
	if t.collidesBelow() {
		t.lock()
		return true
	}

	for _, id := range t.blocks {
		t.arena.Get(id).Pos.Y++
	}
	return false
}

func (t *Tetromino) collidesBelow() bool {
	for _, id := range t.blocks {
		b := t.arena.Get(id)
		_, y := b.Pos.Cell()
		if b.VerticalCollide(y+1, t.grid) {
			return true
		}
	}
	return false
}

// lock transfers the blocks into the grid. Blocks outside the grid stay in
// the arena so the caller can inspect them, but are not written.
func (t *Tetromino) lock() {
	for _, id := range t.blocks {
		b := t.arena.Get(id)
		b.Locked = true
		x, y := b.Pos.Cell()
		t.grid.Set(x, y, id)
	}

	if t.onLock != nil {
		t.onLock()
	}
}

// Rotate turns the piece a quarter turn around its pivot. O never rotates.
// The rotation is rejected as a whole if any block would leave the side
// walls, overlap the stack or fall below the floor bound.
func (t *Tetromino) Rotate(direction int) bool {
	if !t.kind.Rotates() {
		return false
	}

	pivot := t.arena.Get(t.blocks[0]).Pos
	var next [4]Vec2
	for i, id := range t.blocks {
		next[i] = t.arena.Get(id).Rotate(pivot, direction)
	}

	for _, pos := range next {
		x, y := pos.Cell()
		if x < 0 || x >= t.grid.Columns() {
			return false
		}
		if t.grid.Occupied(x, y) {
			return false
		}
		if y > t.grid.Rows() || (t.strictFloor && y == t.grid.Rows()) {
			return false
		}
	}

	for i, id := range t.blocks {
		t.arena.Get(id).Pos = next[i]
	}
	return true
}

// DropDistance is how many rows the piece can fall before it would lock.
func (t *Tetromino) DropDistance() int {
	blocks := t.Blocks()
	for dist := 0; ; dist++ {
		for _, b := range blocks {
			x, y := b.Pos.Cell()
			probe := Block{Pos: Vec2{X: float64(x), Y: float64(y + dist)}}
			if probe.VerticalCollide(y+dist+1, t.grid) {
				return dist
			}
		}
	}
}
