package playfield

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Arena owns every block in play. Blocks are stored densely and addressed by
// BlockId; ids are never reused, so a stale id simply fails to resolve.
type Arena struct {
	blocks []Block
	ids    []BlockId
	index  *intmap.Map[BlockId, int]
	nextId BlockId
}

// NewArena creates an arena sized for a board of the given cell count.
func NewArena(capacity int) *Arena {
	return &Arena{
		blocks: make([]Block, 0, capacity),
		ids:    make([]BlockId, 0, capacity),
		index:  intmap.New[BlockId, int](capacity),
	}
}

// Spawn stores b and returns its id.
func (a *Arena) Spawn(b Block) BlockId {
	a.nextId++
	id := a.nextId

	a.index.Put(id, len(a.blocks))
	a.blocks = append(a.blocks, b)
	a.ids = append(a.ids, id)

	return id
}

// Get returns a pointer to the block, or nil if id is not live.
// The pointer is only valid until the next Delete.
func (a *Arena) Get(id BlockId) *Block {
	idx, ok := a.index.Get(id)
	if !ok {
		return nil
	}
	return &a.blocks[idx]
}

// Has reports whether id refers to a live block.
func (a *Arena) Has(id BlockId) bool {
	_, ok := a.index.Get(id)
	return ok
}

// Delete removes a block by moving the last block into its slot.
func (a *Arena) Delete(id BlockId) bool {
	idx, ok := a.index.Get(id)
	if !ok {
		return false
	}

	last := len(a.blocks) - 1
	if idx != last {
		a.blocks[idx] = a.blocks[last]
		a.ids[idx] = a.ids[last]
		a.index.Put(a.ids[idx], idx)
	}

	a.blocks = a.blocks[:last]
	a.ids = a.ids[:last]
	a.index.Del(id)

	return true
}

// Len returns the number of live blocks.
func (a *Arena) Len() int {
	return len(a.blocks)
}

// Clear drops every block. Ids keep increasing across clears.
func (a *Arena) Clear() {
	a.blocks = a.blocks[:0]
	a.ids = a.ids[:0]
	a.index.Clear()
}

// All iterates live blocks in storage order. The loop body must not delete.
func (a *Arena) All() iter.Seq2[BlockId, *Block] {
	return func(yield func(BlockId, *Block) bool) {
		for i := range a.blocks {
			if !yield(a.ids[i], &a.blocks[i]) {
				return
			}
		}
	}
}
