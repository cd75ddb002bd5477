package pick

import "fmt"

// GroupSize is the number of distinct ids a single pick pass can resolve.
const GroupSize = 256

// ID is an allocated pick id split into its picking pass and its 8-bit local id.
type ID struct {
	Group int
	Local uint8
}

// Block is a contiguous run of ids inside one group, handed to drawables that need
// several pick ids (a scatter trace draws markers, lines, error bars and text separately).
type Block struct {
	Group int
	IDs   []uint8
}

// Allocator hands out monotonically increasing pick ids. It never reuses an id.
// It is not safe for concurrent use.
type Allocator struct {
	count int
}

// Next allocates a single id.
//
// Returns:
//   - ID: the group and local id
func (a *Allocator) Next() ID {
	b := a.Reserve(1)
	return ID{Group: b.Group, Local: b.IDs[0]}
}

// Reserve allocates n consecutive ids that share one group. When the block would cross a
// group boundary the allocator skips to the start of the next group.
//
// Parameters:
//   - n: number of ids, between 1 and GroupSize
//
// Returns:
//   - Block: the group and its local ids
func (a *Allocator) Reserve(n int) Block {
	if n < 1 || n > GroupSize {
		panic(fmt.Sprintf("pick: cannot reserve %d ids in a group of %d", n, GroupSize))
	}
	if a.count%GroupSize+n > GroupSize {
		a.count += GroupSize - a.count%GroupSize
	}
	// start+n <= GroupSize here, so every local id fits in a uint8
	start := a.count % GroupSize
	b := Block{Group: a.count / GroupSize, IDs: make([]uint8, n)}
	for i := range b.IDs {
		b.IDs[i] = uint8(start + i)
	}
	a.count += n
	return b
}

// Count returns the number of ids consumed so far, including skipped ones.
func (a *Allocator) Count() int {
	return a.count
}

// Passes returns how many pick passes cover every allocated id: the number of p with p<<8 < Count.
func (a *Allocator) Passes() int {
	return (a.count + GroupSize - 1) / GroupSize
}

// Reset forgets every allocation.
func (a *Allocator) Reset() {
	a.count = 0
}
