// SPDX-License-Identifier: MIT

package factor

// cursor walks every joint setting of a list of axes in row-major order (last
// axis fastest) and keeps one running offset per tracked stride table.
//
// A tracked table is a stride vector parallel to the axes; a zero stride means
// the table does not vary along that axis, which is how product broadcasts an
// operand over variables it lacks and how marginalize folds summed-out
// variables onto one target cell.
//
// Advancing is amortized O(tables) per step; no per-step allocation.
type cursor struct {
	card    []int   // per-axis cardinality
	digit   []int   // current position per axis
	strides [][]int // strides[t][axis] for tracked table t
	off     []int   // current offset per tracked table
}

// newCursor positions a cursor at the all-zero setting. base holds the
// starting offset of each tracked table (nil means all zero).
func newCursor(card []int, base []int, strides ...[]int) *cursor {
	off := make([]int, len(strides))
	copy(off, base)

	return &cursor{
		card:    card,
		digit:   make([]int, len(card)),
		strides: strides,
		off:     off,
	}
}

// next advances to the following setting. After the last setting the cursor
// wraps to all zeros, which callers never observe because they loop a fixed
// number of times.
func (c *cursor) next() {
	for ax := len(c.card) - 1; ax >= 0; ax-- {
		c.digit[ax]++
		for t := range c.off {
			c.off[t] += c.strides[t][ax]
		}
		if c.digit[ax] < c.card[ax] {
			return
		}
		// Carry: rewind this axis and bump the next slower one.
		for t := range c.off {
			c.off[t] -= c.strides[t][ax] * c.card[ax]
		}
		c.digit[ax] = 0
	}
}
