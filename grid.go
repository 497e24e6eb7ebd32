package gridbuf

import "log"

// Grid is the backing store for one terminal pane: a scrollback history
// of lines followed by the currently visible screen. All operations
// address rows in absolute coordinates: row 0 is the oldest history
// line, row hsize+sy-1 is the bottom of the visible screen.
type Grid struct {
	sx, sy int

	hsize      int // history lines, rows [0, hsize)
	hscrolled  int // viewport scroll offset into history, <= hsize
	hlimit     int // history retention cap
	hallocated int // sum of block sizes; == hsize+sy outside reflow

	reflowing bool // re-entrancy guard for the lazy-reflow trampoline

	blocks []*Block
	cache  blockCache
}

// blockCache remembers the last block resolved by getBlock along with its
// absolute starting row, so repeated addressing near the same row avoids
// re-walking the block list.
type blockCache struct {
	offset int
	block  *Block
}

// NewGrid creates a grid with sy blank visible rows, no history, and the
// given history retention limit.
func NewGrid(sx, sy, hlimit int) *Grid {
	g := &Grid{sx: sx, hlimit: hlimit}
	g.reallocLinedata(sy)
	g.sy = sy
	return g
}

// Destroy releases every block the grid holds. The grid must not be used
// afterward.
func (g *Grid) Destroy() {
	g.blocks = nil
	g.cache = blockCache{}
}

// SX returns the current column width.
func (g *Grid) SX() int { return g.sx }

// SY returns the current visible row count.
func (g *Grid) SY() int { return g.sy }

// HSize returns the number of history lines.
func (g *Grid) HSize() int { return g.hsize }

// HScrolled returns the current scrollback viewport offset.
func (g *Grid) HScrolled() int { return g.hscrolled }

// HLimit returns the configured history retention cap.
func (g *Grid) HLimit() int { return g.hlimit }

func logViolation(site string, row int) {
	log.Printf("gridbuf: %s: row out of range: %d", site, row)
}

// checkY reports whether row addresses a line within [0, hsize+sy).
func (g *Grid) checkY(site string, row int) bool {
	if row < 0 || row >= g.hsize+g.sy {
		logViolation(site, row)
		return false
	}
	return true
}

// getBlock resolves an absolute row to its owning block and the
// block-relative row, using cache (if non-nil) to skip the walk when the
// row falls in the previously resolved block. It walks from whichever end
// of the block list is numerically closer to row, matching tmux's
// halving-bias traversal for long histories. Returns (nil, 0) only when
// row is out of [0, hallocated), callers must bounds-check first.
func (g *Grid) getBlock(row int, cache *blockCache) (*Block, int) {
	if cache != nil && cache.block != nil {
		if cache.offset <= row && row < cache.offset+cache.block.size() {
			return cache.block, row - cache.offset
		}
	}

	total := g.hallocated
	if row < total/2 {
		offset := 0
		for _, b := range g.blocks {
			if offset <= row && row < offset+b.size() {
				if cache != nil {
					cache.offset = offset
					cache.block = b
				}
				return b, row - offset
			}
			offset += b.size()
		}
	} else {
		offset := total
		for i := len(g.blocks) - 1; i >= 0; i-- {
			b := g.blocks[i]
			offset -= b.size()
			if offset <= row && row < offset+b.size() {
				if cache != nil {
					cache.offset = offset
					cache.block = b
				}
				return b, row - offset
			}
		}
	}

	return nil, 0
}

// getLineData resolves row to its Line. If the owning block has a pending
// lazy reflow, every pending lazy reflow is completed first (unless this
// call is itself nested
// inside the outer reflow driver, which sets reflowing to suppress
// recursion).
func (g *Grid) getLineData(row int) *Line {
	if !g.reflowing {
		b, _ := g.getBlock(row, nil)
		if b != nil && b.needReflow {
			g.reflowComplete()
		}
	}

	b, by := g.getBlock(row, nil)
	if b == nil {
		return nil
	}
	return &b.lines[by]
}

func (g *Grid) appendEmptyBlock() {
	g.blocks = append(g.blocks, newBlock(g.sx))
}

// reallocLinedata grows or shrinks the grid's total allocated row count
// (Σ block sizes) to goal, preserving content. It does not touch hsize or
// sy; the caller owns that policy.
func (g *Grid) reallocLinedata(goal int) {
	total := g.hallocated

	for goal > total {
		if len(g.blocks) == 0 {
			g.appendEmptyBlock()
			continue
		}
		last := g.blocks[len(g.blocks)-1]
		if last.size() >= maxBlockLines {
			g.appendEmptyBlock()
			continue
		}

		newSize := last.size() + (goal - total)
		if newSize > maxBlockLines {
			newSize = maxBlockLines
		}
		added := newSize - last.size()
		last.grow(added)
		total += added
	}

	for goal < total {
		if len(g.blocks) == 0 {
			break
		}
		last := g.blocks[len(g.blocks)-1]

		toRemove := total - goal
		if toRemove >= last.size() {
			g.blocks = g.blocks[:len(g.blocks)-1]
			total -= last.size()
			continue
		}

		newSize := last.size() - toRemove
		last.freeLines(newSize, toRemove)
		last.lines = last.lines[:newSize]
		total -= toRemove
	}

	g.hallocated = total
	g.cache = blockCache{}
}

// trimHead removes the n oldest lines (the front of the block list),
// freeing their storage. It does not touch hsize; the caller updates it.
func (g *Grid) trimHead(n int) {
	for n > 0 {
		if len(g.blocks) == 0 {
			break
		}
		first := g.blocks[0]
		if first.size() <= n {
			g.hallocated -= first.size()
			n -= first.size()
			g.blocks = g.blocks[1:]
			continue
		}

		remaining := first.size() - n
		first.freeLines(0, n)
		copy(first.lines, first.lines[n:])
		first.lines = first.lines[:remaining]
		g.hallocated -= n
		break
	}
	g.cache = blockCache{}
}
