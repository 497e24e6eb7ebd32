package gridbuf

// LineFlags is a bitmask of per-line state bits.
type LineFlags uint8

const (
	// LineWrapped marks that the following line is a logical continuation
	// of this one (the line was filled exactly and word-wrap continued).
	LineWrapped LineFlags = 1 << iota
	// LineExtended marks that at least one cell on this line uses the
	// out-of-line extended representation.
	LineExtended
	// LineDead tombstones a line mid-reflow: it holds no allocations and
	// must never be addressed.
	LineDead
)

// Line is one row of cells: a variable-length compact cell array, a
// sidecar array of extended cells for entries that don't fit the compact
// form, and bookkeeping flags/counters.
type Line struct {
	flags    LineFlags
	cellData []cellEntry
	cellUsed int
	extData  []Cell
}

// CellSize returns the number of allocated cell slots (not all are
// necessarily written; trailing slots beyond CellUsed are default).
func (l *Line) CellSize() int {
	return len(l.cellData)
}

// CellUsed returns the number of cells actually written.
func (l *Line) CellUsed() int {
	return l.cellUsed
}

// Wrapped reports whether the next line is a logical continuation of
// this one.
func (l *Line) Wrapped() bool {
	return l.flags&LineWrapped != 0
}

// SetWrapped sets or clears the wrapped flag.
func (l *Line) SetWrapped(w bool) {
	if w {
		l.flags |= LineWrapped
	} else {
		l.flags &^= LineWrapped
	}
}

func (l *Line) free() {
	l.cellData = nil
	l.extData = nil
}

// expand grows the line's cell array to hold at least need cells,
// applying the same growth policy as tmux's grid_block_expand_line: grow
// to a quarter, a half, or the full target width, whichever first covers
// the request, so that repeated small expansions don't reallocate every
// call. New columns are initialized to a default cell with background bg.
func (l *Line) expand(need, target int, bg Color) {
	if need <= len(l.cellData) {
		return
	}

	grow := need
	switch {
	case need < target/4:
		grow = target / 4
	case need < target/2:
		grow = target / 2
	default:
		grow = target
	}
	if grow < need {
		grow = need
	}

	old := len(l.cellData)
	grown := make([]cellEntry, grow)
	copy(grown, l.cellData)
	l.cellData = grown
	for px := old; px < grow; px++ {
		l.clearCell(px, bg)
	}
}

// clearCell resets cell px to the default, applying background color bg.
func (l *Line) clearCell(px int, bg Color) {
	entry := &l.cellData[px]
	*entry = defaultEntry
	if bg.IsRGB() {
		cell := DefaultCell
		cell.Bg = bg
		l.extendCell(entry, cell)
	} else {
		if bg.Is256() {
			entry.flags |= CellFlagBG256
		}
		entry.bg = bg.Index()
	}
}

// emptyLine frees the line's storage and zeroes it. If bg isn't the
// default color, the line is immediately expanded to full width sx so
// that subsequent reads see the colored background instead of falling
// through to DefaultCell.
func (l *Line) emptyLine(sx int, bg Color) {
	l.free()
	l.flags = 0
	l.cellUsed = 0
	if !bg.IsDefault() {
		l.expand(sx, sx, bg)
	}
}

// extendCell ensures entry uses the out-of-line representation, appending
// a fresh slot to the line's extended array if it wasn't already
// extended, then overwrites the backing record with cell. Returns a
// pointer to the backing record.
func (l *Line) extendCell(entry *cellEntry, cell Cell) *Cell {
	l.flags |= LineExtended

	if entry.flags&CellFlagExtended == 0 {
		l.extData = append(l.extData, Cell{})
		entry.offset = uint32(len(l.extData) - 1)
		entry.flags = cell.Flags | CellFlagExtended
	}
	if int(entry.offset) >= len(l.extData) {
		panic("gridbuf: extended cell offset out of range")
	}

	l.extData[entry.offset] = cell
	return &l.extData[entry.offset]
}

// compact garbage-collects the line's extended array: dense-packs offsets
// for entries still flagged extended and drops the array entirely if
// none remain.
func (l *Line) compact() {
	if len(l.extData) == 0 {
		return
	}

	newSize := 0
	for px := range l.cellData {
		if l.cellData[px].flags&CellFlagExtended != 0 {
			newSize++
		}
	}
	if newSize == 0 {
		l.extData = nil
		return
	}

	newData := make([]Cell, newSize)
	idx := 0
	for px := range l.cellData {
		entry := &l.cellData[px]
		if entry.flags&CellFlagExtended != 0 {
			newData[idx] = l.extData[entry.offset]
			entry.offset = uint32(idx)
			idx++
		}
	}
	l.extData = newData
}

// setCell stores cell at column px, expanding the line as needed and
// bumping cellUsed. width is the grid's current column count, used for
// the expand growth policy.
func (l *Line) setCell(px, width int, cell Cell) {
	l.expand(px+1, width, ColorDefault)
	if px+1 > l.cellUsed {
		l.cellUsed = px + 1
	}

	entry := &l.cellData[px]
	if needExtended(*entry, cell) {
		l.extendCell(entry, cell)
	} else {
		storeCell(entry, cell, cell.Glyph.Data[0])
	}
}

// getCell reads the logical cell at column px, returning DefaultCell if
// px is beyond the allocated cell array.
func (l *Line) getCell(px int) Cell {
	if px >= len(l.cellData) {
		return DefaultCell
	}
	entry := l.cellData[px]
	if entry.flags&CellFlagExtended != 0 {
		if int(entry.offset) >= len(l.extData) {
			return DefaultCell
		}
		return l.extData[entry.offset]
	}
	return entryToCell(entry)
}
