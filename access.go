package gridbuf

// PeekLine returns the line at row, or nil if row is out of range.
func (g *Grid) PeekLine(row int) *Line {
	if !g.checkY("PeekLine", row) {
		return nil
	}
	return g.getLineData(row)
}

// GetCell returns the logical cell at (row, col), or DefaultCell if
// either coordinate is out of range.
func (g *Grid) GetCell(row, col int) Cell {
	if !g.checkY("GetCell", row) {
		return DefaultCell
	}
	line := g.getLineData(row)
	if line == nil {
		return DefaultCell
	}
	return line.getCell(col)
}

// SetCell stores cell at (row, col), expanding the line as needed. A
// bounds violation on row is logged and ignored.
func (g *Grid) SetCell(row, col int, cell Cell) {
	if !g.checkY("SetCell", row) {
		return
	}
	b, by := g.getBlock(row, nil)
	if b == nil {
		return
	}
	b.setCell(by, col, cell)
}

// SetCells stores len(data) cells starting at (row, col), all sharing
// cell's attributes/colors/flags but each taking one successive byte from
// data as its glyph. This matches how a terminal driver streams a run of
// single-byte-per-cell output (e.g. ASCII) through one SGR state.
func (g *Grid) SetCells(row, col int, cell Cell, data []byte) {
	if !g.checkY("SetCells", row) {
		return
	}
	b, by := g.getBlock(row, nil)
	if b == nil {
		return
	}

	b.expandLine(by, col+len(data), ColorDefault)
	line := &b.lines[by]
	if col+len(data) > line.cellUsed {
		line.cellUsed = col + len(data)
	}

	for i, c := range data {
		entry := &line.cellData[col+i]
		if needExtended(*entry, cell) {
			glyphed := cell
			glyphed.Glyph = Glyph{Data: [GlyphSize]byte{c}, Size: 1, Width: 1}
			line.extendCell(entry, glyphed)
		} else {
			storeCell(entry, cell, c)
		}
	}
}
