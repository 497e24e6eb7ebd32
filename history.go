package gridbuf

// ScrollHistory scrolls the entire visible screen down by one, pushing
// its former top line into history: grows the grid by one row, empties
// the new bottom visible row with background bg, and compacts the line
// that just became the newest history entry (its extended array, if any,
// no longer needs the slack accumulated while it was live).
func (g *Grid) ScrollHistory(bg Color) {
	yy := g.hsize + g.sy
	g.reallocLinedata(yy + 1)
	b, by := g.getBlock(yy, nil)
	b.emptyLine(by, bg)

	g.hscrolled++
	line := g.getLineData(g.hsize)
	line.compact()
	g.hsize++
}

// ClearHistory drops every history line.
func (g *Grid) ClearHistory() {
	g.trimHead(g.hsize)
	g.hscrolled = 0
	g.hsize = 0
}

// CollectHistory evicts roughly 10% (at least 1, never more than hsize)
// of the oldest history lines once hsize has reached hlimit.
func (g *Grid) CollectHistory() {
	if g.hsize == 0 || g.hsize < g.hlimit {
		return
	}

	ny := g.hlimit / 10
	if ny < 1 {
		ny = 1
	}
	if ny > g.hsize {
		ny = g.hsize
	}

	g.trimHead(ny)
	g.hsize -= ny
	if g.hscrolled > g.hsize {
		g.hscrolled = g.hsize
	}
}

// ScrollHistoryRegion scrolls the sub-region [upper, lower] of the
// visible screen up by one, pushing upper's line into history: the whole
// visible screen is shifted down by one row to make room, the upper row
// is relocated into the new history slot, the region above lower is
// shifted up to close the gap, and lower is emptied with bg.
func (g *Grid) ScrollHistoryRegion(upper, lower int, bg Color) {
	yy := g.hsize + g.sy
	g.reallocLinedata(yy + 1)

	// Move the entire screen down to free a space for the new line.
	g.moveLinesRaw(g.hsize+1, g.hsize, g.sy)

	upper++
	lower++

	// Move upper's line into the new history slot.
	g.moveLinesRaw(g.hsize, upper, 1)

	// Shift the region up over the gap and clear the vacated bottom line.
	g.moveLinesRaw(upper, upper+1, lower-upper)
	b, by := g.getBlock(lower, nil)
	b.emptyLine(by, bg)

	g.hscrolled++
	g.hsize++
}
