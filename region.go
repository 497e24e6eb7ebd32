package gridbuf

// ClearLines resets ny lines starting at row to empty, freeing their
// storage and applying background color bg (full-width clear).
func (g *Grid) ClearLines(row, ny int, bg Color) {
	if ny == 0 {
		return
	}
	if !g.checkY("ClearLines", row) || !g.checkY("ClearLines", row+ny-1) {
		return
	}

	cache := blockCache{}
	for yy := row; yy < row+ny; yy++ {
		b, by := g.getBlock(yy, &cache)
		b.freeLine(by)
		b.emptyLine(by, bg)
	}
}

// Clear resets the nx-by-ny rectangle at (col, row) to default cells with
// background bg. A clear spanning the full width delegates to ClearLines.
func (g *Grid) Clear(col, row, nx, ny int, bg Color) {
	if nx == 0 || ny == 0 {
		return
	}
	if col == 0 && nx == g.sx {
		g.ClearLines(row, ny, bg)
		return
	}

	if !g.checkY("Clear", row) || !g.checkY("Clear", row+ny-1) {
		return
	}

	cache := blockCache{}
	for yy := row; yy < row+ny; yy++ {
		b, by := g.getBlock(yy, &cache)
		line := &b.lines[by]

		if col+nx >= g.sx && col < line.cellUsed {
			line.cellUsed = col
		}
		if col > line.CellSize() && bg.IsDefault() {
			continue
		}
		if col+nx >= line.CellSize() && bg.IsDefault() {
			line.cellData = line.cellData[:col]
			continue
		}

		b.expandLine(by, col+nx, ColorDefault)
		for xx := col; xx < col+nx; xx++ {
			b.clearCell(by, xx, bg)
		}
	}
}

// MoveLines moves ny lines from row py to row dy within the grid, then
// wipes (with background bg) whichever source rows weren't also part of
// the destination range.
func (g *Grid) MoveLines(dy, py, ny int, bg Color) {
	if ny == 0 || py == dy {
		return
	}
	if !g.checkY("MoveLines", py) || !g.checkY("MoveLines", py+ny-1) {
		return
	}
	if !g.checkY("MoveLines", dy) || !g.checkY("MoveLines", dy+ny-1) {
		return
	}

	g.moveLinesRaw(dy, py, ny)

	cache := blockCache{}
	for yy := py; yy < py+ny; yy++ {
		if yy < dy || yy >= dy+ny {
			b, by := g.getBlock(yy, &cache)
			b.emptyLine(by, bg)
		}
	}
}

// moveLinesRaw relocates n lines from sy to dy without clearing anything,
// walking forward when the source is below the destination and backward
// otherwise so overlapping ranges never clobber data they still need.
func (g *Grid) moveLinesRaw(dy, sy, n int) {
	cacheSrc := blockCache{}
	cacheDst := blockCache{}

	moveOne := func(s, d int) {
		sb, sby := g.getBlock(s, &cacheSrc)
		db, dby := g.getBlock(d, &cacheDst)
		db.freeLine(dby)
		db.lines[dby] = sb.lines[sby]
		sb.lines[sby] = Line{}
	}

	if sy > dy {
		for yy := sy; yy < sy+n; yy++ {
			moveOne(yy, yy-sy+dy)
		}
	} else if sy < dy {
		for yy := sy + n - 1; yy >= sy; yy-- {
			moveOne(yy, yy-sy+dy)
			if yy == 0 {
				break
			}
		}
	}
}

// MoveCells moves nx cells from column px to column dx within line py,
// expanding the line to fit both ranges, then clears whichever source
// cells weren't also part of the destination range.
func (g *Grid) MoveCells(dx, px, py, nx int, bg Color) {
	if nx == 0 || px == dx {
		return
	}
	if !g.checkY("MoveCells", py) {
		return
	}
	b, by := g.getBlock(py, nil)
	if b == nil {
		return
	}
	b.moveCells(by, dx, px, nx, bg)
}

// moveCells is the block-local implementation of MoveCells.
func (b *Block) moveCells(row, dx, px, nx int, bg Color) {
	if !b.checkRow(row) {
		return
	}
	line := &b.lines[row]

	b.expandLine(row, px+nx, ColorDefault)
	b.expandLine(row, dx+nx, ColorDefault)
	copy(line.cellData[dx:dx+nx], line.cellData[px:px+nx])
	if dx+nx > line.cellUsed {
		line.cellUsed = dx + nx
	}

	for xx := px; xx < px+nx; xx++ {
		if xx >= dx && xx < dx+nx {
			continue
		}
		b.clearCell(row, xx, bg)
	}
}
