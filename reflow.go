package gridbuf

// fixupRole names which external row reference a fixup entry tracks across
// a reflow. The original algorithm this is grounded on threads a NULL-
// terminated array of int pointers through the split/join routines and
// later recognizes each one back in the driver by comparing the pointer
// against the address of a fixed outer variable, a trick that, read
// carefully, compares the wrong level of indirection and can misattribute
// one row's adjustment to another's variable when more than one fixup is
// registered on the same block. Giving each fixup an explicit role and
// dispatching on that instead removes the ambiguity.
type fixupRole int

const (
	fixupCursor fixupRole = iota + 1
	fixupScroll
)

// fixup tracks one external row reference through a single block's reflow.
// value is seeded with the row's index within the block being reflowed
// (counted from the block's first line) and is adjusted in place by blockReflowSplit/blockReflowJoin as
// lines move, split or merge; the driver reads it back out by role once the
// block has finished.
type fixup struct {
	role  fixupRole
	value int
}

// reflowDead tombstones a line that has been relocated elsewhere: it holds
// no storage and must never be addressed again.
func reflowDead(l *Line) {
	*l = Line{flags: LineDead}
}

// blockReflowMove relocates line from, unchanged, onto the end of target,
// tombstoning from in place.
func blockReflowMove(target *Block, from *Line) *Line {
	added := target.grow(1)
	to := &added[0]
	*to = *from
	reflowDead(from)
	return to
}

// blockReflowJoin appends as much as possible of the wrapped line(s)
// following gb's line yy onto the end of target, which currently holds
// width columns of content on its last line. It consumes whole
// continuation lines while they still fit within sx columns; a line that
// only partly fits gives up as many leading cells as fit and keeps the
// rest. It stops after the first line that isn't itself marked wrapped.
// already is true when target's last line was itself just produced by a
// split and should be extended in place rather than by moving yy across.
func blockReflowJoin(target, gb *Block, sx, yy, width int, fixups []*fixup, already bool) {
	var gl *Line
	var to int
	if !already {
		to = target.size()
		gl = blockReflowMove(target, &gb.lines[yy])
	} else {
		to = target.size() - 1
		gl = &target.lines[to]
	}
	at := gl.cellUsed

	lines := 0
	wrapped := true
	var from *Line
	want := 0
	for {
		if yy+1+lines == gb.size() {
			break
		}
		line := yy + 1 + lines

		if gb.lines[line].flags&LineWrapped == 0 {
			wrapped = false
		}
		if gb.lines[line].cellUsed == 0 {
			if !wrapped {
				break
			}
			lines++
			continue
		}

		first := gb.lines[line].getCell(0)
		if width+int(first.Glyph.Width) > sx {
			break
		}
		width += int(first.Glyph.Width)
		target.setCell(to, at, first)
		at++

		from = &gb.lines[line]
		for want = 1; want < from.cellUsed; want++ {
			c := from.getCell(want)
			if width+int(c.Glyph.Width) > sx {
				break
			}
			width += int(c.Glyph.Width)
			target.setCell(to, at, c)
			at++
		}
		lines++

		if !wrapped || want != from.cellUsed || width == sx {
			break
		}
	}
	if lines == 0 {
		return
	}

	left := from.cellUsed - want
	if left != 0 {
		gb.moveCells(yy+lines, 0, want, left, ColorDefault)
		from.cellData = from.cellData[:left]
		from.cellUsed = left
		lines--
	} else if !wrapped {
		gl.flags &^= LineWrapped
	}

	for i := yy + 1; i < yy+1+lines; i++ {
		reflowDead(&gb.lines[i])
	}

	for _, fx := range fixups {
		if fx.value > to+lines {
			fx.value -= lines
		} else if fx.value > to {
			fx.value = to
		}
	}
}

// blockReflowSplit breaks gb's overlong line yy into several new lines on
// target, the first sx columns wide starting at column at, continuing
// until the source line is exhausted. If the source line was itself
// wrapped and the last new line has spare columns, it tries to join
// further source lines onto it.
func blockReflowSplit(target, gb *Block, sx, yy, at int, fixups []*fixup) {
	gl := &gb.lines[yy]
	used := gl.cellUsed
	flags := gl.flags

	var lineCount int
	if gl.flags&LineExtended == 0 {
		lineCount = 1 + (gl.cellUsed-1)/sx
	} else {
		lineCount = 2
		w := 0
		for i := at; i < used; i++ {
			c := gl.getCell(i)
			if w+int(c.Glyph.Width) > sx {
				lineCount++
				w = 0
			}
			w += int(c.Glyph.Width)
		}
	}

	oldSize := target.size()
	target.grow(lineCount)
	line := oldSize + 1

	width := 0
	xx := 0
	for i := at; i < used; i++ {
		c := gl.getCell(i)
		if width+int(c.Glyph.Width) > sx {
			target.lines[line].flags |= LineWrapped
			line++
			width = 0
			xx = 0
		}
		width += int(c.Glyph.Width)
		target.setCell(line, xx, c)
		xx++
	}
	if flags&LineWrapped != 0 {
		target.lines[line].flags |= LineWrapped
	}

	gl.cellData = gl.cellData[:at]
	gl.cellUsed = at
	gl.flags |= LineWrapped
	target.lines[oldSize] = *gl
	reflowDead(gl)

	for _, fx := range fixups {
		if yy <= fx.value {
			fx.value += lineCount - 1
		}
	}

	if width < sx && flags&LineWrapped != 0 {
		blockReflowJoin(target, gb, sx, yy, width, fixups, true)
	}
}

// blockReflow rewraps every live line of gb to column width sx, returning a
// freshly built block holding the result. Lines that already fit unchanged
// are moved across as-is; overlong lines are split; lines wrapped into
// their successor are rejoined as far as the new width allows.
func blockReflow(gb *Block, sx int, fixups []*fixup) *Block {
	target := newBlock(sx)

	for yy := 0; yy < gb.size(); yy++ {
		gl := &gb.lines[yy]
		if gl.flags&LineDead != 0 {
			continue
		}

		first := 0
		at := 0
		width := 0
		if gl.flags&LineExtended == 0 {
			first = 1
			width = gl.cellUsed
			if width > sx {
				at = sx
			} else {
				at = width
			}
		} else {
			for i := 0; i < gl.cellUsed; i++ {
				c := gl.getCell(i)
				if i == 0 {
					first = int(c.Glyph.Width)
				}
				if at == 0 && width+int(c.Glyph.Width) > sx {
					at = i
				}
				width += int(c.Glyph.Width)
			}
		}

		if width == sx || first > sx {
			blockReflowMove(target, gl)
			continue
		}

		if width > sx {
			blockReflowSplit(target, gb, sx, yy, at, fixups)
			continue
		}

		if gl.flags&LineWrapped != 0 {
			blockReflowJoin(target, gb, sx, yy, width, fixups, false)
		} else {
			blockReflowMove(target, gl)
		}
	}

	return target
}

// applyHsizeDiff folds a net change in total history-line count into hsize,
// padding the tail block with blank lines if the change would otherwise
// drive hsize negative (the screen's live rows must always stay addressable).
func (g *Grid) applyHsizeDiff(diff int) {
	if diff < 0 && -diff > g.hsize {
		pad := -diff - g.hsize
		g.hsize = 0
		if len(g.blocks) > 0 {
			last := g.blocks[len(g.blocks)-1]
			last.grow(pad)
			g.hallocated += pad
		}
	} else {
		g.hsize += diff
	}
}

// reflowComplete finishes any block left pending by a prior Reflow call
// (one whose needReflow flag is set because it lay far enough up in the
// history to defer). It does not track cursor or scroll position;
// only Reflow itself, called with the whole grid in view, does that; this
// trampoline exists purely so that addressing a deferred block forces it
// up to date first.
func (g *Grid) reflowComplete() {
	g.reflowing = true

	hsizeDiff := 0
	for _, b := range g.blocks {
		if !b.needReflow {
			continue
		}

		newB := blockReflow(b, b.sx, nil)
		hsizeDiff += newB.size() - b.size()
		g.hallocated += newB.size() - b.size()
		b.lines = newB.lines
		b.needReflow = false
	}

	g.applyHsizeDiff(hsizeDiff)
	g.reflowing = false
	g.cache = blockCache{}
}

// Reflow rewraps every line in the grid to column width sx, preserving
// wrapped continuations, and adjusts *cursorRow (the cursor's row within
// the visible screen, counted from its top row 0) so it continues to
// address the same logical line afterward. Scrollback viewport offset
// (HScrolled) is fixed up the same way internally.
//
// Blocks with more than one screenful of rewrapped rows below them (older
// history well above the visible screen) are left marked needReflow
// rather than rewrapped eagerly; they catch up lazily the next
// time a row inside them is addressed (see getLineData), so resizing a
// grid with a very long history stays cheap.
func (g *Grid) Reflow(sx int, cursorRow *int) {
	total := g.hsize + g.sy
	cy := g.sy - 1 - *cursorRow
	revHscrolled := total - g.hscrolled

	offset := 0
	reflowOffset := 0
	hsizeDiff := 0
	g.reflowing = true

	cyFixed := false
	hscrolledFixed := false
	cyFixup := &fixup{role: fixupCursor}
	hscrolledFixup := &fixup{role: fixupScroll}

	for i := len(g.blocks) - 1; i >= 0; i-- {
		gb := g.blocks[i]

		if reflowOffset > g.sy {
			gb.needReflow = true
			gb.sx = sx
			continue
		}

		var fixups []*fixup
		if !hscrolledFixed && revHscrolled >= offset && revHscrolled < offset+gb.size() {
			hscrolledFixup.value = gb.size() - 1 - (revHscrolled - offset)
			fixups = append(fixups, hscrolledFixup)
		}
		if !cyFixed && offset <= cy && cy < offset+gb.size() {
			cyFixup.value = gb.size() - 1 - (cy - offset)
			fixups = append(fixups, cyFixup)
		}

		newGb := blockReflow(gb, sx, fixups)

		for _, fx := range fixups {
			switch fx.role {
			case fixupCursor:
				cy = reflowOffset + (newGb.size() - 1 - fx.value)
				cyFixed = true
			case fixupScroll:
				g.hscrolled = total - (reflowOffset + (newGb.size() - 1 - fx.value))
				hscrolledFixed = true
			}
		}

		oldSize := gb.size()
		offset += oldSize
		reflowOffset += newGb.size()
		hsizeDiff += newGb.size() - oldSize
		g.hallocated += newGb.size() - oldSize

		gb.lines = newGb.lines
		gb.sx = sx
		gb.needReflow = false
	}

	g.applyHsizeDiff(hsizeDiff)
	if g.hscrolled > g.hsize {
		g.hscrolled = g.hsize
	}

	if cy >= g.sy {
		*cursorRow = 0
	} else {
		*cursorRow = g.sy - 1 - cy
	}

	g.sx = sx
	g.reflowing = false
	g.cache = blockCache{}
}
