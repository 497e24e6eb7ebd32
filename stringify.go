package gridbuf

import "strconv"

// fgParams returns the SGR parameters that select c's foreground color.
func fgParams(c Cell) []int {
	switch {
	case c.Fg.Is256():
		return []int{38, 5, int(c.Fg.Index())}
	case c.Fg.IsRGB():
		r, g, b := c.Fg.RGB()
		return []int{38, 2, int(r), int(g), int(b)}
	default:
		switch c.Fg {
		case 0, 1, 2, 3, 4, 5, 6, 7:
			return []int{int(c.Fg) + 30}
		case ColorDefault:
			return []int{39}
		case 90, 91, 92, 93, 94, 95, 96, 97:
			return []int{int(c.Fg)}
		}
	}
	return nil
}

// bgParams returns the SGR parameters that select c's background color.
func bgParams(c Cell) []int {
	switch {
	case c.Bg.Is256():
		return []int{48, 5, int(c.Bg.Index())}
	case c.Bg.IsRGB():
		r, g, b := c.Bg.RGB()
		return []int{48, 2, int(r), int(g), int(b)}
	default:
		switch c.Bg {
		case 0, 1, 2, 3, 4, 5, 6, 7:
			return []int{int(c.Bg) + 40}
		case ColorDefault:
			return []int{49}
		case 100, 101, 102, 103, 104, 105, 106, 107:
			return []int{int(c.Bg) - 10}
		}
	}
	return nil
}

func sameParams(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func appendSGR(buf []byte, params []int, escapeC0 bool) []byte {
	if escapeC0 {
		buf = append(buf, '\\', '0', '3', '3', '[')
	} else {
		buf = append(buf, 0x1b, '[')
	}
	for i, p := range params {
		buf = strconv.AppendInt(buf, int64(p), 10)
		if i+1 < len(params) {
			buf = append(buf, ';')
		}
	}
	buf = append(buf, 'm')
	return buf
}

// cellCode returns the escape sequence needed to move terminal state from
// last to cur: a reset plus newly-set attribute codes when any attribute
// was cleared, fresh codes for any newly-set attribute, fresh color
// parameters when either color changed, and a shift-out/shift-in pair when
// the alternate character set was entered or left.
func cellCode(last, cur Cell, escapeC0 bool) []byte {
	var buf []byte
	attr, lastAttr := cur.Attr, last.Attr

	var codes []int
	reset := false
	for _, a := range attrTable {
		if attr&a.mask == 0 && lastAttr&a.mask != 0 {
			reset = true
			lastAttr &= AttrCharset
			break
		}
	}
	if reset {
		codes = append(codes, 0)
	}
	for _, a := range attrTable {
		if attr&a.mask != 0 && lastAttr&a.mask == 0 {
			codes = append(codes, a.code)
		}
	}
	if len(codes) > 0 {
		buf = appendSGR(buf, codes, escapeC0)
	}

	newFg, oldFg := fgParams(cur), fgParams(last)
	if !sameParams(newFg, oldFg) || (len(codes) > 0 && codes[0] == 0) {
		buf = appendSGR(buf, newFg, escapeC0)
	}

	newBg, oldBg := bgParams(cur), bgParams(last)
	if !sameParams(newBg, oldBg) || (len(codes) > 0 && codes[0] == 0) {
		buf = appendSGR(buf, newBg, escapeC0)
	}

	if cur.Attr&AttrCharset != 0 && last.Attr&AttrCharset == 0 {
		if escapeC0 {
			buf = append(buf, '\\', '0', '1', '6')
		} else {
			buf = append(buf, 0x0e)
		}
	}
	if cur.Attr&AttrCharset == 0 && last.Attr&AttrCharset != 0 {
		if escapeC0 {
			buf = append(buf, '\\', '0', '1', '7')
		} else {
			buf = append(buf, 0x0f)
		}
	}

	return buf
}

// StringCells renders nx cells of row py starting at column px as a plain
// or ANSI-annotated string.
//
// last, if non-nil, carries the terminal state the caller last emitted
// (typically DefaultCell on the first call of a render pass); it is
// updated in place as cells are visited so a sequence of calls across
// many rows emits only the escape codes needed to move between them,
// rather than a full SGR reset on every cell. withCodes controls whether
// escape codes are emitted at all; escapeC0 controls whether control
// bytes are written literally or as their backslash-escaped source form
// (useful for logging); trim strips trailing spaces from the result.
func (g *Grid) StringCells(px, py, nx int, last *Cell, withCodes, escapeC0, trim bool) string {
	if last != nil && *last == (Cell{}) {
		*last = DefaultCell
	}

	var buf []byte
	line := g.PeekLine(py)

	for xx := px; xx < px+nx; xx++ {
		if line == nil || xx >= line.CellSize() {
			break
		}
		cell := g.GetCell(py, xx)
		if cell.HasFlag(CellFlagPadding) {
			continue
		}

		if withCodes {
			buf = append(buf, cellCode(*last, cell, escapeC0)...)
			*last = cell
		}

		data := cell.Glyph.Bytes()
		if escapeC0 && len(data) == 1 && data[0] == '\\' {
			buf = append(buf, '\\', '\\')
		} else {
			buf = append(buf, data...)
		}
	}

	if trim {
		for len(buf) > 0 && buf[len(buf)-1] == ' ' {
			buf = buf[:len(buf)-1]
		}
	}

	return string(buf)
}

// Equal reports whether g and other have the same dimensions and identical
// visible-screen content, cell for cell. Each pair of rows must also have
// the same allocated cell count (CellSize), so rows that read the same but
// were allocated to different lengths compare unequal. History is not
// compared.
func (g *Grid) Equal(other *Grid) bool {
	if g.sx != other.sx || g.sy != other.sy {
		return false
	}

	for yy := 0; yy < g.sy; yy++ {
		row := g.hsize + yy
		orow := other.hsize + yy

		gl := g.PeekLine(row)
		ol := other.PeekLine(orow)
		if gl == nil || ol == nil {
			if gl != ol {
				return false
			}
			continue
		}
		if gl.CellSize() != ol.CellSize() {
			return false
		}
		for xx := 0; xx < gl.CellSize(); xx++ {
			if !CellsEqual(g.GetCell(row, xx), other.GetCell(orow, xx)) {
				return false
			}
		}
	}

	return true
}
