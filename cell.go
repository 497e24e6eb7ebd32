package gridbuf

// CellFlags is a bitmask of per-cell state bits.
type CellFlags uint8

const (
	// CellFlagPadding marks the right half of a wide (2-column) character.
	CellFlagPadding CellFlags = 1 << iota
	// CellFlagExtended marks a compact entry whose real data lives in the
	// line's extended array instead of the entry's inline fields.
	CellFlagExtended
	// CellFlagFG256 marks the inline foreground as a flagged 256-color index.
	CellFlagFG256
	// CellFlagBG256 marks the inline background as a flagged 256-color index.
	CellFlagBG256
)

// Cell is the logical, fully expanded representation of one grid
// position: glyph, colors, attributes and flags. Reads always produce a
// Cell; storage internally prefers the much smaller compact cellEntry
// and only materializes a Cell on demand.
type Cell struct {
	Flags CellFlags
	Attr  Attr
	Fg    Color
	Bg    Color
	Glyph Glyph
}

// DefaultCell is the template used to initialize every new cell position.
// It must never be mutated.
var DefaultCell = Cell{
	Fg:    ColorDefault,
	Bg:    ColorDefault,
	Glyph: spaceGlyph,
}

// HasFlag reports whether flag is set.
func (c Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// CellsEqual reports whether a and b are pointwise identical: same
// colors, attributes, flags and glyph bytes/size/width.
func CellsEqual(a, b Cell) bool {
	if a.Fg != b.Fg || a.Bg != b.Bg {
		return false
	}
	if a.Attr != b.Attr || a.Flags != b.Flags {
		return false
	}
	return a.Glyph.Equal(b.Glyph)
}

// cellEntry is the compact, fixed-size in-memory representation of one
// cell. When CellFlagExtended is set in flags, offset indexes the owning
// line's extended array and the inline fields below are unused; otherwise
// the inline fields hold the complete cell (single-byte glyph, width 1,
// attr <= 0xff, no RGB color).
type cellEntry struct {
	flags  CellFlags
	offset uint32
	fg     uint8
	bg     uint8
	attr   uint16
	data   byte
}

// defaultEntry is the compact form of DefaultCell. It must never be
// mutated.
var defaultEntry = cellEntry{
	fg:   uint8(ColorDefault),
	bg:   uint8(ColorDefault),
	data: ' ',
}

// needExtended reports whether storing cell in entry requires the
// extended (out-of-line) representation: the entry is already extended,
// the attribute doesn't fit in 8 bits, the glyph isn't a single byte of
// width 1, or either color is true-color.
func needExtended(entry cellEntry, cell Cell) bool {
	if entry.flags&CellFlagExtended != 0 {
		return true
	}
	if cell.Attr > 0xff {
		return true
	}
	if cell.Glyph.Size != 1 || cell.Glyph.Width != 1 {
		return true
	}
	if cell.Fg.IsRGB() || cell.Bg.IsRGB() {
		return true
	}
	return false
}

// storeCell writes cell into entry using the compact inline
// representation, with b as the single glyph byte. Callers must have
// already established !needExtended(*entry, cell).
func storeCell(entry *cellEntry, cell Cell, b byte) {
	entry.flags = cell.Flags &^ (CellFlagFG256 | CellFlagBG256)

	entry.fg = cell.Fg.Index()
	if cell.Fg.Is256() {
		entry.flags |= CellFlagFG256
	}

	entry.bg = cell.Bg.Index()
	if cell.Bg.Is256() {
		entry.flags |= CellFlagBG256
	}

	entry.attr = uint16(cell.Attr)
	entry.data = b
}

// entryToCell materializes the logical Cell held by a non-extended entry.
func entryToCell(entry cellEntry) Cell {
	c := Cell{
		Flags: entry.flags &^ (CellFlagFG256 | CellFlagBG256),
		Attr:  Attr(entry.attr),
		Fg:    Color(entry.fg),
		Bg:    Color(entry.bg),
		Glyph: Glyph{Data: [GlyphSize]byte{entry.data}, Size: 1, Width: 1},
	}
	if entry.flags&CellFlagFG256 != 0 {
		c.Fg |= ColorFlag256
	}
	if entry.flags&CellFlagBG256 != 0 {
		c.Bg |= ColorFlag256
	}
	return c
}
