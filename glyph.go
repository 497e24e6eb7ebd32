package gridbuf

import "unicode/utf8"

// GlyphSize is the maximum number of bytes a Glyph can hold. It must be at
// least 9 to fit the longest UTF-8 encoded grapheme a cell is expected to
// carry (a 4-byte base rune plus room for combining marks truncated to fit).
const GlyphSize = 9

// Glyph is a single grid cell's character payload: up to GlyphSize raw
// bytes, how many of them are used, and the display width those bytes
// occupy on screen (0, 1 or 2 columns).
//
// Decoding raw terminal input into a Glyph and computing its width are
// treated as an external collaborator by this package (see width.go and
// DecodeGlyph below); the grid itself never interprets bytes, it only
// stores and moves whatever Glyph it is given.
type Glyph struct {
	Data  [GlyphSize]byte
	Size  uint8
	Width uint8
}

// spaceGlyph is the glyph used by every default cell.
var spaceGlyph = Glyph{Data: [GlyphSize]byte{' '}, Size: 1, Width: 1}

// Bytes returns the glyph's used bytes.
func (g Glyph) Bytes() []byte {
	return g.Data[:g.Size]
}

// Equal reports whether two glyphs hold the same bytes, size and width.
func (g Glyph) Equal(o Glyph) bool {
	if g.Size != o.Size || g.Width != o.Width {
		return false
	}
	return g.Data == o.Data
}

// NewGlyph packs a single rune's UTF-8 encoding (at most 4 bytes, so it
// always fits in GlyphSize) into a Glyph, with its display width taken
// from runeWidth.
func NewGlyph(r rune) Glyph {
	var g Glyph
	n := utf8.EncodeRune(g.Data[:], r)
	g.Size = uint8(n)
	g.Width = uint8(runeWidth(r))
	return g
}

// DecodeGlyph decodes the first rune from s (stdlib UTF-8 decoding, since
// this package treats decoding as a pluggable external concern) and
// returns the Glyph plus the number of bytes consumed. Invalid encodings
// decode to utf8.RuneError with a width of 1, matching how a terminal
// driver would typically render a replacement character.
func DecodeGlyph(s string) (Glyph, int) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n <= 1 {
		return NewGlyph(utf8.RuneError), 1
	}
	return NewGlyph(r), n
}
