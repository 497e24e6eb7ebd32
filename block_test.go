package gridbuf

import "testing"

func TestBlockGrowAndSize(t *testing.T) {
	b := newBlock(80)
	if b.size() != 0 {
		t.Fatalf("new block size = %d, want 0", b.size())
	}

	b.grow(3)
	if b.size() != 3 {
		t.Errorf("size() after grow(3) = %d, want 3", b.size())
	}
}

func TestBlockSetCellAndEmptyLine(t *testing.T) {
	b := newBlock(80)
	b.grow(1)

	c := Cell{Fg: ColorIndexed(2), Bg: ColorDefault, Glyph: NewGlyph('y')}
	b.setCell(0, 3, c)

	if got := b.lines[0].getCell(3); !CellsEqual(got, c) {
		t.Errorf("getCell(3) = %+v, want %+v", got, c)
	}

	b.emptyLine(0, ColorDefault)
	if b.lines[0].CellUsed() != 0 {
		t.Errorf("CellUsed() after emptyLine = %d, want 0", b.lines[0].CellUsed())
	}
}

func TestBlockCheckRow(t *testing.T) {
	b := newBlock(80)
	b.grow(2)

	if !b.checkRow(0) || !b.checkRow(1) {
		t.Errorf("checkRow should accept in-range rows")
	}
	if b.checkRow(-1) || b.checkRow(2) {
		t.Errorf("checkRow should reject out-of-range rows")
	}
}

func TestBlockFreeLines(t *testing.T) {
	b := newBlock(80)
	b.grow(2)
	b.setCell(0, 0, Cell{Fg: ColorDefault, Bg: ColorDefault, Glyph: NewGlyph('a')})
	b.setCell(1, 0, Cell{Fg: ColorDefault, Bg: ColorDefault, Glyph: NewGlyph('b')})

	b.freeLines(0, 2)
	for i := 0; i < 2; i++ {
		if b.lines[i].cellData != nil {
			t.Errorf("line %d cellData = %v after freeLines, want nil", i, b.lines[i].cellData)
		}
	}
}
