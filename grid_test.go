package gridbuf

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid(80, 24, 1000)
	if g.SX() != 80 || g.SY() != 24 {
		t.Fatalf("NewGrid(80, 24, ...) = SX %d SY %d, want 80 24", g.SX(), g.SY())
	}
	if g.HSize() != 0 || g.HScrolled() != 0 {
		t.Errorf("fresh grid should have no history")
	}
	if g.hallocated != 24 {
		t.Errorf("hallocated = %d, want 24", g.hallocated)
	}
}

func TestGridSetAndGetCell(t *testing.T) {
	g := NewGrid(80, 24, 1000)
	c := Cell{Fg: ColorIndexed(3), Bg: ColorDefault, Glyph: NewGlyph('z')}
	g.SetCell(10, 5, c)

	if got := g.GetCell(10, 5); !CellsEqual(got, c) {
		t.Errorf("GetCell(10, 5) = %+v, want %+v", got, c)
	}
	if got := g.GetCell(11, 5); !CellsEqual(got, DefaultCell) {
		t.Errorf("untouched cell should read back as default, got %+v", got)
	}
}

func TestGridCheckYRejectsOutOfRange(t *testing.T) {
	g := NewGrid(80, 24, 1000)
	if got := g.GetCell(-1, 0); !CellsEqual(got, DefaultCell) {
		t.Errorf("GetCell with negative row = %+v, want DefaultCell", got)
	}
	if got := g.GetCell(24, 0); !CellsEqual(got, DefaultCell) {
		t.Errorf("GetCell beyond sy = %+v, want DefaultCell", got)
	}
}

func TestGridGetBlockSpansMultipleBlocks(t *testing.T) {
	g := NewGrid(80, 24, 1000)
	g.reallocLinedata(2500) // force several blocks at maxBlockLines=1024

	if len(g.blocks) < 3 {
		t.Fatalf("expected at least 3 blocks for 2500 lines, got %d", len(g.blocks))
	}

	b, by := g.getBlock(2400, nil)
	if b == nil {
		t.Fatalf("getBlock(2400) returned nil")
	}
	if by < 0 || by >= b.size() {
		t.Errorf("block-relative offset %d out of range for block size %d", by, b.size())
	}
}

func TestGridSetCells(t *testing.T) {
	g := NewGrid(80, 24, 1000)
	template := Cell{Fg: ColorIndexed(1), Bg: ColorDefault}
	g.SetCells(0, 0, template, []byte("hi"))

	h := g.GetCell(0, 0)
	if h.Glyph.Data[0] != 'h' || h.Fg != template.Fg {
		t.Errorf("GetCell(0,0) = %+v, want glyph 'h' with fg %v", h, template.Fg)
	}
	i := g.GetCell(0, 1)
	if i.Glyph.Data[0] != 'i' {
		t.Errorf("GetCell(0,1) glyph = %q, want 'i'", i.Glyph.Data[0])
	}
}
