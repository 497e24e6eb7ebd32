package gridbuf

import "testing"

func TestScrollHistoryPushesTopLine(t *testing.T) {
	g := NewGrid(10, 5, 1000)
	c := Cell{Fg: ColorIndexed(1), Bg: ColorDefault, Glyph: NewGlyph('a')}
	g.SetCell(0, 0, c)

	g.ScrollHistory(ColorDefault)

	if g.HSize() != 1 {
		t.Fatalf("HSize() = %d after ScrollHistory, want 1", g.HSize())
	}
	if g.HScrolled() != 1 {
		t.Errorf("HScrolled() = %d after ScrollHistory, want 1", g.HScrolled())
	}
	if got := g.GetCell(0, 0); !CellsEqual(got, c) {
		t.Errorf("history line 0 = %+v, want the pushed content %+v", got, c)
	}
}

func TestClearHistory(t *testing.T) {
	g := NewGrid(10, 5, 1000)
	for i := 0; i < 3; i++ {
		g.ScrollHistory(ColorDefault)
	}
	if g.HSize() != 3 {
		t.Fatalf("HSize() = %d before ClearHistory, want 3", g.HSize())
	}

	g.ClearHistory()
	if g.HSize() != 0 || g.HScrolled() != 0 {
		t.Errorf("HSize/HScrolled after ClearHistory = %d/%d, want 0/0", g.HSize(), g.HScrolled())
	}
}

func TestCollectHistoryEvictsOldestTenth(t *testing.T) {
	g := NewGrid(10, 5, 20)
	for i := 0; i < 20; i++ {
		g.ScrollHistory(ColorDefault)
	}
	if g.HSize() != 20 {
		t.Fatalf("HSize() = %d before CollectHistory, want 20", g.HSize())
	}

	g.CollectHistory()

	if g.HSize() != 18 {
		t.Errorf("HSize() = %d after CollectHistory, want 18 (evict hlimit/10=2)", g.HSize())
	}
}

func TestCollectHistoryNoopsBelowLimit(t *testing.T) {
	g := NewGrid(10, 5, 20)
	for i := 0; i < 5; i++ {
		g.ScrollHistory(ColorDefault)
	}

	g.CollectHistory()
	if g.HSize() != 5 {
		t.Errorf("HSize() = %d after CollectHistory below limit, want unchanged 5", g.HSize())
	}
}

func TestScrollHistoryRegion(t *testing.T) {
	g := NewGrid(10, 5, 1000)
	c := Cell{Fg: ColorIndexed(2), Bg: ColorDefault, Glyph: NewGlyph('u')}
	g.SetCell(0, 0, c)

	g.ScrollHistoryRegion(0, 2, ColorDefault)

	if g.HSize() != 1 {
		t.Fatalf("HSize() = %d after ScrollHistoryRegion, want 1", g.HSize())
	}
	if got := g.GetCell(0, 0); !CellsEqual(got, c) {
		t.Errorf("history line 0 = %+v, want the region's old top line %+v", got, c)
	}
}
