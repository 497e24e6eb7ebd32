package gridbuf

import "testing"

func TestClearLines(t *testing.T) {
	g := NewGrid(10, 5, 100)
	g.SetCell(1, 0, Cell{Fg: ColorIndexed(1), Bg: ColorDefault, Glyph: NewGlyph('a')})

	g.ClearLines(1, 1, ColorIndexed(2))

	if got := g.GetCell(1, 0); got.Bg != ColorIndexed(2) {
		t.Errorf("GetCell(1,0).Bg = %v after ClearLines, want background applied", got.Bg)
	}
}

func TestClearRectangle(t *testing.T) {
	g := NewGrid(10, 5, 100)
	for x := 0; x < 10; x++ {
		g.SetCell(0, x, Cell{Fg: ColorDefault, Bg: ColorDefault, Glyph: NewGlyph('x')})
	}

	g.Clear(2, 0, 3, 1, ColorDefault)

	if got := g.GetCell(0, 2); !CellsEqual(got, DefaultCell) {
		t.Errorf("GetCell(0,2) = %+v after Clear, want DefaultCell", got)
	}
	if got := g.GetCell(0, 0); CellsEqual(got, DefaultCell) {
		t.Errorf("GetCell(0,0) should be untouched by a clear starting at column 2")
	}
}

func TestMoveLines(t *testing.T) {
	g := NewGrid(10, 5, 100)
	c := Cell{Fg: ColorIndexed(7), Bg: ColorDefault, Glyph: NewGlyph('m')}
	g.SetCell(0, 0, c)

	g.MoveLines(2, 0, 1, ColorDefault)

	if got := g.GetCell(2, 0); !CellsEqual(got, c) {
		t.Errorf("GetCell(2,0) = %+v after MoveLines, want %+v", got, c)
	}
	if got := g.GetCell(0, 0); !CellsEqual(got, DefaultCell) {
		t.Errorf("GetCell(0,0) = %+v after moving away, want DefaultCell", got)
	}
}

func TestMoveCellsWipesSource(t *testing.T) {
	g := NewGrid(10, 5, 100)
	c := Cell{Fg: ColorIndexed(9), Bg: ColorDefault, Glyph: NewGlyph('w')}
	g.SetCell(0, 0, c)

	g.MoveCells(5, 0, 0, 1, ColorDefault)

	if got := g.GetCell(0, 5); !CellsEqual(got, c) {
		t.Errorf("GetCell(0,5) = %+v after MoveCells, want %+v", got, c)
	}
	if got := g.GetCell(0, 0); !CellsEqual(got, DefaultCell) {
		t.Errorf("GetCell(0,0) = %+v after MoveCells away, want DefaultCell (wiped)", got)
	}
}
