package gridbuf

import "testing"

func setASCII(b *Block, row int, s string) {
	for i := 0; i < len(s); i++ {
		b.setCell(row, i, Cell{Fg: ColorDefault, Bg: ColorDefault, Glyph: NewGlyph(rune(s[i]))})
	}
}

func lineText(l *Line) string {
	buf := make([]byte, l.CellUsed())
	for i := range buf {
		buf[i] = l.getCell(i).Glyph.Data[0]
	}
	return string(buf)
}

func TestBlockReflowJoinsWrappedLines(t *testing.T) {
	gb := newBlock(2)
	gb.grow(2)
	setASCII(gb, 0, "ab")
	gb.lines[0].SetWrapped(true)
	setASCII(gb, 1, "cd")

	target := blockReflow(gb, 4, nil)

	if target.size() != 1 {
		t.Fatalf("blockReflow joined size = %d, want 1", target.size())
	}
	line := &target.lines[0]
	if line.CellUsed() != 4 {
		t.Fatalf("joined line CellUsed() = %d, want 4", line.CellUsed())
	}
	if got := lineText(line); got != "abcd" {
		t.Errorf("joined line content = %q, want %q", got, "abcd")
	}
	if line.Wrapped() {
		t.Errorf("joined line should not be wrapped (consumed continuation wasn't)")
	}
}

func TestBlockReflowSplitsOverlongLine(t *testing.T) {
	gb := newBlock(4)
	gb.grow(1)
	setASCII(gb, 0, "abcd")

	target := blockReflow(gb, 2, nil)

	if target.size() != 2 {
		t.Fatalf("blockReflow split size = %d, want 2", target.size())
	}
	if !target.lines[0].Wrapped() {
		t.Errorf("first split line should be marked wrapped")
	}
	if got := lineText(&target.lines[0]); got != "ab" {
		t.Errorf("split line 0 = %q, want %q", got, "ab")
	}
	if got := lineText(&target.lines[1]); got != "cd" {
		t.Errorf("split line 1 = %q, want %q", got, "cd")
	}
}

func TestBlockReflowMovesUnchangedLines(t *testing.T) {
	gb := newBlock(10)
	gb.grow(1)
	setASCII(gb, 0, "hi")

	target := blockReflow(gb, 10, nil)

	if target.size() != 1 {
		t.Fatalf("blockReflow size = %d, want 1", target.size())
	}
	if got := lineText(&target.lines[0]); got != "hi" {
		t.Errorf("moved line content = %q, want %q", got, "hi")
	}
	if gb.lines[0].flags&LineDead == 0 {
		t.Errorf("source line should be tombstoned dead after the move")
	}
}

func TestGridReflowNarrowerKeepsCursorOnSameLine(t *testing.T) {
	g := NewGrid(4, 3, 100)
	setASCII(g.blocks[0], 0, "abcd")

	cursor := 2 // cursor on the last visible row, counted from the top
	g.Reflow(2, &cursor)

	if g.SX() != 2 {
		t.Fatalf("SX() = %d after Reflow, want 2", g.SX())
	}
	if cursor != 2 {
		t.Errorf("cursor = %d after Reflow, want 2 (still the last visible row)", cursor)
	}
	if g.HSize() == 0 {
		t.Errorf("expected the split overflow line to grow history, HSize() = %d", g.HSize())
	}
}
