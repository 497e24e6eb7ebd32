// Package gridbuf is the backing store for a terminal pane: the visible
// screen plus its scrollback history, addressed as one continuous run of
// absolute rows.
//
// # Quick start
//
//	g := gridbuf.NewGrid(80, 24, 10000) // 80 cols, 24 rows, 10k history lines
//	g.SetCell(0, 0, gridbuf.Cell{
//		Fg:    gridbuf.ColorIndexed(1),
//		Glyph: gridbuf.NewGlyph('H'),
//	})
//	fmt.Println(g.StringCells(0, 0, g.SX(), nil, false, false, true))
//
// # Addressing
//
// Rows are numbered from the oldest history line at 0 up through
// [Grid.HSize]+[Grid.SY]-1, the bottom of the visible screen. [Grid.SetCell],
// [Grid.GetCell] and friends all take absolute row numbers; callers that
// think in viewport-relative terms add [Grid.HSize] (or
// [Grid.HSize]-[Grid.HScrolled] when a scrollback offset is in play) before
// calling in.
//
// # Storage layout
//
// A [Grid] is an ordered list of [Block]s, each holding up to 1024 [Line]s.
// Splitting storage into blocks keeps any single operation that must shift
// memory - growing a line, trimming history, reflowing to a new width -
// bounded to one block's worth of data rather than the whole scrollback.
//
// Within a line, cells are stored in a compact fixed-size form (colors,
// attributes and a single-byte glyph packed inline) and promoted to an
// out-of-line extended form only when they need more than that: a wide or
// multi-byte glyph, an attribute set past the compact form's range, or a
// true-color foreground/background. Most terminal output - plain ASCII
// text - never touches the extended path.
//
// # History
//
// [Grid.ScrollHistory] and [Grid.ScrollHistoryRegion] push lines out of the
// visible screen into history as the screen scrolls; [Grid.CollectHistory]
// evicts the oldest tenth of history once it reaches its configured limit;
// [Grid.ClearHistory] drops it all. None of these touch the visible screen's
// column width.
//
// # Reflow
//
// [Grid.Reflow] rewraps every line to a new column width in place,
// splitting lines that no longer fit and rejoining wrapped continuations
// that now do, while keeping a caller-supplied cursor row pointed at the
// same logical line. History more than a screenful above the visible screen
// is left marked for lazy reflow and only rewrapped the next time something addresses it.
//
// # Rendering
//
// [Grid.StringCells] renders a run of cells to a string, optionally
// interleaving the minimal ANSI SGR codes needed to move from one cell's
// style to the next - useful for reproducing a line's exact appearance
// without re-emitting a full style reset on every cell.
package gridbuf
