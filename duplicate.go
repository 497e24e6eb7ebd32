package gridbuf

// DuplicateLines deep-copies ny lines from src (starting at row sy) into
// dst (starting at row dy). ny is clamped to fit within whichever grid's
// addressable range is smaller. Destination lines are freed before being
// overwritten; source and destination never end up sharing backing
// arrays.
func DuplicateLines(dst *Grid, dy int, src *Grid, sy, ny int) {
	if dy+ny > dst.hsize+dst.sy {
		ny = dst.hsize + dst.sy - dy
	}
	if sy+ny > src.hsize+src.sy {
		ny = src.hsize + src.sy - sy
	}
	if ny <= 0 {
		return
	}

	dstCache := blockCache{}

	for i := 0; i < ny; i++ {
		srcLine := src.getLineData(sy + i)
		db, dby := dst.getBlock(dy+i, &dstCache)

		dstLine := &db.lines[dby]
		dstLine.free()
		dstLine.flags = srcLine.flags
		dstLine.cellUsed = srcLine.cellUsed

		if len(srcLine.cellData) != 0 {
			dstLine.cellData = make([]cellEntry, len(srcLine.cellData))
			copy(dstLine.cellData, srcLine.cellData)
		}
		if len(srcLine.extData) != 0 {
			dstLine.extData = make([]Cell, len(srcLine.extData))
			copy(dstLine.extData, srcLine.extData)
		}
	}
}
