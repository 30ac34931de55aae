package render

import (
	"image"

	"landscapes/internal/core"
)

// CellRect is the pixel rectangle covered by cell (x, y).
func CellRect(x, y, cellW, cellH int) image.Rectangle {
	return image.Rect(x*cellW, y*cellH, (x+1)*cellW, (y+1)*cellH)
}

// NeighbourhoodRect is the pixel rectangle covering the 3x3 block around the
// cursor cell, clipped to the grid. It reports false when there is no cursor.
func NeighbourhoodRect(size core.Size, cursor, cellW, cellH int) (image.Rectangle, bool) {
	if size.W <= 0 || cursor < 0 || cursor >= size.Area() {
		return image.Rectangle{}, false
	}
	x, y := cursor%size.W, cursor/size.W
	r := CellRect(x-1, y-1, cellW, cellH).Union(CellRect(x+1, y+1, cellW, cellH))
	return r.Intersect(image.Rect(0, 0, size.W*cellW, size.H*cellH)), true
}
