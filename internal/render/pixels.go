// Package render turns landscape cells into pixels.
package render

import "image/color"

// Palette holds the colours used to draw a grid.
type Palette struct {
	On     color.Color
	Off    color.Color
	Cursor color.Color
}

// DefaultPalette draws live cells white on black with a yellow cursor.
func DefaultPalette() Palette {
	return Palette{
		On:     color.White,
		Off:    color.Black,
		Cursor: color.RGBA{R: 255, G: 220, B: 0, A: 255},
	}
}

// FillRGBA writes one RGBA pixel per cell into buf, which must hold at least
// 4*len(cells) bytes. The cell at index cursor is drawn in the cursor colour;
// a cursor outside cells highlights nothing.
func FillRGBA(buf []byte, cells []uint8, cursor int, p Palette) {
	fillBinaryRGBA(buf, cells, p.On, p.Off)
	if cursor >= 0 && cursor < len(cells) {
		setPixel(buf, cursor, p.Cursor)
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

func setPixel(buf []byte, i int, c color.Color) {
	r, g, b, a := c.RGBA()
	base := i * 4
	buf[base+0] = uint8(r >> 8)
	buf[base+1] = uint8(g >> 8)
	buf[base+2] = uint8(b >> 8)
	buf[base+3] = uint8(a >> 8)
}
