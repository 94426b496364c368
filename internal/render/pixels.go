package render

import (
	"image/color"

	"github.com/twhiting/tgol/internal/life"
)

// CellColor maps a cell to its display color: live cells are a fixed
// blue-violet, dead cells fade through red-purple as their heat decays.
func CellColor(c life.Cell) color.RGBA {
	if c.Alive {
		return color.RGBA{R: 50, G: 0, B: 0xff, A: 0xff}
	}
	return color.RGBA{
		R: satSub(c.Heat, 100),
		G: 0,
		B: satSub(c.Heat, 30),
		A: satSub(c.Heat, 30),
	}
}

// FillRGBA converts cell data into RGBA pixels in buf, one pixel per cell.
// buf must hold 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []life.Cell) {
	for i, c := range cells {
		col := CellColor(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func satSub(v, d uint8) uint8 {
	if v < d {
		return 0
	}
	return v - d
}
