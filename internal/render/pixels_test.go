package render

import (
	"image/color"
	"testing"

	"github.com/twhiting/tgol/internal/life"
)

func TestCellColor(t *testing.T) {
	cases := []struct {
		name string
		cell life.Cell
		want color.RGBA
	}{
		{"live", life.Cell{Alive: true, Heat: 255}, color.RGBA{R: 50, G: 0, B: 0xff, A: 0xff}},
		{"cold dead", life.Cell{}, color.RGBA{}},
		{"warm dead", life.Cell{Heat: 200}, color.RGBA{R: 100, G: 0, B: 170, A: 170}},
		{"faint dead", life.Cell{Heat: 20}, color.RGBA{R: 0, G: 0, B: 0, A: 0}},
	}
	for _, c := range cases {
		if got := CellColor(c.cell); got != c.want {
			t.Errorf("%s: CellColor = %v, expected %v", c.name, got, c.want)
		}
	}
}

func TestFillRGBA(t *testing.T) {
	cells := []life.Cell{
		{Alive: true, Heat: 255},
		{},
		{Heat: 130},
	}
	buf := make([]byte, 4*len(cells))
	FillRGBA(buf, cells)

	want := []byte{
		50, 0, 0xff, 0xff,
		0, 0, 0, 0,
		30, 0, 100, 100,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, expected %d", i, buf[i], want[i])
		}
	}
}
