//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the status readout over the board.
type HUD struct {
	face font.Face
}

// NewHUD constructs a HUD using the stock bitmap face.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// Draw paints the status line in the top-left corner, with a one-pixel
// shadow so it stays readable over live cells.
func (h *HUD) Draw(dst *ebiten.Image, s Status) {
	line := s.Line()
	text.Draw(dst, line, h.face, 7, 14, color.Black)
	text.Draw(dst, line, h.face, 6, 13, color.White)
}
