package render

import (
	"image/color"

	"github.com/automoto/tilechase/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	dmath "github.com/yohamta/donburi/features/math"
)

// fillCell fills the cell centred on p, shrunk by inset pixels on each side.
func fillCell(screen *ebiten.Image, view gamemath.View, p dmath.Vec2, inset float32, c color.Color) {
	x, y, side := view.CellRect(p)
	size := float32(side) - 2*inset
	if size <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x)+inset, float32(y)+inset, size, size, c, false)
}

// outline draws a one pixel rectangle outline.
func outline(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
