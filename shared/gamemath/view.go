package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// View maps world positions to screen pixels for a square grid whose cell
// centres sit on multiples of CellSize. World +Y points up on screen.
type View struct {
	Scale    float64 // Screen pixels per world unit
	CellSize float64
	Cells    int     // Cells per side
	Margin   float64 // Screen pixels around the grid
}

func (v View) extent() float64 {
	return float64(v.Cells) * v.CellSize
}

// ToScreen returns the pixel position of p.
func (v View) ToScreen(p dmath.Vec2) (x, y float64) {
	half := v.CellSize / 2
	x = v.Margin + (p.X+half)*v.Scale
	y = v.Margin + (v.extent()-(p.Y+half))*v.Scale
	return x, y
}

// ToWorld is the inverse of ToScreen.
func (v View) ToWorld(x, y float64) dmath.Vec2 {
	half := v.CellSize / 2
	return dmath.Vec2{
		X: (x-v.Margin)/v.Scale - half,
		Y: v.extent() - (y-v.Margin)/v.Scale - half,
	}
}

// CellRect returns the top-left corner and side, in pixels, of the cell
// centred on p.
func (v View) CellRect(p dmath.Vec2) (x, y, side float64) {
	cx, cy := v.ToScreen(p)
	side = v.CellSize * v.Scale
	return cx - side/2, cy - side/2, side
}

// Size is the screen size needed to show the whole grid.
func (v View) Size() (w, h int) {
	side := int(v.extent()*v.Scale + 2*v.Margin)
	return side, side
}
