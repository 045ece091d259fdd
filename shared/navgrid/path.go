package navgrid

// Path is an ordered walk from start to goal, both inclusive.
type Path []*Waypoint

func (p Path) Coords() []Coord {
	out := make([]Coord, len(p))
	for i, w := range p {
		out[i] = w.GridPosition()
	}
	return out
}

// Index returns the position of w in p, or -1.
func (p Path) Index(w *Waypoint) int {
	for i, step := range p {
		if step == w {
			return i
		}
	}
	return -1
}

func (p Path) Contains(w *Waypoint) bool {
	return p.Index(w) >= 0
}

// TruncateAt drops w and everything after it. A nil or absent w leaves the
// path as is.
func (p Path) TruncateAt(w *Waypoint) Path {
	if w == nil {
		return p
	}
	if i := p.Index(w); i >= 0 {
		return p[:i]
	}
	return p
}

func (p Path) Last() *Waypoint {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}
