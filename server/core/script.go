package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/tilechase/shared/navgrid"
)

var ErrBadMove = errors.New("bad move")

// ParseMoves reads a move script of the form "3,0;5,5": one grid cell per
// move, separated by semicolons. Blank entries are ignored.
func ParseMoves(script string) ([]navgrid.Coord, error) {
	var moves []navgrid.Coord
	for _, raw := range strings.Split(script, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		xs, ys, ok := strings.Cut(raw, ",")
		if !ok {
			return nil, fmt.Errorf("%w %q: want x,y", ErrBadMove, raw)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrBadMove, raw, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrBadMove, raw, err)
		}
		moves = append(moves, navgrid.Coord{X: x, Y: y})
	}
	return moves, nil
}
