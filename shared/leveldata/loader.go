package leveldata

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/lafriks/go-tiled"
)

// LayerNames selects the TMX layers and object group to read.
type LayerNames struct {
	Waypoints string
	Obstacles string
	Spawns    string
}

// LoadLayout parses a TMX file. Every non-empty tile on the waypoint layer
// becomes a traversable cell; the obstacle layer is optional. It takes an
// fs.FS so callers can pass embed.FS (client) or os.DirFS (headless runner).
func LoadLayout(fsys fs.FS, tmxPath string, names LayerNames) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	var foundWaypoints bool
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case names.Waypoints:
			foundWaypoints = true
			layout.Waypoints = paintedCells(levelMap, layer)
		case names.Obstacles:
			layout.Obstacles = paintedCells(levelMap, layer)
		}
	}
	if !foundWaypoints {
		return nil, fmt.Errorf("load TMX %s: %w (%q)", tmxPath, ErrNoWaypointLayer, names.Waypoints)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != names.Spawns {
			continue
		}
		for _, o := range og.Objects {
			layout.Spawns = append(layout.Spawns, Spawn{
				Name: o.Name,
				Cell: navgrid.Coord{
					X: int(math.Floor(o.X / float64(levelMap.TileWidth))),
					Y: int(math.Floor(o.Y / float64(levelMap.TileHeight))),
				},
			})
		}
	}

	return layout, nil
}

func paintedCells(levelMap *tiled.Map, layer *tiled.Layer) []navgrid.Coord {
	var cells []navgrid.Coord
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
				continue
			}
			cells = append(cells, navgrid.Coord{X: x, Y: y})
		}
	}
	return cells
}
