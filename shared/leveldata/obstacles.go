package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/automoto/tilechase/shared/navgrid"
	"gopkg.in/yaml.v3"
)

// obstacleDocument is the authored obstacle file: a GridSize×GridSize matrix
// indexed grid[x][y].
type obstacleDocument struct {
	Grid [][]bool `yaml:"grid"`
}

// ParseObstacles decodes an obstacle file. The grid must be exactly
// navgrid.GridSize square.
func ParseObstacles(data []byte) (*navgrid.ObstacleMap, error) {
	var doc obstacleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode obstacles: %w", err)
	}
	if len(doc.Grid) != navgrid.GridSize {
		return nil, fmt.Errorf("%w: %d columns, want %d", ErrInvalidObstacleGrid, len(doc.Grid), navgrid.GridSize)
	}

	m := &navgrid.ObstacleMap{}
	for x, column := range doc.Grid {
		if len(column) != navgrid.GridSize {
			return nil, fmt.Errorf("%w: column %d has %d cells, want %d", ErrInvalidObstacleGrid, x, len(column), navgrid.GridSize)
		}
		for y, blocked := range column {
			if blocked {
				_ = m.Set(navgrid.Coord{X: x, Y: y}, true)
			}
		}
	}
	return m, nil
}

// MarshalObstacles encodes m in the authored format.
func MarshalObstacles(m *navgrid.ObstacleMap) ([]byte, error) {
	data, err := yaml.Marshal(obstacleDocument{Grid: m.Rows()})
	if err != nil {
		return nil, fmt.Errorf("encode obstacles: %w", err)
	}
	return data, nil
}

// LoadObstacles reads and decodes an obstacle file from fsys.
func LoadObstacles(fsys fs.FS, path string) (*navgrid.ObstacleMap, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read obstacles %s: %w", path, err)
	}
	m, err := ParseObstacles(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
