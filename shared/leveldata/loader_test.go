package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNames = LayerNames{Waypoints: "waypoints", Obstacles: "obstacles", Spawns: "spawns"}

const smallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="cells" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="cells.png" width="32" height="16"/>
 </tileset>
 <layer id="1" name="waypoints" width="3" height="2">
  <data encoding="csv">
1,0,1,
1,1,1
</data>
 </layer>
 <layer id="2" name="obstacles" width="3" height="2">
  <data encoding="csv">
0,0,0,
0,2,0
</data>
 </layer>
 <objectgroup id="3" name="spawns">
  <object id="1" name="player" x="8" y="8"/>
  <object id="2" name="enemy" x="40" y="24"/>
 </objectgroup>
</map>
`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"levels/small.tmx": {Data: []byte(smallTMX)}}

	layout, err := LoadLayout(fsys, "levels/small.tmx", testNames)
	require.NoError(t, err)

	assert.Equal(t, 3, layout.Width)
	assert.Equal(t, 2, layout.Height)
	assert.Equal(t, []navgrid.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, layout.Waypoints)
	assert.Equal(t, []navgrid.Coord{{X: 1, Y: 1}}, layout.Obstacles)
	assert.True(t, layout.ObstacleMap().Blocked(navgrid.Coord{X: 1, Y: 1}))

	player, ok := layout.Spawn("player")
	require.True(t, ok)
	assert.Equal(t, navgrid.Coord{X: 0, Y: 0}, player.Cell)
	enemy, ok := layout.Spawn("enemy")
	require.True(t, ok)
	assert.Equal(t, navgrid.Coord{X: 2, Y: 1}, enemy.Cell)

	_, ok = layout.Spawn("boss")
	assert.False(t, ok)
}

func TestLoadLayoutWithoutWaypointLayer(t *testing.T) {
	fsys := fstest.MapFS{"l.tmx": {Data: []byte(strings.ReplaceAll(smallTMX, `name="waypoints"`, `name="floor"`))}}
	_, err := LoadLayout(fsys, "l.tmx", testNames)
	assert.ErrorIs(t, err, ErrNoWaypointLayer)
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout(fstest.MapFS{}, "nope.tmx", testNames)
	assert.Error(t, err)
}
