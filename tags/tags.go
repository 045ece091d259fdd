package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Tile     = donburi.NewTag().SetName("Tile")
	Obstacle = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for spatial queries
const (
	ResolvTile  = "tile"
	ResolvProbe = "probe"
)
