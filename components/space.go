package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the broadphase holding one object per tile.
var Space = donburi.NewComponentType[resolv.Space]()
