package archetypes

import (
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/tags"
	"github.com/yohamta/donburi"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Mover,
		components.State,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Mover,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs. It takes
// a bare world so the headless runner and tests can spawn without an ECS
// pipeline.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
