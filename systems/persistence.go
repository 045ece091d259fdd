package systems

import (
	"fmt"

	"github.com/automoto/tilechase/shared/leveldata"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// ItemStore is the part of gdata.Manager the obstacle store needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// ObstacleStore keeps the obstacle layout edited in game between runs. The
// layout is stored in the same YAML form as the authored obstacle file.
type ObstacleStore struct {
	items ItemStore
	key   string
	log   *zap.Logger
}

// OpenObstacleStore opens the gdata directory of appName.
func OpenObstacleStore(appName, key string, log *zap.Logger) (*ObstacleStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewObstacleStore(m, key, log), nil
}

func NewObstacleStore(items ItemStore, key string, log *zap.Logger) *ObstacleStore {
	return &ObstacleStore{items: items, key: key, log: log}
}

// Load returns the saved layout. ok is false when nothing was saved yet.
func (s *ObstacleStore) Load() (m *navgrid.ObstacleMap, ok bool, err error) {
	data, err := s.items.LoadItem(s.key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", s.key, err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}

	m, err = leveldata.ParseObstacles(data)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", s.key, err)
	}
	return m, true, nil
}

func (s *ObstacleStore) Save(m *navgrid.ObstacleMap) error {
	data, err := leveldata.MarshalObstacles(m)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	if err := s.items.SaveItem(s.key, data); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	s.log.Debug("obstacles saved", zap.Int("blocked", len(m.Cells())))
	return nil
}

// Clear forgets the saved layout so the authored one applies again.
func (s *ObstacleStore) Clear() error {
	if err := s.items.SaveItem(s.key, nil); err != nil {
		return fmt.Errorf("clear %s: %w", s.key, err)
	}
	return nil
}

// ApplySaved replaces the live obstacle map with the saved layout, if any.
// Failures are logged and leave the authored layout in place.
func (s *ObstacleStore) ApplySaved(nav *Navigation) bool {
	m, ok, err := s.Load()
	if err != nil {
		s.log.Warn("could not load saved obstacles", zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	nav.Obstacles.Store(m)
	return true
}
