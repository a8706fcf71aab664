package memory

import (
	"sync"

	"github.com/nsyszr/festival/pkg/model"
	"github.com/nsyszr/festival/pkg/storage"
)

type eventStore struct {
	store []model.Event
	sync.RWMutex
}

func newEventStore() *eventStore {
	return &eventStore{
		store: make([]model.Event, 0),
	}
}

func (s *eventStore) FetchAll() ([]model.Event, error) {
	return s.filter(func(model.Event) bool { return true }), nil
}

func (s *eventStore) FetchByAppID(appID string) ([]model.Event, error) {
	return s.filter(func(m model.Event) bool { return m.AppID == appID }), nil
}

func (s *eventStore) FetchByStageID(stageID string) ([]model.Event, error) {
	return s.filter(func(m model.Event) bool { return m.StageID == stageID }), nil
}

func (s *eventStore) FetchBetween(start, end int64) ([]model.Event, error) {
	return s.filter(func(m model.Event) bool {
		return m.StartsAt >= start && m.EndsAt <= end
	}), nil
}

func (s *eventStore) FindByID(id string) (*model.Event, error) {
	s.RLock()
	defer s.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		m := s.store[i]
		return &m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *eventStore) FindByName(name string) (*model.Event, error) {
	s.RLock()
	defer s.RUnlock()

	for _, m := range s.store {
		if m.Name == name {
			return &m, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *eventStore) Create(m *model.Event) error {
	s.Lock()
	defer s.Unlock()

	// References to apps and stages are not checked, only the name.
	for _, existing := range s.store {
		if existing.Name == m.Name {
			return storage.ErrAlreadyExists
		}
	}

	m.ID = newID(func(id string) bool { return s.indexOf(id) >= 0 })
	s.store = append(s.store, *m)

	return nil
}

func (s *eventStore) Update(m *model.Event) error {
	s.Lock()
	defer s.Unlock()

	i := s.indexOf(m.ID)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.store[i] = *m

	return nil
}

func (s *eventStore) Delete(id string) error {
	s.Lock()
	defer s.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.store = append(s.store[:i], s.store[i+1:]...)

	return nil
}

func (s *eventStore) insert(m model.Event) error {
	s.Lock()
	defer s.Unlock()

	if s.indexOf(m.ID) >= 0 {
		return storage.ErrAlreadyExists
	}
	s.store = append(s.store, m)

	return nil
}

func (s *eventStore) filter(match func(model.Event) bool) []model.Event {
	s.RLock()
	defer s.RUnlock()

	models := make([]model.Event, 0)
	for _, m := range s.store {
		if match(m) {
			models = append(models, m)
		}
	}

	return models
}

func (s *eventStore) indexOf(id string) int {
	for i, m := range s.store {
		if m.ID == id {
			return i
		}
	}
	return -1
}
