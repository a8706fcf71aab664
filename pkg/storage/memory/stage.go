package memory

import (
	"sync"

	"github.com/nsyszr/festival/pkg/model"
	"github.com/nsyszr/festival/pkg/storage"
)

type stageStore struct {
	store []model.Stage
	sync.RWMutex
}

func newStageStore() *stageStore {
	return &stageStore{
		store: make([]model.Stage, 0),
	}
}

func (s *stageStore) FetchAll() ([]model.Stage, error) {
	s.RLock()
	defer s.RUnlock()

	models := make([]model.Stage, len(s.store))
	copy(models, s.store)

	return models, nil
}

func (s *stageStore) FindByID(id string) (*model.Stage, error) {
	s.RLock()
	defer s.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		m := s.store[i]
		return &m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *stageStore) FindByName(name string) (*model.Stage, error) {
	s.RLock()
	defer s.RUnlock()

	for _, m := range s.store {
		if m.Name == name {
			return &m, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *stageStore) Create(m *model.Stage) error {
	s.Lock()
	defer s.Unlock()

	for _, existing := range s.store {
		if existing.Name == m.Name {
			return storage.ErrAlreadyExists
		}
	}

	m.ID = newID(func(id string) bool { return s.indexOf(id) >= 0 })
	s.store = append(s.store, *m)

	return nil
}

func (s *stageStore) Update(m *model.Stage) error {
	s.Lock()
	defer s.Unlock()

	i := s.indexOf(m.ID)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.store[i] = *m

	return nil
}

func (s *stageStore) Delete(id string) error {
	s.Lock()
	defer s.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.store = append(s.store[:i], s.store[i+1:]...)

	return nil
}

func (s *stageStore) insert(m model.Stage) error {
	s.Lock()
	defer s.Unlock()

	if s.indexOf(m.ID) >= 0 {
		return storage.ErrAlreadyExists
	}
	s.store = append(s.store, m)

	return nil
}

func (s *stageStore) indexOf(id string) int {
	for i, m := range s.store {
		if m.ID == id {
			return i
		}
	}
	return -1
}
