package memory

import (
	"sync"

	"github.com/nsyszr/festival/pkg/model"
	"github.com/nsyszr/festival/pkg/storage"
)

type appStore struct {
	store []model.App
	sync.RWMutex
}

func newAppStore() *appStore {
	return &appStore{
		store: make([]model.App, 0),
	}
}

func (s *appStore) FetchAll() ([]model.App, error) {
	s.RLock()
	defer s.RUnlock()

	models := make([]model.App, len(s.store))
	copy(models, s.store)

	return models, nil
}

func (s *appStore) FindByID(id string) (*model.App, error) {
	s.RLock()
	defer s.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		m := s.store[i]
		return &m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *appStore) FindByName(name string) (*model.App, error) {
	s.RLock()
	defer s.RUnlock()

	for _, m := range s.store {
		if m.Name == name {
			return &m, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *appStore) Create(m *model.App) error {
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

func (s *appStore) Update(m *model.App) error {
	s.Lock()
	defer s.Unlock()

	i := s.indexOf(m.ID)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.store[i] = *m

	return nil
}

func (s *appStore) Delete(id string) error {
	s.Lock()
	defer s.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.store = append(s.store[:i], s.store[i+1:]...)

	return nil
}

// insert appends a record as-is, keeping its id. Used for seeding.
func (s *appStore) insert(m model.App) error {
	s.Lock()
	defer s.Unlock()

	if s.indexOf(m.ID) >= 0 {
		return storage.ErrAlreadyExists
	}
	s.store = append(s.store, m)

	return nil
}

func (s *appStore) indexOf(id string) int {
	for i, m := range s.store {
		if m.ID == id {
			return i
		}
	}
	return -1
}
