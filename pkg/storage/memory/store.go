package memory

import (
	"github.com/google/uuid"
	"github.com/nsyszr/festival/pkg/storage"
)

// Store contains all memory-based sub-stores for managing the models
type store struct {
	apps   *appStore
	stages *stageStore
	events *eventStore
}

// NewStore creates a new, empty memory-based Storage interface
func NewStore() storage.Interface {
	return newStore()
}

func newStore() *store {
	return &store{
		apps:   newAppStore(),
		stages: newStageStore(),
		events: newEventStore(),
	}
}

// Apps returns a sub-store for managing the App model
func (s *store) Apps() storage.AppStore {
	return s.apps
}

// Stages returns a sub-store for managing the Stage model
func (s *store) Stages() storage.StageStore {
	return s.stages
}

// Events returns a sub-store for managing the Event model
func (s *store) Events() storage.EventStore {
	return s.events
}

// newID returns a random v4 UUID that taken does not report as used
func newID(taken func(id string) bool) string {
	for {
		id := uuid.NewString()
		if !taken(id) {
			return id
		}
	}
}
