package storage

import "github.com/nsyszr/festival/pkg/model"

// Interface is implemented by the storage
type Interface interface {
	Apps() AppStore
	Stages() StageStore
	Events() EventStore
}

// AppStore is responsible for managing the App model. Names are unique at
// creation time only.
type AppStore interface {
	FetchAll() ([]model.App, error)
	FindByID(id string) (*model.App, error)
	FindByName(name string) (*model.App, error)
	Create(m *model.App) error
	Update(m *model.App) error
	Delete(id string) error
}

// StageStore is responsible for managing the Stage model
type StageStore interface {
	FetchAll() ([]model.Stage, error)
	FindByID(id string) (*model.Stage, error)
	FindByName(name string) (*model.Stage, error)
	Create(m *model.Stage) error
	Update(m *model.Stage) error
	Delete(id string) error
}

// EventStore is responsible for managing the Event model
type EventStore interface {
	FetchAll() ([]model.Event, error)
	FetchByAppID(appID string) ([]model.Event, error)
	FetchByStageID(stageID string) ([]model.Event, error)
	// FetchBetween returns the events fully contained in [start, end].
	FetchBetween(start, end int64) ([]model.Event, error)
	FindByID(id string) (*model.Event, error)
	FindByName(name string) (*model.Event, error)
	Create(m *model.Event) error
	Update(m *model.Event) error
	Delete(id string) error
}
