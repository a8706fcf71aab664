package schedule

import (
	"context"

	"github.com/nsyszr/festival/pkg/model"
)

func (s *Service) AllApps(ctx context.Context) ([]model.App, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.store.Apps().FetchAll()
	return m, translate(err, nil, nil)
}

func (s *Service) AllStages(ctx context.Context) ([]model.Stage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.store.Stages().FetchAll()
	return m, translate(err, nil, nil)
}

func (s *Service) AllEvents(ctx context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.store.Events().FetchAll()
	return m, translate(err, nil, nil)
}

// App returns the app with the given id
func (s *Service) App(ctx context.Context, id string) (*model.App, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.store.Apps().FindByID(id)
	if err != nil {
		return nil, translate(err, func() error { return notFound(model.EntityApp, "id", id) }, nil)
	}
	return m, nil
}

// Stage looks up a stage by id, or by name if id is nil
func (s *Service) Stage(ctx context.Context, id, name *string) (*model.Stage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case id != nil:
		m, err := s.store.Stages().FindByID(*id)
		if err != nil {
			return nil, translate(err, func() error { return notFound(model.EntityStage, "id", *id) }, nil)
		}
		return m, nil
	case name != nil:
		m, err := s.store.Stages().FindByName(*name)
		if err != nil {
			return nil, translate(err, func() error { return notFound(model.EntityStage, "name", *name) }, nil)
		}
		return m, nil
	default:
		return nil, invalidInput("Either id or name of the stage is required.")
	}
}

// Event looks up an event by id, or by name if id is nil
func (s *Service) Event(ctx context.Context, id, name *string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case id != nil:
		m, err := s.store.Events().FindByID(*id)
		if err != nil {
			return nil, translate(err, func() error { return notFound(model.EntityEvent, "id", *id) }, nil)
		}
		return m, nil
	case name != nil:
		m, err := s.store.Events().FindByName(*name)
		if err != nil {
			return nil, translate(err, func() error { return notFound(model.EntityEvent, "name", *name) }, nil)
		}
		return m, nil
	default:
		return nil, invalidInput("Either id or name of the event is required.")
	}
}

// EventsBetween returns the events that start at or after start and end at or
// before end. Events only overlapping the window are not included.
func (s *Service) EventsBetween(ctx context.Context, start, end int64) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.store.Events().FetchBetween(start, end)
	return m, translate(err, nil, nil)
}

func (s *Service) EventsByApp(ctx context.Context, appID string) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.store.Events().FetchByAppID(appID)
	return m, translate(err, nil, nil)
}

func (s *Service) EventsByStage(ctx context.Context, stageID string) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.store.Events().FetchByStageID(stageID)
	return m, translate(err, nil, nil)
}

// StagesByApp returns each stage used by an event of the app once, in stage
// order. Stages referenced by events but missing from the store are skipped.
func (s *Service) StagesByApp(ctx context.Context, appID string) ([]model.Stage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, err := s.store.Events().FetchByAppID(appID)
	if err != nil {
		return nil, translate(err, nil, nil)
	}

	used := make(map[string]bool, len(events))
	for _, e := range events {
		used[e.StageID] = true
	}

	stages, err := s.store.Stages().FetchAll()
	if err != nil {
		return nil, translate(err, nil, nil)
	}

	out := make([]model.Stage, 0, len(used))
	for _, m := range stages {
		if used[m.ID] {
			out = append(out, m)
		}
	}
	return out, nil
}

// StageOfEvent returns the stage the event is scheduled on. A dangling stage
// reference results in a not found error.
func (s *Service) StageOfEvent(ctx context.Context, e model.Event) (*model.Stage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.store.Stages().FindByID(e.StageID)
	if err != nil {
		return nil, translate(err, func() error { return notFound(model.EntityStage, "id", e.StageID) }, nil)
	}
	return m, nil
}
