package schedule

import (
	"context"

	"github.com/nsyszr/festival/pkg/model"
)

func (s *Service) CreateApp(ctx context.Context, name string) (*model.App, error) {
	m := &model.App{Name: name}
	err := s.commit(ctx, func() (model.Change, error) {
		if err := s.store.Apps().Create(m); err != nil {
			return model.Change{}, translate(err, nil, func() error { return alreadyExists("App", name) })
		}
		return change(model.EntityApp, model.ActionCreated, m.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) CreateStage(ctx context.Context, name string) (*model.Stage, error) {
	m := &model.Stage{Name: name}
	err := s.commit(ctx, func() (model.Change, error) {
		if err := s.store.Stages().Create(m); err != nil {
			return model.Change{}, translate(err, nil, func() error { return alreadyExists("Stage", name) })
		}
		return change(model.EntityStage, model.ActionCreated, m.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateEvent stores a copy of in under a fresh id. The app and stage the event
// refers to do not need to exist.
func (s *Service) CreateEvent(ctx context.Context, in model.Event) (*model.Event, error) {
	m := in
	err := s.commit(ctx, func() (model.Change, error) {
		if err := s.store.Events().Create(&m); err != nil {
			return model.Change{}, translate(err, nil, func() error { return alreadyExists("Event", in.Name) })
		}
		return change(model.EntityEvent, model.ActionCreated, m.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateApp renames an app. The new name is not checked for uniqueness.
func (s *Service) UpdateApp(ctx context.Context, id, name string) (*model.App, error) {
	onNotFound := func() error { return notFound(model.EntityApp, "id", id) }

	var m *model.App
	err := s.commit(ctx, func() (model.Change, error) {
		var err error
		if m, err = s.store.Apps().FindByID(id); err != nil {
			return model.Change{}, translate(err, onNotFound, nil)
		}

		m.Name = name
		if err := s.store.Apps().Update(m); err != nil {
			return model.Change{}, translate(err, onNotFound, nil)
		}
		return change(model.EntityApp, model.ActionUpdated, id), nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateStage renames a stage. The new name is not checked for uniqueness.
func (s *Service) UpdateStage(ctx context.Context, id, name string) (*model.Stage, error) {
	onNotFound := func() error { return notFound(model.EntityStage, "id", id) }

	var m *model.Stage
	err := s.commit(ctx, func() (model.Change, error) {
		var err error
		if m, err = s.store.Stages().FindByID(id); err != nil {
			return model.Change{}, translate(err, onNotFound, nil)
		}

		m.Name = name
		if err := s.store.Stages().Update(m); err != nil {
			return model.Change{}, translate(err, onNotFound, nil)
		}
		return change(model.EntityStage, model.ActionUpdated, id), nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateEvent replaces every field of the event except its id with in
func (s *Service) UpdateEvent(ctx context.Context, id string, in model.Event) (*model.Event, error) {
	m := in
	m.ID = id
	err := s.commit(ctx, func() (model.Change, error) {
		if err := s.store.Events().Update(&m); err != nil {
			return model.Change{}, translate(err, func() error { return notFound(model.EntityEvent, "id", id) }, nil)
		}
		return change(model.EntityEvent, model.ActionUpdated, id), nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteApp removes the app. Events of the app are kept.
func (s *Service) DeleteApp(ctx context.Context, id string) (string, error) {
	err := s.commit(ctx, func() (model.Change, error) {
		if err := s.store.Apps().Delete(id); err != nil {
			return model.Change{}, translate(err, func() error { return notFound(model.EntityApp, "id", id) }, nil)
		}
		return change(model.EntityApp, model.ActionDeleted, id), nil
	})
	if err != nil {
		return "", err
	}
	return removed(model.EntityApp, id), nil
}

// DeleteStage removes the stage. Events on the stage are kept.
func (s *Service) DeleteStage(ctx context.Context, id string) (string, error) {
	err := s.commit(ctx, func() (model.Change, error) {
		if err := s.store.Stages().Delete(id); err != nil {
			return model.Change{}, translate(err, func() error { return notFound(model.EntityStage, "id", id) }, nil)
		}
		return change(model.EntityStage, model.ActionDeleted, id), nil
	})
	if err != nil {
		return "", err
	}
	return removed(model.EntityStage, id), nil
}

func (s *Service) DeleteEvent(ctx context.Context, id string) (string, error) {
	err := s.commit(ctx, func() (model.Change, error) {
		if err := s.store.Events().Delete(id); err != nil {
			return model.Change{}, translate(err, func() error { return notFound(model.EntityEvent, "id", id) }, nil)
		}
		return change(model.EntityEvent, model.ActionDeleted, id), nil
	})
	if err != nil {
		return "", err
	}
	return removed(model.EntityEvent, id), nil
}
