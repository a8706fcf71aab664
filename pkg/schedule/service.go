package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nsyszr/festival/pkg/model"
	"github.com/nsyszr/festival/pkg/storage"
	log "github.com/sirupsen/logrus"
)

// Notifier is informed about every committed mutation
type Notifier interface {
	Notify(ctx context.Context, ch model.Change) error
}

// Service implements the queries and mutations of the festival schedule. Every
// call holds the service lock, so operations never interleave. Changes are
// published once the lock is released.
type Service struct {
	store    storage.Interface
	notifier Notifier
	now      func() time.Time
	mu       sync.RWMutex
}

// New creates a Service on top of store. notifier may be nil.
func New(store storage.Interface, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func change(entity, action, id string) model.Change {
	return model.Change{Entity: entity, Action: action, ID: id}
}

// commit runs fn under the write lock. The change fn reports is published
// after the lock is released.
func (s *Service) commit(ctx context.Context, fn func() (model.Change, error)) error {
	ch, err := func() (model.Change, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return fn()
	}()
	if err != nil {
		return err
	}

	s.notify(ctx, ch)
	return nil
}

func (s *Service) notify(ctx context.Context, ch model.Change) {
	log.WithFields(log.Fields{
		"entity": ch.Entity,
		"action": ch.Action,
		"id":     ch.ID,
	}).Debug("schedule: record changed")

	if s.notifier == nil {
		return
	}

	ch.At = s.now()
	if err := s.notifier.Notify(ctx, ch); err != nil {
		log.WithError(err).Warn("schedule: failed to publish change")
	}
}

func removed(entity, id string) string {
	return fmt.Sprintf("Removed %s with id %s from database", entity, id)
}
