package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsyszr/festival/pkg/model"
	"github.com/pkg/errors"
)

// SubjectPrefix is the root of all change subjects
const SubjectPrefix = "festival.v1"

// AllChanges matches the subject of every change
const AllChanges = SubjectPrefix + ".>"

// ChangeSubject returns the subject a change is published on, e.g.
// festival.v1.event.updated
func ChangeSubject(ch model.Change) string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, ch.Entity, ch.Action)
}

// ChangeMessage is the payload of a published change
type ChangeMessage struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

// Notifier publishes changes through a client
type Notifier struct {
	c Interface
}

// NewNotifier creates a Notifier publishing with c
func NewNotifier(c Interface) *Notifier {
	return &Notifier{c: c}
}

// Notify publishes ch
func (n *Notifier) Notify(ctx context.Context, ch model.Change) error {
	data, err := json.Marshal(ChangeMessage{
		Entity: ch.Entity,
		Action: ch.Action,
		ID:     ch.ID,
		At:     ch.At,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal change")
	}

	if err := n.c.Publish(ChangeSubject(ch), data); err != nil {
		return errors.Wrap(err, "failed to publish change")
	}
	return nil
}
