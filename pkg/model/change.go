package model

import "time"

const (
	EntityApp   = "app"
	EntityStage = "stage"
	EntityEvent = "event"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Change describes a committed mutation of one record
type Change struct {
	Entity string
	Action string
	ID     string
	At     time.Time
}
