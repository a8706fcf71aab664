package resource

import (
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/nsyszr/festival/pkg/model"
)

// EventInput is the GraphQL input for creating and replacing events
type EventInput struct {
	AppID       graphql.ID
	StageID     graphql.ID
	Name        string
	Description string
	Image       string
	StartsAt    int32
	EndsAt      int32
}

// ValidateEvent converts the input into an event model without an id. The
// schema already enforces all fields, references are not checked.
func ValidateEvent(r *EventInput) (m *model.Event, err error) {
	if r == nil {
		return nil, fmt.Errorf("input is required")
	}

	m = &model.Event{
		AppID:       string(r.AppID),
		StageID:     string(r.StageID),
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		StartsAt:    int64(r.StartsAt),
		EndsAt:      int64(r.EndsAt),
	}

	return m, nil
}
