package resource

import (
	"encoding/json"
	"strings"
)

// RealtimeEventResource is sent to websocket clients for every change
type RealtimeEventResource struct {
	Entity string      `json:"entity"`
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

func NewRealtimeEvent(entity, action string, data interface{}) *RealtimeEventResource {
	return &RealtimeEventResource{
		Entity: entity,
		Action: action,
		Data:   data,
	}
}

// ParseRealtimeEvent builds the resource from a change subject of the form
// <prefix>.<entity>.<action> and its JSON payload
func ParseRealtimeEvent(subject string, payload []byte) (*RealtimeEventResource, bool) {
	s := strings.Split(subject, ".")
	if len(s) < 2 {
		return nil, false
	}

	var data interface{}
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, false
	}

	return NewRealtimeEvent(s[len(s)-2], s[len(s)-1], data), true
}
