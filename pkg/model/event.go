package model

// Event is a scheduled performance. StartsAt and EndsAt are epoch timestamps.
type Event struct {
	ID          string
	AppID       string
	StageID     string
	Name        string
	Description string
	Image       string
	StartsAt    int64
	EndsAt      int64
}
