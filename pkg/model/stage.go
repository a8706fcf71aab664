package model

// Stage is a model of the persistency layer
type Stage struct {
	ID   string
	Name string
}
