package model

// App is a model of the persistency layer. An app groups the events of one
// festival.
type App struct {
	ID   string
	Name string
}
