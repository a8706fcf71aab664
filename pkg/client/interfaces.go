package client

// Interface is implemented by the change feed clients
type Interface interface {
	Publish(subject string, data []byte) error
	// Subscribe calls fn for every message on subject until the returned
	// function is called.
	Subscribe(subject string, fn func(subject string, data []byte)) (func() error, error)
	Close()
}
