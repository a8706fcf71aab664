package cli

import "github.com/nsyszr/festival/config"

type Handler struct {
	Exec *ExecHandler
}

func NewHandler(c *config.Config) *Handler {
	return &Handler{
		Exec: newExecHandler(c),
	}
}
