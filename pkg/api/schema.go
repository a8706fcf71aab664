package api

import (
	"context"
	_ "embed"
	"fmt"
	"runtime"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/nsyszr/festival/pkg/schedule"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Schema is the GraphQL schema of the festival API
//
//go:embed schema.graphql
var Schema string

// Request is the standard GraphQL request envelope
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Executor runs GraphQL requests against the schedule service. It is shared
// by the HTTP handler and the command line adapter.
type Executor struct {
	schema *graphql.Schema
}

// NewExecutor parses the schema and binds it to svc
func NewExecutor(svc *schedule.Service) (*Executor, error) {
	schema, err := graphql.ParseSchema(Schema, &Resolver{svc: svc},
		graphql.Logger(panicLogger{}),
		graphql.MaxDepth(16),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse schema")
	}

	return &Executor{schema: schema}, nil
}

// Execute runs a single request. Field errors are part of the response.
func (e *Executor) Execute(ctx context.Context, req Request) *graphql.Response {
	return e.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
}

type panicLogger struct{}

func (panicLogger) LogPanic(_ context.Context, value interface{}) {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	log.WithField("stack", string(buf)).Error(fmt.Sprintf("api: panic occurred while resolving: %v", value))
}
