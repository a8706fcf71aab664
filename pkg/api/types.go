package api

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/nsyszr/festival/pkg/model"
)

type appResolver struct {
	root *Resolver
	m    model.App
}

func (r *appResolver) ID() graphql.ID {
	return graphql.ID(r.m.ID)
}

func (r *appResolver) Name() string {
	return r.m.Name
}

func (r *appResolver) Events(ctx context.Context) ([]*eventResolver, error) {
	m, err := r.root.svc.EventsByApp(ctx, r.m.ID)
	if err != nil {
		return nil, err
	}
	return r.root.events(m), nil
}

func (r *appResolver) Stages(ctx context.Context) (*[]*stageResolver, error) {
	m, err := r.root.svc.StagesByApp(ctx, r.m.ID)
	if err != nil {
		return nil, err
	}
	out := r.root.stages(m)
	return &out, nil
}

type stageResolver struct {
	root *Resolver
	m    model.Stage
}

func (r *stageResolver) ID() graphql.ID {
	return graphql.ID(r.m.ID)
}

func (r *stageResolver) Name() string {
	return r.m.Name
}

func (r *stageResolver) Events(ctx context.Context) ([]*eventResolver, error) {
	m, err := r.root.svc.EventsByStage(ctx, r.m.ID)
	if err != nil {
		return nil, err
	}
	return r.root.events(m), nil
}

type eventResolver struct {
	root *Resolver
	m    model.Event
}

func (r *eventResolver) ID() graphql.ID {
	return graphql.ID(r.m.ID)
}

func (r *eventResolver) AppID() graphql.ID {
	return graphql.ID(r.m.AppID)
}

func (r *eventResolver) StageID() graphql.ID {
	return graphql.ID(r.m.StageID)
}

func (r *eventResolver) Name() string {
	return r.m.Name
}

func (r *eventResolver) Description() string {
	return r.m.Description
}

func (r *eventResolver) Image() string {
	return r.m.Image
}

// StartsAt always fits, the store refuses datasets with larger timestamps
func (r *eventResolver) StartsAt() int32 {
	return int32(r.m.StartsAt)
}

func (r *eventResolver) EndsAt() int32 {
	return int32(r.m.EndsAt)
}

func (r *eventResolver) Stage(ctx context.Context) (*stageResolver, error) {
	m, err := r.root.svc.StageOfEvent(ctx, r.m)
	if err != nil {
		return nil, err
	}
	return &stageResolver{root: r.root, m: *m}, nil
}
