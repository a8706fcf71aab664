package api

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/nsyszr/festival/pkg/api/resource"
	"github.com/nsyszr/festival/pkg/model"
	"github.com/nsyszr/festival/pkg/schedule"
)

// Resolver is the root resolver for queries and mutations
type Resolver struct {
	svc *schedule.Service
}

func (r *Resolver) AllApps(ctx context.Context) (*[]*appResolver, error) {
	m, err := r.svc.AllApps(ctx)
	if err != nil {
		return nil, err
	}
	out := r.apps(m)
	return &out, nil
}

func (r *Resolver) AllEvents(ctx context.Context) ([]*eventResolver, error) {
	m, err := r.svc.AllEvents(ctx)
	if err != nil {
		return nil, err
	}
	return r.events(m), nil
}

func (r *Resolver) AllStages(ctx context.Context) ([]*stageResolver, error) {
	m, err := r.svc.AllStages(ctx)
	if err != nil {
		return nil, err
	}
	return r.stages(m), nil
}

func (r *Resolver) App(ctx context.Context, args struct{ ID graphql.ID }) (*appResolver, error) {
	m, err := r.svc.App(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &appResolver{root: r, m: *m}, nil
}

type lookupArgs struct {
	ID   *graphql.ID
	Name *string
}

func (a lookupArgs) id() *string {
	if a.ID == nil {
		return nil
	}
	id := string(*a.ID)
	return &id
}

func (r *Resolver) Event(ctx context.Context, args lookupArgs) (*eventResolver, error) {
	m, err := r.svc.Event(ctx, args.id(), args.Name)
	if err != nil {
		return nil, err
	}
	return &eventResolver{root: r, m: *m}, nil
}

func (r *Resolver) Stage(ctx context.Context, args lookupArgs) (*stageResolver, error) {
	m, err := r.svc.Stage(ctx, args.id(), args.Name)
	if err != nil {
		return nil, err
	}
	return &stageResolver{root: r, m: *m}, nil
}

func (r *Resolver) GetEventsBetween(ctx context.Context, args struct {
	Start int32
	End   int32
}) (*[]*eventResolver, error) {
	m, err := r.svc.EventsBetween(ctx, int64(args.Start), int64(args.End))
	if err != nil {
		return nil, err
	}
	out := r.events(m)
	return &out, nil
}

type appStageArgs struct {
	Input *resource.AppStageInput
}

type eventArgs struct {
	Input *resource.EventInput
}

func (r *Resolver) CreateApp(ctx context.Context, args appStageArgs) (*appResolver, error) {
	name, err := resource.ValidateAppStage(args.Input)
	if err != nil {
		return nil, invalid(err)
	}
	m, err := r.svc.CreateApp(ctx, name)
	if err != nil {
		return nil, err
	}
	return &appResolver{root: r, m: *m}, nil
}

func (r *Resolver) CreateStage(ctx context.Context, args appStageArgs) (*stageResolver, error) {
	name, err := resource.ValidateAppStage(args.Input)
	if err != nil {
		return nil, invalid(err)
	}
	m, err := r.svc.CreateStage(ctx, name)
	if err != nil {
		return nil, err
	}
	return &stageResolver{root: r, m: *m}, nil
}

func (r *Resolver) CreateEvent(ctx context.Context, args eventArgs) (*eventResolver, error) {
	in, err := resource.ValidateEvent(args.Input)
	if err != nil {
		return nil, invalid(err)
	}
	m, err := r.svc.CreateEvent(ctx, *in)
	if err != nil {
		return nil, err
	}
	return &eventResolver{root: r, m: *m}, nil
}

func (r *Resolver) UpdateApp(ctx context.Context, args struct {
	ID    graphql.ID
	Input *resource.AppStageInput
}) (*appResolver, error) {
	name, err := resource.ValidateAppStage(args.Input)
	if err != nil {
		return nil, invalid(err)
	}
	m, err := r.svc.UpdateApp(ctx, string(args.ID), name)
	if err != nil {
		return nil, err
	}
	return &appResolver{root: r, m: *m}, nil
}

func (r *Resolver) UpdateStage(ctx context.Context, args struct {
	ID    graphql.ID
	Input *resource.AppStageInput
}) (*stageResolver, error) {
	name, err := resource.ValidateAppStage(args.Input)
	if err != nil {
		return nil, invalid(err)
	}
	m, err := r.svc.UpdateStage(ctx, string(args.ID), name)
	if err != nil {
		return nil, err
	}
	return &stageResolver{root: r, m: *m}, nil
}

func (r *Resolver) UpdateEvent(ctx context.Context, args struct {
	ID    graphql.ID
	Input *resource.EventInput
}) (*eventResolver, error) {
	in, err := resource.ValidateEvent(args.Input)
	if err != nil {
		return nil, invalid(err)
	}
	m, err := r.svc.UpdateEvent(ctx, string(args.ID), *in)
	if err != nil {
		return nil, err
	}
	return &eventResolver{root: r, m: *m}, nil
}

func (r *Resolver) DeleteApp(ctx context.Context, args struct{ ID graphql.ID }) (*string, error) {
	return confirm(r.svc.DeleteApp(ctx, string(args.ID)))
}

func (r *Resolver) DeleteEvent(ctx context.Context, args struct{ ID graphql.ID }) (*string, error) {
	return confirm(r.svc.DeleteEvent(ctx, string(args.ID)))
}

func (r *Resolver) DeleteStage(ctx context.Context, args struct{ ID graphql.ID }) (*string, error) {
	return confirm(r.svc.DeleteStage(ctx, string(args.ID)))
}

func confirm(msg string, err error) (*string, error) {
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func invalid(err error) error {
	return &schedule.Error{Kind: schedule.ErrInvalidInput, Message: err.Error()}
}

func (r *Resolver) apps(m []model.App) []*appResolver {
	out := make([]*appResolver, 0, len(m))
	for _, elem := range m {
		out = append(out, &appResolver{root: r, m: elem})
	}
	return out
}

func (r *Resolver) stages(m []model.Stage) []*stageResolver {
	out := make([]*stageResolver, 0, len(m))
	for _, elem := range m {
		out = append(out, &stageResolver{root: r, m: elem})
	}
	return out
}

func (r *Resolver) events(m []model.Event) []*eventResolver {
	out := make([]*eventResolver, 0, len(m))
	for _, elem := range m {
		out = append(out, &eventResolver{root: r, m: elem})
	}
	return out
}
