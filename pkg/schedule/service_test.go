package schedule

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nsyszr/festival/pkg/model"
	"github.com/nsyszr/festival/pkg/storage"
	"github.com/nsyszr/festival/pkg/storage/memory"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{
  "apps": [
    {"id": "a1", "name": "Summer Fest"},
    {"id": "a2", "name": "Winter Fest"}
  ],
  "stages": [
    {"id": "s1", "name": "Main Stage"},
    {"id": "s2", "name": "Tent"},
    {"id": "s3", "name": "Beach"}
  ],
  "events": [
    {"id": "A", "appId": "a1", "stageId": "s2", "name": "A", "description": "", "image": "", "startsAt": 10, "endsAt": 20},
    {"id": "B", "appId": "a1", "stageId": "s1", "name": "B", "description": "", "image": "", "startsAt": 5, "endsAt": 15},
    {"id": "C", "appId": "a1", "stageId": "s2", "name": "C", "description": "", "image": "", "startsAt": 10, "endsAt": 30},
    {"id": "D", "appId": "a2", "stageId": "s3", "name": "D", "description": "", "image": "", "startsAt": 40, "endsAt": 50}
  ]
}`

type fakeNotifier struct {
	changes []model.Change
	err     error
}

func (f *fakeNotifier) Notify(ctx context.Context, ch model.Change) error {
	f.changes = append(f.changes, ch)
	return f.err
}

func newTestService(t *testing.T) (*Service, *fakeNotifier) {
	t.Helper()
	store, err := memory.NewStoreFromReader(strings.NewReader(testDocument))
	require.NoError(t, err)
	n := &fakeNotifier{}
	return New(store, n), n
}

func strPtr(s string) *string {
	return &s
}

func TestCreate_DuplicateNameLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	before, _ := svc.AllApps(ctx)
	_, err := svc.CreateApp(ctx, "Summer Fest")
	require.Error(t, err)
	assert.Equal(t, storage.ErrAlreadyExists, errors.Cause(err))
	assert.Equal(t, "App: Summer Fest already exists in the database.", err.Error())
	after, _ := svc.AllApps(ctx)
	assert.Equal(t, before, after)

	_, err = svc.CreateStage(ctx, "Tent")
	assert.Equal(t, "Stage: Tent already exists in the database.", err.Error())

	_, err = svc.CreateEvent(ctx, model.Event{Name: "A"})
	assert.Equal(t, "Event: A already exists in the database.", err.Error())
	events, _ := svc.AllEvents(ctx)
	assert.Len(t, events, 4)

	assert.Empty(t, n.changes)
}

func TestCreateApp_IsRetrievable(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)

	m, err := svc.CreateApp(ctx, "Autumn Fest")
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.NotContains(t, []string{"a1", "a2"}, m.ID)

	got, err := svc.App(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, *m, *got)

	require.Len(t, n.changes, 1)
	assert.Equal(t, model.Change{Entity: "app", Action: "created", ID: m.ID, At: n.changes[0].At}, n.changes[0])
}

func TestCreateEvent_AcceptsDanglingReferences(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	m, err := svc.CreateEvent(ctx, model.Event{AppID: "nope", StageID: "nope", Name: "Ghost", StartsAt: 1, EndsAt: 2})
	require.NoError(t, err)

	_, err = svc.StageOfEvent(ctx, *m)
	require.Error(t, err)
	assert.Equal(t, storage.ErrNotFound, errors.Cause(err))
	assert.Equal(t, "No stage with id nope in database.", err.Error())
}

func TestUpdateEvent_ReplacesAllFieldsButID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	in := model.Event{
		ID:          "ignored",
		AppID:       "a2",
		StageID:     "s3",
		Name:        "Renamed",
		Description: "new",
		Image:       "http://img",
		StartsAt:    100,
		EndsAt:      200,
	}
	_, err := svc.UpdateEvent(ctx, "A", in)
	require.NoError(t, err)

	got, err := svc.Event(ctx, strPtr("A"), nil)
	require.NoError(t, err)
	want := in
	want.ID = "A"
	assert.Equal(t, want, *got)

	_, err = svc.UpdateEvent(ctx, "missing", in)
	assert.Equal(t, "No event with id missing in database.", err.Error())
}

func TestUpdateApp_DoesNotRecheckUniqueness(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	m, err := svc.UpdateApp(ctx, "a2", "Summer Fest")
	require.NoError(t, err)
	assert.Equal(t, "a2", m.ID)

	apps, _ := svc.AllApps(ctx)
	assert.Equal(t, "Summer Fest", apps[0].Name)
	assert.Equal(t, "Summer Fest", apps[1].Name)

	_, err = svc.UpdateStage(ctx, "nope", "x")
	assert.Equal(t, "No stage with id nope in database.", err.Error())
}

func TestDeleteApp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	msg, err := svc.DeleteApp(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Removed app with id a1 from database", msg)

	apps, _ := svc.AllApps(ctx)
	assert.Len(t, apps, 1)

	_, err = svc.App(ctx, "a1")
	assert.Equal(t, storage.ErrNotFound, errors.Cause(err))

	_, err = svc.DeleteApp(ctx, "a1")
	assert.Equal(t, "No app with id a1 in database.", err.Error())
}

func TestDeleteStage_DoesNotCascade(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	before, _ := svc.EventsByStage(ctx, "s2")

	msg, err := svc.DeleteStage(ctx, "s2")
	require.NoError(t, err)
	assert.Contains(t, msg, "s2")

	after, _ := svc.EventsByStage(ctx, "s2")
	assert.Equal(t, before, after)
	assert.Len(t, after, 2)
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	msg, err := svc.DeleteEvent(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, "Removed event with id B from database", msg)

	_, err = svc.Event(ctx, strPtr("B"), nil)
	assert.Error(t, err)
}

func TestEventsBetween_Containment(t *testing.T) {
	svc, _ := newTestService(t)

	events, err := svc.EventsBetween(context.Background(), 10, 20)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "A", events[0].ID)
}

func TestStagesByApp_Deduplicates(t *testing.T) {
	svc, _ := newTestService(t)

	stages, err := svc.StagesByApp(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, []model.Stage{{ID: "s1", Name: "Main Stage"}, {ID: "s2", Name: "Tent"}}, stages)
}

func TestLookup_IDTakesPrecedenceOverName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	m, err := svc.Stage(ctx, strPtr("s1"), strPtr("Tent"))
	require.NoError(t, err)
	assert.Equal(t, "Main Stage", m.Name)

	m, err = svc.Stage(ctx, nil, strPtr("Tent"))
	require.NoError(t, err)
	assert.Equal(t, "s2", m.ID)

	_, err = svc.Stage(ctx, nil, strPtr("Nowhere"))
	assert.Equal(t, "No stage with name Nowhere in database.", err.Error())

	_, err = svc.Event(ctx, nil, nil)
	assert.Equal(t, ErrInvalidInput, errors.Cause(err))
}

func TestNotifyFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	svc, n := newTestService(t)
	n.err = errors.New("broker down")

	_, err := svc.CreateStage(ctx, "Forest")
	assert.NoError(t, err)
	assert.Len(t, n.changes, 1)
}

// queryingNotifier reads from the service while being notified
type queryingNotifier struct {
	svc  *Service
	apps []model.App
}

func (n *queryingNotifier) Notify(ctx context.Context, ch model.Change) error {
	apps, err := n.svc.AllApps(ctx)
	n.apps = apps
	return err
}

func TestNotifyRunsAfterLockIsReleased(t *testing.T) {
	ctx := context.Background()
	store, err := memory.NewStoreFromReader(strings.NewReader(testDocument))
	require.NoError(t, err)
	n := &queryingNotifier{}
	svc := New(store, n)
	n.svc = svc

	done := make(chan error, 1)
	go func() {
		_, err := svc.CreateApp(ctx, "Autumn Fest")
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("CreateApp blocked while notifying")
	}
	assert.Len(t, n.apps, 3)
}

func TestError_Extensions(t *testing.T) {
	err := notFound("app", "id", "x").(*Error)
	assert.Equal(t, map[string]interface{}{"code": "NOT_FOUND"}, err.Extensions())
	assert.Equal(t, "ALREADY_EXISTS", Code(alreadyExists("App", "x")))
	assert.Equal(t, "INTERNAL", Code(errors.New("boom")))
}
