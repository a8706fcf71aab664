package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/labstack/echo"
	"github.com/nsyszr/festival/pkg/client"
	"github.com/nsyszr/festival/pkg/schedule"
	"github.com/nsyszr/festival/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeed struct {
	mu           sync.Mutex
	subject      string
	fn           func(string, []byte)
	unsubscribed bool
}

func (f *fakeFeed) Publish(subject string, data []byte) error {
	f.mu.Lock()
	fn := f.fn
	f.mu.Unlock()
	if fn != nil {
		fn(subject, data)
	}
	return nil
}

func (f *fakeFeed) Subscribe(subject string, fn func(string, []byte)) (func() error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subject = subject
	f.fn = fn
	return func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.unsubscribed = true
		return nil
	}, nil
}

func (f *fakeFeed) Close() {}

func (f *fakeFeed) subscribed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fn != nil
}

func TestRealtimeEvents_ForwardsChanges(t *testing.T) {
	feed := &fakeFeed{}
	store, err := memory.NewStoreFromReader(strings.NewReader(testDocument))
	require.NoError(t, err)
	svc := schedule.New(store, client.NewNotifier(feed))
	exec, err := NewExecutor(svc)
	require.NoError(t, err)

	e := echo.New()
	NewHandler(exec, feed, false).RegisterRoutes(e)
	srv := httptest.NewServer(e)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, _, err := ws.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/realtime-events")
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, feed.subscribed, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "festival.v1.>", feed.subject)

	_, err = svc.DeleteApp(ctx, "a1")
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	data, _, err := wsutil.ReadServerData(conn)
	require.NoError(t, err)

	msg := struct {
		Entity string                 `json:"entity"`
		Action string                 `json:"action"`
		Data   map[string]interface{} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "app", msg.Entity)
	assert.Equal(t, "deleted", msg.Action)
	assert.Equal(t, "a1", msg.Data["id"])
}
