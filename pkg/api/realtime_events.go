package api

import (
	"encoding/json"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/labstack/echo"
	"github.com/nsyszr/festival/pkg/api/resource"
	"github.com/nsyszr/festival/pkg/client"
	log "github.com/sirupsen/logrus"
)

// realtimeBacklog is the number of change messages buffered per websocket
const realtimeBacklog = 64

func (h *Handler) realtimeEventsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.feed == nil {
			return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "change feed is not configured"})
		}

		conn, _, _, err := ws.UpgradeHTTP(c.Request(), c.Response())
		if err != nil {
			log.Error("api: failed to upgrade to websocket: ", err)
			return nil
		}
		defer conn.Close()

		out := make(chan []byte, realtimeBacklog)
		unsubscribe, err := h.feed.Subscribe(client.AllChanges, func(subject string, data []byte) {
			event, ok := resource.ParseRealtimeEvent(subject, data)
			if !ok {
				log.WithField("subject", subject).Warn("api: skipping malformed change")
				return
			}
			msg, err := json.Marshal(event)
			if err != nil {
				return
			}

			select {
			case out <- msg:
			default:
				log.WithField("subject", subject).Warn("api: realtime client too slow, dropping change")
			}
		})
		if err != nil {
			log.Error("api: failed to subscribe to change feed: ", err)
			return nil
		}
		defer unsubscribe()

		// The client never sends anything meaningful, reading only detects
		// when it goes away.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := wsutil.ReadClientData(conn); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-closed:
				return nil
			case data := <-out:
				if err := wsutil.WriteServerMessage(conn, ws.OpText, data); err != nil {
					log.Error("api: failed to send realtime event: ", err)
					return nil
				}
			}
		}
	}
}
