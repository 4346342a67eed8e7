package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/sociogram/service/counter"
	"github.com/traPtitech/sociogram/service/ws"
)

type statsResponse struct {
	Connections int                          `json:"connections"`
	Guests      int                          `json:"guests"`
	OnlineUsers int                          `json:"onlineUsers"`
	Activities  map[counter.ActivityKind]int `json:"activities"`
}

// GetStats GET /stats
func (h *Handlers) GetStats(c echo.Context) error {
	res := statsResponse{
		OnlineUsers: h.Presence.Len(),
		Activities:  make(map[counter.ActivityKind]int, len(counter.ActivityKinds)),
	}
	h.WS.IterateSessions(func(s ws.Session) {
		res.Connections++
		if s.Guest() {
			res.Guests++
		}
	})
	for _, kind := range counter.ActivityKinds {
		res.Activities[kind] = h.ActivityCounter.Get(kind)
	}
	return c.JSON(http.StatusOK, res)
}
