package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ymerta/vardiya/internal/domain/auth"
	"github.com/ymerta/vardiya/internal/handler/http/response"
	"github.com/ymerta/vardiya/internal/pkg/jwt"
	"github.com/ymerta/vardiya/internal/pkg/sse"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewEventsHandler(hub *sse.Hub, jwtService jwt.Service) EventsHandler {
	return &EventsHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Stream pushes shift and employee change events to the schedule UI.
// Authentication rides in ?token= because EventSource cannot set
// headers; the token is the short-lived kind minted by the sse-token
// endpoint.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	if _, err := h.jwtService.ValidateSSEToken(r.URL.Query().Get("token")); err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cancel := h.hub.Subscribe()
	defer cancel()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Error("SSE marshal error", "event", event.Event, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()
		}
	}
}
