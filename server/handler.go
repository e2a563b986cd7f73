package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"tictac/meta"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type errorResponse struct {
	Error string `json:"error"`
}

// Router exposes the hub over HTTP:
//
//	GET  /healthz   liveness
//	GET  /frame     latest frame as JSON
//	POST /commands  apply one Command
//	GET  /ws        frames out, commands in
//	GET  /metrics   Prometheus
func Router(h *Hub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/frame", h.handleFrame)
	r.Post("/commands", h.handleCommand)
	r.Get("/ws", h.handleWebsocket)
	r.Handle(meta.METRICS_PATH, promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func (h *Hub) handleFrame(w http.ResponseWriter, r *http.Request) {
	data := h.Latest()
	if data == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no frame yet"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (h *Hub) handleCommand(w http.ResponseWriter, r *http.Request) {
	var cmd Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.Submit(r.Context(), cmd); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrStopped) {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Hub) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := h.register()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	defer h.unregister(c)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()
	log.Info().Msgf("client %s connected", r.RemoteAddr)

	// Only this goroutine writes to conn. The reader hands errors back
	// through replies.
	replies := make(chan errorResponse, 4)
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			var cmd Command
			if err := conn.ReadJSON(&cmd); err != nil {
				return
			}
			if err := h.Submit(r.Context(), cmd); err != nil {
				select {
				case replies <- errorResponse{Error: err.Error()}:
				default:
				}
			}
		}
	}()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case reply := <-replies:
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		case <-closed:
			log.Info().Msgf("client %s disconnected", r.RemoteAddr)
			return
		}
	}
}
