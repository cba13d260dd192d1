// Package simhost is the networked host binding spec.md explicitly scopes
// out of the core: an HTTP + WebSocket surface around a single
// engine.Engine, in the style of the corpus's gorilla/mux + gorilla/
// websocket + prometheus services. It never touches engine internals
// directly -- every handler goes through Engine's exported lifecycle
// methods and the netlist codec, the same surface a CLI or test would
// use.
package simhost

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/metalogic/simcore/config"
	"github.com/metalogic/simcore/engine"
	"github.com/metalogic/simcore/netlist"
	"github.com/metalogic/simcore/telemetry"
)

// Host serializes every request onto a single engine.Engine (spec.md §5's
// single-threaded, synchronous core) and fans each post-step snapshot out
// to any subscribed WebSocket clients.
type Host struct {
	mu      sync.Mutex
	eng     *engine.Engine
	cfg     config.Config
	log     zerolog.Logger
	metrics *telemetry.Metrics

	upgrader websocket.Upgrader
	subsMu   sync.Mutex
	subs     map[*websocket.Conn]struct{}
}

// New constructs a Host around a fresh, uninitialized engine. Call
// Handler's POST /netlist route before stepping.
func New(cfg config.Config, log zerolog.Logger, metrics *telemetry.Metrics) *Host {
	return &Host{
		eng:      engine.New(cfg),
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		subs:     make(map[*websocket.Conn]struct{}),
	}
}

// Handler builds the gorilla/mux router exposing this Host's routes.
func (h *Host) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/netlist", h.handlePostNetlist).Methods(http.MethodPost)
	r.HandleFunc("/step", h.handlePostStep).Methods(http.MethodPost)
	r.HandleFunc("/toggle/{gateID}", h.handlePostToggle).Methods(http.MethodPost)
	r.HandleFunc("/snapshot", h.handleGetSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.handleGetHealthz).Methods(http.MethodGet)
	r.HandleFunc("/ws", h.handleWebSocket).Methods(http.MethodGet)
	return r
}

func (h *Host) handlePostNetlist(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	log := h.log.With().Str("request_id", reqID).Str("route", "POST /netlist").Logger()

	body, err := readAll(r)
	if err != nil {
		log.Error().Err(err).Msg("read body")
		writeError(w, http.StatusBadRequest, err)
		return
	}

	n, err := netlist.DecodeNetlist(body)
	if err != nil {
		log.Warn().Err(err).Msg("decode netlist")
		writeError(w, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	h.eng.Initialize(n)
	snap := h.eng.Snapshot()
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.ActiveGates.Set(float64(len(snap.Gates)))
	}
	log.Info().Int("gates", len(snap.Gates)).Int("wires", len(snap.Wires)).Msg("netlist initialized")
	writeSnapshot(w, snap)
}

func (h *Host) handlePostStep(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	log := h.log.With().Str("request_id", reqID).Str("route", "POST /step").Logger()

	h.mu.Lock()
	processed := h.eng.Step()
	snap := h.eng.Snapshot()
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.StepsTotal.Inc()
		h.metrics.CurrentTime.Set(float64(snap.Time))
		h.metrics.EventsProcessed.Add(float64(processed))
	}
	log.Debug().Uint64("time", snap.Time).Uint64("events_processed", processed).Msg("step")
	writeSnapshot(w, snap)
	h.broadcast(snap)
}

func (h *Host) handlePostToggle(w http.ResponseWriter, r *http.Request) {
	gateID := mux.Vars(r)["gateID"]
	log := h.log.With().Str("route", "POST /toggle").Str("gate_id", gateID).Logger()

	h.mu.Lock()
	h.eng.ToggleInput(gateID)
	snap := h.eng.Snapshot()
	h.mu.Unlock()

	log.Debug().Msg("toggled")
	writeSnapshot(w, snap)
	h.broadcast(snap)
}

func (h *Host) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snap := h.eng.Snapshot()
	h.mu.Unlock()
	writeSnapshot(w, snap)
}

func (h *Host) handleGetHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Host) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	h.subsMu.Lock()
	h.subs[conn] = struct{}{}
	h.subsMu.Unlock()

	go func() {
		defer h.removeSub(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Host) removeSub(conn *websocket.Conn) {
	h.subsMu.Lock()
	delete(h.subs, conn)
	h.subsMu.Unlock()
	_ = conn.Close()
}

// broadcast pushes snap as a JSON frame to every subscribed WebSocket
// client, dropping (and unsubscribing) any connection that errors.
func (h *Host) broadcast(snap netlist.Snapshot) {
	h.subsMu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.subs))
	for c := range h.subs {
		conns = append(conns, c)
	}
	h.subsMu.Unlock()

	for _, c := range conns {
		if err := c.WriteJSON(snap); err != nil {
			h.removeSub(c)
		}
	}
}

func readAll(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

func writeSnapshot(w http.ResponseWriter, snap netlist.Snapshot) {
	data, err := netlist.EncodeSnapshot(snap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
