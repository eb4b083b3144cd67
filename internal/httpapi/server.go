// Package httpapi is the blocking HTTP/JSON adapter over a single heads-up
// hand engine instance: seven fixed routes, CORS wide open, one request
// served at a time — the core stays single-threaded even though net/http
// is happy to run handlers concurrently.
package httpapi

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/nabilervatra/minipokersolver/internal/holdem"
	"github.com/nabilervatra/minipokersolver/internal/randutil"
)

// Server owns the single holdem.State and the seeded generator behind it.
// Every handler that touches the hand runs under mu, so the engine never
// sees concurrent access
// despite net/http dispatching one goroutine per connection.
type Server struct {
	mu     sync.Mutex
	state  *holdem.State
	rng    *rand.Rand
	logger *log.Logger
	hub    *spectatorHub

	startingStack, smallBlind, bigBlind int

	oneAtATime chan struct{}
}

const (
	defaultStartingStack = 1000
	defaultSmallBlind    = 5
	defaultBigBlind      = 10
)

// NewServer creates a Server seeded deterministically from seed. No hand
// exists until the first POST /new_hand.
func NewServer(seed int64, logger *log.Logger) *Server {
	return &Server{
		rng:           randutil.New(seed),
		logger:        logger.WithPrefix("httpapi"),
		hub:           newSpectatorHub(logger),
		startingStack: defaultStartingStack,
		smallBlind:    defaultSmallBlind,
		bigBlind:      defaultBigBlind,
		oneAtATime:    make(chan struct{}, 1),
	}
}

// Router builds the full handler: CORS headers, the one-request-at-a-time
// gate, then the seven fixed routes plus the supplemental
// spectator websocket.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /new_hand", s.handleNewHand)
	mux.HandleFunc("GET /state", s.handleState)
	mux.HandleFunc("GET /legal_actions", s.handleLegalActions)
	mux.HandleFunc("POST /apply_action", s.handleApplyAction)
	mux.HandleFunc("POST /apply_random_action", s.handleApplyRandomAction)
	mux.HandleFunc("GET /terminal_result", s.handleTerminalResult)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ws", s.hub.handleWebSocket)

	return s.serialize(s.withCORS(mux))
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// serialize admits one in-flight request at a time, the adapter-level
// counterpart to the core's single-threaded ownership of State.
func (s *Server) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.oneAtATime <- struct{}{}
		defer func() { <-s.oneAtATime }()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleNewHand(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = holdem.NewHand(s.rng, s.startingStack, s.smallBlind, s.bigBlind)
	s.logger.Info("new hand dealt")
	s.hub.broadcast(toStateDTO(s.state))
	writeJSON(w, http.StatusOK, toStateDTO(s.state))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		writeError(w, http.StatusNotFound, "no hand in progress")
		return
	}
	writeJSON(w, http.StatusOK, toStateDTO(s.state))
}

func (s *Server) handleLegalActions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		writeError(w, http.StatusNotFound, "no hand in progress")
		return
	}
	writeJSON(w, http.StatusOK, toActionDTOs(holdem.LegalActions(s.state)))
}

type applyActionRequest struct {
	Index int `json:"index"`
}

func (s *Server) handleApplyAction(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		writeError(w, http.StatusNotFound, "no hand in progress")
		return
	}

	var req applyActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	actions := holdem.LegalActions(s.state)
	if req.Index < 0 || req.Index >= len(actions) {
		writeError(w, http.StatusBadRequest, "action index out of range")
		return
	}

	ok := holdem.ApplyAction(s.state, actions[req.Index])
	if ok {
		s.logger.Debug("action applied", "history", holdem.FormatHistory(s.state))
		s.hub.broadcast(toStateDTO(s.state))
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": ok})
}

func (s *Server) handleApplyRandomAction(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		writeError(w, http.StatusNotFound, "no hand in progress")
		return
	}

	a := holdem.RandomLegalAction(s.state, s.rng)
	ok := holdem.ApplyAction(s.state, a)
	if ok {
		s.logger.Debug("action applied", "history", holdem.FormatHistory(s.state))
		s.hub.broadcast(toStateDTO(s.state))
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": ok})
}

func (s *Server) handleTerminalResult(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		writeError(w, http.StatusNotFound, "no hand in progress")
		return
	}
	writeJSON(w, http.StatusOK, toTerminalDTO(holdem.TerminalPayoff(s.state)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
