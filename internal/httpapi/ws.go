package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

// idleTimeout closes a spectator connection that has gone quiet, the same
// quartz-clock-driven pattern the teacher uses to time out a stalled
// network agent rather than leaking the goroutine forever.
const idleTimeout = 2 * time.Minute

// spectatorHub broadcasts every state change to connected spectators. It
// is supplemental: no route in the fixed contract depends on it, and a
// server with no spectators attached behaves identically without it.
type spectatorHub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock

	mu      sync.Mutex
	clients map[*spectatorConn]struct{}
}

type spectatorConn struct {
	conn  *websocket.Conn
	timer *quartz.Timer
	send  chan stateDTO
	done  chan struct{}
}

func newSpectatorHub(logger *log.Logger) *spectatorHub {
	return &spectatorHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:  logger.WithPrefix("httpapi.ws"),
		clock:   quartz.NewReal(),
		clients: make(map[*spectatorConn]struct{}),
	}
}

func (h *spectatorHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("upgrade failed", "error", err)
		return
	}

	sc := &spectatorConn{conn: conn, send: make(chan stateDTO, 4), done: make(chan struct{})}
	sc.timer = h.clock.AfterFunc(idleTimeout, func() { h.drop(sc) })

	h.mu.Lock()
	h.clients[sc] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(sc)
}

func (h *spectatorHub) writeLoop(sc *spectatorConn) {
	defer sc.conn.Close()
	for {
		select {
		case dto := <-sc.send:
			sc.timer.Reset(idleTimeout)
			if err := sc.conn.WriteJSON(dto); err != nil {
				h.drop(sc)
				return
			}
		case <-sc.done:
			return
		}
	}
}

func (h *spectatorHub) drop(sc *spectatorConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[sc]; !ok {
		return
	}
	delete(h.clients, sc)
	sc.timer.Stop()
	close(sc.done)
}

func (h *spectatorHub) broadcast(dto stateDTO) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sc := range h.clients {
		select {
		case sc.send <- dto:
		default:
			h.logger.Warn("spectator send buffer full, dropping update")
		}
	}
}
