package http

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mitsuba/clubport/internal/pkg/logger"
	"github.com/mitsuba/clubport/internal/port"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Feed streams dispatch events to connected operator dashboards. Writes
// are best-effort: a broken connection is dropped, never retried.
type Feed struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewFeed() *Feed {
	return &Feed{conns: map[*websocket.Conn]struct{}{}}
}

func (f *Feed) Publish(ev port.DispatchEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.conns {
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(f.conns, conn)
		}
	}
}

func (f *Feed) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.From(r.Context()).Warn("websocket upgrade failed", "error", err)
		return
	}

	f.mu.Lock()
	f.conns[conn] = struct{}{}
	f.mu.Unlock()

	// Reads are discarded; the loop exists to notice the peer going away.
	go func() {
		defer func() {
			f.mu.Lock()
			delete(f.conns, conn)
			f.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

var _ port.DispatchPublisher = (*Feed)(nil)
