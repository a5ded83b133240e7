// Package debug provides a websocket server that streams the
// instructions executed by a cpu.CPU to any number of clients.
package debug

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Server broadcasts trace lines to connected websocket clients.
type Server struct {
	clients              map[*client]bool
	connected            atomic.Int32
	broadcast            chan []byte
	register, unregister chan *client
	done                 chan struct{}

	mu    sync.Mutex // guards cache
	cache *cache

	log log.Logger
}

// NewServer returns a Server that suppresses any line identical to
// one of the last cacheSize lines it sent. A cacheSize of 0 or 1
// disables deduplication.
func NewServer(logger log.Logger, cacheSize int) *Server {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Server{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		cache:      newCache(cacheSize),
		log:        logger,
	}
}

// Trace queues t for broadcast. It never blocks, so lines are dropped
// when clients fall behind. Its signature matches cpu.Tracer.
func (s *Server) Trace(t cpu.Trace) {
	line := []byte(t.String())

	s.mu.Lock()
	hash := xxhash.Sum64(line)
	if s.cache.has(hash) {
		s.mu.Unlock()
		return
	}
	s.cache.add(hash)
	s.mu.Unlock()

	select {
	case s.broadcast <- line:
	default:
	}
}

// Clients returns the number of registered clients.
func (s *Server) Clients() int {
	return int(s.connected.Load())
}

func (s *Server) setDeduplicate(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.enabled = enabled && len(s.cache.hashes) > 1
	s.cache.reset()
	s.log.Debugf("trace deduplication: %t", s.cache.enabled)
}

func (s *Server) deduplicating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.enabled
}

// ServeHTTP upgrades the request to a websocket connection and
// registers the client with the hub.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	c := s.newClient(conn, r)
	select {
	case s.register <- c:
	case <-s.done:
		conn.Close()
		return
	}

	go c.readPump()
	go c.writePump()
}

// Run handles client registration and broadcasting until ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			for c := range s.clients {
				s.remove(c)
			}
			return
		case c := <-s.register:
			s.clients[c] = true
			s.connected.Add(1)
			s.log.Infof("client connected: %s", c.remoteAddr)
		case c := <-s.unregister:
			if _, ok := s.clients[c]; ok {
				s.remove(c)
				s.log.Infof("client disconnected: %s", c.remoteAddr)
			}
		case msg := <-s.broadcast:
			for c := range s.clients {
				select {
				case c.send <- msg:
				default:
					s.log.Errorf("client %s too slow, disconnecting", c.remoteAddr)
					s.remove(c)
				}
			}
		}
	}
}

func (s *Server) remove(c *client) {
	close(c.send)
	delete(s.clients, c)
	s.connected.Add(-1)
}

// ListenAndServe runs the hub and serves websocket clients on addr
// until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 5 * time.Second}

	hubCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.Run(hubCtx)

	go func() {
		<-hubCtx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	s.log.Infof("serving trace on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
