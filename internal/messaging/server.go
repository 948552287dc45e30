// Package messaging runs an embedded NATS server and fans game events
// out to per-player subjects.
package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// Server is an embedded NATS broker plus an internal client
// connection. It runs as a worker: Start blocks until the context is
// cancelled.
type Server struct {
	ns   *server.Server
	conn *nats.Conn

	startupTimeout time.Duration
	host           string
	port           int
}

type ServerOpt func(*Server)

// WithPort sets the listen port. Port 0 picks a free one, which is
// what tests want.
func WithPort(port int) ServerOpt {
	return func(s *Server) { s.port = port }
}

func WithHost(host string) ServerOpt {
	return func(s *Server) { s.host = host }
}

func WithStartupTimeout(d time.Duration) ServerOpt {
	return func(s *Server) { s.startupTimeout = d }
}

func NewServer(opts ...ServerOpt) (*Server, error) {
	s := &Server{
		startupTimeout: 10 * time.Second,
		host:           "127.0.0.1",
	}

	for _, opt := range opts {
		opt(s)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   s.host,
		Port:   s.port,
		NoSigs: true, // Let the application handle signals
	})
	if err != nil {
		return nil, err
	}
	s.ns = ns

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {
	s.ns.Start()

	if !s.ns.ReadyForConnections(s.startupTimeout) {
		return fmt.Errorf("nats server not ready for connections")
	}

	conn, err := nats.Connect(s.ns.ClientURL())
	if err != nil {
		return fmt.Errorf("creating nats client connection: %w", err)
	}
	s.conn = conn

	slog.InfoContext(ctx, "nats server listening", "addr", s.ns.Addr())

	<-ctx.Done()
	s.conn.Close()
	s.ns.Shutdown()
	s.ns.WaitForShutdown()

	return nil
}

// Subscribe registers a handler for a subject and returns an
// unsubscribe function.
func (s *Server) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	if s.conn == nil {
		return nil, fmt.Errorf("nats server not started")
	}
	sub, err := s.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return func() { _ = sub.Unsubscribe() }, nil
}

// Publish sends a message to the given subject.
func (s *Server) Publish(subject string, data []byte) error {
	if s.conn == nil {
		return fmt.Errorf("nats server not started")
	}
	return s.conn.Publish(subject, data)
}
