package listener

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"syscall"

	"github.com/iammegalith/telnet"
	"github.com/pixil98/go-log"
	"github.com/sirupsen/logrus"
)

// TelnetListener is the street-level transport: plain telnet, one
// player session per connection.
type TelnetListener struct {
	port uint16
	cm   *ConnectionManager
}

func NewTelnetListener(port uint16, cm *ConnectionManager) *TelnetListener {
	return &TelnetListener{
		port: port,
		cm:   cm,
	}
}

func (l *TelnetListener) Start(ctx context.Context) error {
	// Live sessions share one cancelable context so shutdown reaps
	// them together after the server stops accepting.
	sessCtx, cancelSessions := context.WithCancel(context.Background())

	h := &telnetSessions{
		accept: l.cm.AcceptConnection,
		logger: log.GetLogger(ctx).WithField("transport", "telnet"),
		ctx:    sessCtx,
		cancel: cancelSessions,
	}

	svr := telnet.NewServer(fmt.Sprintf(":%d", l.port), h)

	// done signals that Start is returning, with or without an error.
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			svr.Stop()
			h.Stop()
		case <-done:
		}
	}()

	if err := svr.ListenAndServe(); err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("port %d is already in use (another server running?)", l.port)
		}
		return fmt.Errorf("serving telnet on port %d: %w", l.port, err)
	}
	return nil
}

// telnetSessions runs one player session per accepted connection and
// waits for all of them on shutdown.
type telnetSessions struct {
	wg     sync.WaitGroup
	accept func(context.Context, io.ReadWriter)
	logger logrus.FieldLogger
	ctx    context.Context
	cancel context.CancelFunc
}

func (h *telnetSessions) HandleTelnet(conn *telnet.Connection) {
	h.wg.Add(1)
	defer h.wg.Done()

	logger := h.logger
	if ra, ok := any(conn).(interface{ RemoteAddr() net.Addr }); ok {
		logger = logger.WithField("remote", ra.RemoteAddr().String())
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Errorf("closing telnet connection: %s", err)
		}
	}()

	logger.Info("jacked in")
	h.accept(log.SetLogger(h.ctx, logger), conn)
	logger.Info("jacked out")
}

func (h *telnetSessions) Stop() {
	h.cancel()
	h.wg.Wait()
}
