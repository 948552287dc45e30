package listener

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketListener serves the browser transport: each connection is
// upgraded and adapted to the same line-oriented session the other
// listeners use.
type WebSocketListener struct {
	port     uint16
	cm       *ConnectionManager
	upgrader websocket.Upgrader
}

func NewWebSocketListener(port uint16, cm *ConnectionManager) *WebSocketListener {
	return &WebSocketListener{
		port: port,
		cm:   cm,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (l *WebSocketListener) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", l.handleUpgrade(ctx))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", l.port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.InfoContext(ctx, "listening for websocket", "port", l.port)

	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (l *WebSocketListener) handleUpgrade(ctx context.Context) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := l.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		l.cm.AcceptConnection(ctx, &wsReadWriter{conn: conn})
	}
}

// wsReadWriter adapts a websocket connection to the io.ReadWriter the
// session layer reads lines from. Each inbound text message is treated
// as one line; writes go out as single text messages.
type wsReadWriter struct {
	conn *websocket.Conn
	buf  bytes.Buffer
}

func (w *wsReadWriter) Read(p []byte) (int, error) {
	for w.buf.Len() == 0 {
		msgType, data, err := w.conn.ReadMessage()
		if err != nil {
			return 0, err
		}
		if msgType != websocket.TextMessage {
			continue
		}
		w.buf.Write(data)
		if len(data) == 0 || data[len(data)-1] != '\n' {
			w.buf.WriteByte('\n')
		}
	}
	return w.buf.Read(p)
}

func (w *wsReadWriter) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// RemoteAddr reports the peer address for identity fallback.
func (w *wsReadWriter) RemoteAddr() net.Addr {
	return w.conn.RemoteAddr()
}

var _ io.ReadWriter = (*wsReadWriter)(nil)
