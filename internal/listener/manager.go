package listener

import (
	"context"
	"io"
	"log/slog"
	"net"

	"github.com/nightgrid/neonmud/internal/player"
)

// ConnectionManager hands accepted connections to the player session
// layer. Every transport (telnet, ssh, websocket) funnels through it.
type ConnectionManager struct {
	pm *player.Manager
}

func NewConnectionManager(pm *player.Manager) *ConnectionManager {
	return &ConnectionManager{
		pm: pm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	addr := ""
	if ra, ok := conn.(interface{ RemoteAddr() net.Addr }); ok {
		addr = ra.RemoteAddr().String()
	}
	if err := m.pm.RunSession(ctx, conn, addr); err != nil {
		slog.WarnContext(ctx, "player session", "remote", addr, "error", err)
	}
}
