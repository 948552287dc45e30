package listener

import (
	"bytes"
	"io"
	"net"
)

// lineEndings adapts a transport whose line discipline is CRLF to the
// \n-terminated lines the session layer speaks. It also carries the
// peer address, which the wrapped ssh channel does not expose.
type lineEndings struct {
	rw   io.ReadWriter
	addr net.Addr
}

func newCRLFReadWriter(rw io.ReadWriter, addr net.Addr) io.ReadWriter {
	return &lineEndings{rw: rw, addr: addr}
}

// Read normalizes \r\n and bare \r to \n. Telnet-style clients send
// \r\n; some ssh clients send bare \r.
func (c *lineEndings) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n > 0 {
		data := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
		n = copy(p, data)
	}
	return n, err
}

// Write expands \n to \r\n, reporting the caller's length so the
// expansion stays invisible.
func (c *lineEndings) Write(p []byte) (int, error) {
	_, err := c.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	return len(p), err
}

// RemoteAddr reports the peer address for identity fallback.
func (c *lineEndings) RemoteAddr() net.Addr {
	return c.addr
}
