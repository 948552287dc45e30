package listener

import (
	"bytes"
	"io"
	"net"
	"testing"

	"github.com/pixil98/go-testutil"
)

type rwBuffer struct {
	in  *bytes.Buffer
	out bytes.Buffer
}

func (b *rwBuffer) Read(p []byte) (int, error)  { return b.in.Read(p) }
func (b *rwBuffer) Write(p []byte) (int, error) { return b.out.Write(p) }

func TestLineEndingsRead(t *testing.T) {
	tests := map[string]struct {
		raw string
		exp string
	}{
		"crlf":    {raw: "go north\r\n", exp: "go north\n"},
		"bare cr": {raw: "look\r", exp: "look\n"},
		"plain":   {raw: "attack\n", exp: "attack\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rw := newCRLFReadWriter(&rwBuffer{in: bytes.NewBufferString(tt.raw)}, nil)
			got, err := io.ReadAll(rw)
			if err != nil {
				t.Fatalf("reading: %v", err)
			}
			testutil.AssertEqual(t, "normalized", string(got), tt.exp)
		})
	}
}

func TestLineEndingsWrite(t *testing.T) {
	buf := &rwBuffer{in: &bytes.Buffer{}}
	rw := newCRLFReadWriter(buf, nil)

	n, err := rw.Write([]byte("line one\nline two\n"))
	if err != nil {
		t.Fatalf("writing: %v", err)
	}
	testutil.AssertEqual(t, "reported length", n, len("line one\nline two\n"))
	testutil.AssertEqual(t, "expanded", buf.out.String(), "line one\r\nline two\r\n")
}

func TestLineEndingsCarriesRemoteAddr(t *testing.T) {
	addr := &net.TCPAddr{IP: net.IPv4(10, 0, 0, 7), Port: 2323}
	rw := newCRLFReadWriter(&rwBuffer{in: &bytes.Buffer{}}, addr)

	ra, ok := rw.(interface{ RemoteAddr() net.Addr })
	if !ok {
		t.Fatal("wrapper does not expose the peer address")
	}
	testutil.AssertEqual(t, "addr", ra.RemoteAddr().String(), addr.String())
}
