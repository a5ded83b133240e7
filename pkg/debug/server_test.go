package debug

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// newTestServer starts a Server behind an httptest server and
// connects a single websocket client to it.
func newTestServer(t *testing.T, cacheSize int) (*Server, *websocket.Conn) {
	t.Helper()
	s := NewServer(log.NewNullLogger(), cacheSize)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go s.Run(ctx)

	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return s.Clients() == 1 }, time.Second, 5*time.Millisecond)
	return s, conn
}

func readLine(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, message, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, kind)
	return string(message)
}

func TestServer_Trace(t *testing.T) {
	s, conn := newTestServer(t, 8)

	// JR -2 spins on itself, leaving identical state behind each time
	c := cpu.NewCPU(mmu.NewMMU([]byte{0x18, 0xFE}), cpu.WithTracer(s.Trace))
	n, err := c.Run(3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	c.A = 0x01
	_, err = c.Run(1)
	require.NoError(t, err)

	first := readLine(t, conn)
	assert.True(t, strings.HasPrefix(first, "0000  JR r8"), first)
	assert.Contains(t, first, "A: 00")

	second := readLine(t, conn)
	assert.Contains(t, second, "A: 01")
}

func TestServer_DisableDeduplicate(t *testing.T) {
	s, conn := newTestServer(t, 8)
	require.True(t, s.deduplicating())

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{System, Deduplicate, 0}))
	require.Eventually(t, func() bool { return !s.deduplicating() }, time.Second, 5*time.Millisecond)

	c := cpu.NewCPU(mmu.NewMMU([]byte{0x18, 0xFE}), cpu.WithTracer(s.Trace))
	_, err := c.Run(2)
	require.NoError(t, err)

	assert.Equal(t, readLine(t, conn), readLine(t, conn))
}

func TestServer_Disconnect(t *testing.T) {
	s, conn := newTestServer(t, 0)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{Closing}))
	assert.Eventually(t, func() bool { return s.Clients() == 0 }, time.Second, 5*time.Millisecond)
}
