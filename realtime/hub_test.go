package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventra/utils"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	utils.Logger = zap.NewNop()
}

func newTestServer(t *testing.T, h *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		Serve(h, r.URL.Query().Get("chat"), "u1", conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, chatID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?chat=" + chatID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForRoom(t *testing.T, h *Hub, chatID string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.RoomSize(chatID) == n }, 2*time.Second, 10*time.Millisecond)
}

func TestBroadcastReachesRoomOnly(t *testing.T) {
	h := NewHub()
	srv := newTestServer(t, h)

	a := dial(t, srv, "c1")
	b := dial(t, srv, "c2")
	waitForRoom(t, h, "c1", 1)
	waitForRoom(t, h, "c2", 1)

	h.Broadcast("c1", map[string]string{"content": "hello"})

	require.NoError(t, a.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got map[string]string
	require.NoError(t, a.ReadJSON(&got))
	assert.Equal(t, "hello", got["content"])

	require.NoError(t, b.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := b.ReadMessage()
	assert.Error(t, err, "subscriber of another chat must not receive the message")
}

func TestClientLeavesOnDisconnect(t *testing.T) {
	h := NewHub()
	srv := newTestServer(t, h)

	conn := dial(t, srv, "c1")
	waitForRoom(t, h, "c1", 1)

	require.NoError(t, conn.Close())
	waitForRoom(t, h, "c1", 0)
}

func TestCloseIsIdempotent(t *testing.T) {
	h := NewHub()
	c := &Client{hub: h, chatID: "c1", send: make(chan []byte, 1)}
	h.Join("c1", c)

	c.Close()
	c.Close()
	assert.Equal(t, 0, h.RoomSize("c1"))
	assert.True(t, c.enqueue([]byte("late")))
}
