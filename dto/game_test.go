package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealConnConcurrentWrites(t *testing.T) {
	const writers, perWriter = 8, 100

	serverConn := make(chan *RealConn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConn <- &RealConn{Conn: conn}
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	var rc *RealConn
	select {
	case rc = <-serverConn:
	case <-time.After(5 * time.Second):
		t.Fatal("server connection not established")
	}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				assert.NoError(t, rc.WriteMessage(websocket.TextMessage, []byte(`{"type":"sync"}`)))
			}
		}()
	}

	received := 0
	for received < writers*perWriter {
		client.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, data, err := client.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, `{"type":"sync"}`, string(data))
		received++
	}
	wg.Wait()
	assert.NoError(t, rc.Close())
}
