package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestClient upgrades a loopback connection and wraps the client side.
// The server-side conn is returned so tests can force a peer disconnect.
func dialTestClient(t *testing.T) (*WebSocketClient, *websocket.Conn, *httptest.Server) {
	t.Helper()

	peer := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		peer <- conn
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	client := &WebSocketClient{
		conn: conn,
		send: make(chan []byte, 256),
		done: make(chan struct{}),
	}

	select {
	case serverConn := <-peer:
		return client, serverConn, srv
	case <-time.After(2 * time.Second):
		t.Fatal("server side never upgraded")
		return nil, nil, nil
	}
}

func TestCloseConnectionIdempotent(t *testing.T) {
	client, serverConn, srv := dialTestClient(t)
	defer srv.Close()
	defer serverConn.Close()

	assert.NotPanics(t, func() {
		client.closeConnection()
		client.closeConnection()
		client.closeConnection()
	})

	select {
	case <-client.done:
	default:
		t.Fatal("done channel not closed")
	}
}

func TestPumpsShutDownOnPeerDisconnect(t *testing.T) {
	client, serverConn, srv := dialTestClient(t)
	defer srv.Close()

	go client.writePump()
	go client.readPump()

	// Peer drops the connection; the read pump detects it and both pumps
	// run their close path without panicking
	serverConn.Close()

	select {
	case <-client.done:
	case <-time.After(2 * time.Second):
		t.Fatal("pumps did not shut down after peer disconnect")
	}

	// The handler's error path may close again after the pumps already have
	assert.NotPanics(t, client.closeConnection)
}

func TestEnqueueAfterCloseDoesNotPanic(t *testing.T) {
	client, serverConn, srv := dialTestClient(t)
	defer srv.Close()
	defer serverConn.Close()

	client.closeConnection()

	// An in-flight event callback arriving after shutdown is dropped
	assert.NotPanics(t, func() {
		client.enqueue([]byte(`{"type":"jot_action"}`))
	})
}
