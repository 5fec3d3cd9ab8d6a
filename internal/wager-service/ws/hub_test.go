package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(func(r *http.Request) bool { return true })
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

// subscribe registra a conexão e aguarda o pong: o loop de leitura processa
// mensagens em ordem, então o pong garante que a inscrição foi aplicada
func subscribe(t *testing.T, conn *websocket.Conn, matchID string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "subscribe", MatchID: matchID}))
	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "ping"}))
	var pong map[string]string
	require.NoError(t, conn.ReadJSON(&pong))
	require.Equal(t, "pong", pong["type"])
}

func TestSubscriberReceivesBroadcast(t *testing.T) {
	hub, srv := newTestHub(t)

	conn := dialWS(t, srv)
	defer conn.Close()
	subscribe(t, conn, "brasil-vs-argentina")

	hub.Broadcast(ActivityUpdate{MatchID: "brasil-vs-argentina", Kind: "wager_placed"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var upd ActivityUpdate
	require.NoError(t, conn.ReadJSON(&upd))
	require.Equal(t, "brasil-vs-argentina", upd.MatchID)
	require.Equal(t, "wager_placed", upd.Kind)
}

func TestBroadcastIgnoresOtherMatches(t *testing.T) {
	hub, srv := newTestHub(t)

	conn := dialWS(t, srv)
	defer conn.Close()
	subscribe(t, conn, "brasil-vs-argentina")

	hub.Broadcast(ActivityUpdate{MatchID: "chile-vs-peru", Kind: "wager_placed"})

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var upd ActivityUpdate
	require.Error(t, conn.ReadJSON(&upd))
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub, srv := newTestHub(t)

	conn := dialWS(t, srv)
	defer conn.Close()
	subscribe(t, conn, "brasil-vs-argentina")

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "unsubscribe", MatchID: "brasil-vs-argentina"}))
	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "ping"}))
	var pong map[string]string
	require.NoError(t, conn.ReadJSON(&pong))

	hub.Broadcast(ActivityUpdate{MatchID: "brasil-vs-argentina", Kind: "wager_placed"})

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var upd ActivityUpdate
	require.Error(t, conn.ReadJSON(&upd))
}

// Clientes desconectando no meio de um broadcast não podem derrubar o hub:
// o conjunto de inscritos é copiado sob o lock antes das escritas
func TestBroadcastDuringDisconnects(t *testing.T) {
	hub, srv := newTestHub(t)

	const clients = 50
	conns := make([]*websocket.Conn, 0, clients)
	for i := 0; i < clients; i++ {
		conn := dialWS(t, srv)
		subscribe(t, conn, "brasil-vs-argentina")
		conns = append(conns, conn)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			hub.Broadcast(ActivityUpdate{MatchID: "brasil-vs-argentina", Kind: "wager_placed"})
		}
	}()
	go func() {
		defer wg.Done()
		for _, conn := range conns {
			conn.Close()
		}
	}()
	wg.Wait()
}

// Broadcasts e pongs na mesma conexão são serializados pelo mutex de escrita
func TestConcurrentBroadcastAndPing(t *testing.T) {
	hub, srv := newTestHub(t)

	conn := dialWS(t, srv)
	defer conn.Close()
	subscribe(t, conn, "brasil-vs-argentina")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			hub.Broadcast(ActivityUpdate{MatchID: "brasil-vs-argentina", Kind: "wager_placed"})
		}
	}()
	for i := 0; i < 100; i++ {
		require.NoError(t, conn.WriteJSON(ClientMsg{Type: "ping"}))
	}
	wg.Wait()

	// Drena as respostas: todas devem ser quadros JSON válidos
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < 200; i++ {
		var raw map[string]interface{}
		require.NoError(t, conn.ReadJSON(&raw))
	}
}
