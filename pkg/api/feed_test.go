package api

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bwoff11/net-stab/pkg/history"
	"github.com/bwoff11/net-stab/pkg/models"
)

func dialLive(t *testing.T, s *APIServer) *websocket.Conn {
	t.Helper()

	url := fmt.Sprintf("ws://%s/api/live", s.Addr())

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return s.feed.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	return conn
}

func TestLiveFeedReceivesUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewAPIServer("127.0.0.1:0", history.NewMockRecorder(ctrl))
	startTestServer(t, s)

	conn := dialLive(t, s)

	defer func() { _ = conn.Close() }()

	want := testState("gw", "192.0.2.1", true)
	s.UpdateEndpointState(want)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got models.EndpointState
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Address, got.Address)
	assert.True(t, got.Available)
	assert.Equal(t, want.RespTime, got.RespTime)
}

func TestLiveFeedDropsClosedClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewAPIServer("127.0.0.1:0", history.NewMockRecorder(ctrl))
	startTestServer(t, s)

	conn := dialLive(t, s)
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return s.feed.ClientCount() == 0 }, time.Second, 5*time.Millisecond,
		"read loop must unsubscribe a disconnected client")

	// Broadcasting with no subscribers is a no-op.
	s.UpdateEndpointState(testState("gw", "192.0.2.1", true))
}

func TestStopDisconnectsLiveClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewAPIServer("127.0.0.1:0", history.NewMockRecorder(ctrl))

	errCh := make(chan error, 1)

	go func() { errCh <- s.Start(context.Background()) }()

	require.Eventually(t, func() bool { return s.Addr() != nil }, time.Second, 5*time.Millisecond)

	conn := dialLive(t, s)

	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, s.Stop(ctx))
	require.NoError(t, <-errCh)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	_, _, err := conn.ReadMessage()
	require.Error(t, err, "subscribers must be disconnected on shutdown")
}
