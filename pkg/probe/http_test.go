package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwoff11/net-stab/pkg/models"
)

func TestHTTPProberStatusHandling(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantAvailable bool
	}{
		{name: "ok", status: http.StatusOK, wantAvailable: true},
		{name: "no content", status: http.StatusNoContent, wantAvailable: true},
		{name: "client error still answers", status: http.StatusNotFound, wantAvailable: true},
		{name: "server error", status: http.StatusInternalServerError, wantAvailable: false},
		{name: "bad gateway", status: http.StatusBadGateway, wantAvailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			endpoint := models.Endpoint{Name: "web", Address: srv.URL, Probe: models.KindHTTP}

			prober, err := newHTTPProber(endpoint, time.Second)
			require.NoError(t, err)

			result := prober.Probe(context.Background())

			assert.Equal(t, tt.wantAvailable, result.Available)

			if tt.wantAvailable {
				assert.NoError(t, result.Error)
				assert.NotZero(t, result.RespTime)
			} else {
				require.ErrorIs(t, result.Error, errHTTPStatus)
				assert.Zero(t, result.RespTime)
			}
		})
	}
}

func TestHTTPProberAddsScheme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	hostPort := strings.TrimPrefix(srv.URL, "http://")

	prober, err := newHTTPProber(models.Endpoint{Name: "bare", Address: hostPort, Probe: models.KindHTTP}, time.Second)
	require.NoError(t, err)

	httpProber, ok := prober.(*HTTPProber)
	require.True(t, ok)
	assert.Equal(t, srv.URL, httpProber.url)

	result := prober.Probe(context.Background())
	assert.True(t, result.Available)
}

func TestHTTPProberUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	url := srv.URL

	srv.Close()

	prober, err := newHTTPProber(models.Endpoint{Name: "gone", Address: url, Probe: models.KindHTTP}, 500*time.Millisecond)
	require.NoError(t, err)

	result := prober.Probe(context.Background())

	assert.False(t, result.Available)
	require.Error(t, result.Error)
	assert.Zero(t, result.RespTime)

	require.NoError(t, prober.Close())
}
