package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	ginhandler "user-rest-service/internal/adapter/gin/handler"
	"user-rest-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Port: "0"}}
	log := zaptest.NewLogger(t)
	health := ginhandler.NewHealthHandler("user-rest-service", nil)
	srv := New(cfg, log, ginhandler.NewUserHandler(nil, log), health, nil)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StartListenError(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	_, port, err := net.SplitHostPort(lis.Addr().String())
	require.NoError(t, err)

	cfg := &config.Config{App: config.AppConfig{Port: port}}
	log := zaptest.NewLogger(t)
	srv := New(cfg, log, ginhandler.NewUserHandler(nil, log), ginhandler.NewHealthHandler("user-rest-service", nil), nil)
	srv.HTTP.Addr = "127.0.0.1:" + port

	err = srv.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
