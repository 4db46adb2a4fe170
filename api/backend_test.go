package api

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/codesbysuraj/Quickart/session"
	"github.com/codesbysuraj/Quickart/ui"
	"github.com/codesbysuraj/Quickart/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer runs a stand-in for the QuickKart backend: a gin engine
// with the backend's permissive CORS, serving whatever routes a test
// registers.
func newTestServer(t *testing.T, register func(r *gin.Engine)) *httptest.Server {
	t.Helper()
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	if register != nil {
		register(r)
	}
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string, opts ...func(*Config)) (*Client, *session.FileStore) {
	t.Helper()
	log := utils.NewLogger(io.Discard, "test")
	store, err := session.NewFileStore(t.TempDir(), log)
	require.NoError(t, err)

	cfg := Config{
		BaseURL:  baseURL,
		Sessions: store,
		Toasts:   ui.NewNotificationCenter(io.Discard),
		Logger:   log,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg), store
}
