package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ClinicDesk/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureServer(t *testing.T) *server.Options {
	t.Helper()
	isTest = true
	t.Setenv("STORE", "memory")
	t.Setenv("VIEWS_DIR", t.TempDir())
	t.Setenv("UPLOADS_DIR", t.TempDir())

	captured := &server.Options{}
	original := startServer
	startServer = func(opts server.Options) error {
		*captured = opts
		return nil
	}
	t.Cleanup(func() {
		startServer = original
		isTest = false
	})
	return captured
}

func TestRun_Serve(t *testing.T) {
	opts := captureServer(t)
	require.NoError(t, run(nil))

	assert.True(t, opts.WebServerEnabled)
	assert.Equal(t, "3000", opts.WebServerPort)
	assert.False(t, opts.JobsEnabled)
	assert.False(t, opts.MigrationEnabled, "the memory store has nothing to migrate")
	require.NoError(t, opts.JobsHandler())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	opts.WebServerPreHandler(r)
	assert.NotEmpty(t, r.Routes())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRun_Migrate(t *testing.T) {
	opts := captureServer(t)
	require.NoError(t, run([]string{"migrate"}))

	assert.True(t, opts.MigrationEnabled)
	assert.False(t, opts.WebServerEnabled)
	require.NoError(t, opts.MigrationHandler())
}

func TestRun_CreateUser(t *testing.T) {
	captureServer(t)
	require.NoError(t, run([]string{"create-user", "--username", "admin", "--password", "s3cret"}))
	assert.Error(t, run([]string{"create-user", "--username", "admin"}))
}
