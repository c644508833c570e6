package system

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(c *Controller, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestController(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("liveness", func(t *testing.T) {
		w := serve(New(log, Check{Name: "pg", Pinger: down}), "/liveness")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ready without checks", func(t *testing.T) {
		w := serve(New(log), "/readyness")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ready", func(t *testing.T) {
		w := serve(New(log, Check{Name: "pg", Pinger: ok}, Check{Name: "mongo", Pinger: ok}), "/readyness")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not ready", func(t *testing.T) {
		w := serve(New(log, Check{Name: "pg", Pinger: ok}, Check{Name: "mongo", Pinger: down}), "/readyness")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "mongo")
		assert.NotContains(t, w.Body.String(), `"pg"`)
	})
}
