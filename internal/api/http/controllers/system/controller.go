package system

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger — зависимость, доступность которой проверяет readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check — именованная проверка для readiness.
type Check struct {
	Name   string
	Pinger Pinger
}

// Controller — системные маршруты: liveness, readiness.
type Controller struct {
	checks []Check
	log    *slog.Logger
}

// New создаёт системный контроллер. Без проверок readiness всегда отвечает ready.
func New(log *slog.Logger, checks ...Check) *Controller {
	return &Controller{checks: checks, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	failed := gin.H{}
	for _, check := range c.checks {
		if err := check.Pinger.Ping(ctx.Request.Context()); err != nil {
			c.log.Warn("ready check failed", "check", check.Name, "error", err)
			failed[check.Name] = err.Error()
		}
	}
	if len(failed) > 0 {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "errors": failed})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
