package checkout

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lizzyShop/internal/api/http/middlewares"
	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

// Controller — маршруты оформления заказа: checkout, checkouts.
type Controller struct {
	uc  ports.ICheckoutUseCase
	log *slog.Logger
}

// New создаёт контроллер оформления.
func New(uc ports.ICheckoutUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/checkout", c.checkout)
	api.GET("/checkouts", c.history)
}

// @Summary Оформить заказ
// @Description Проверяет склад, считает сумму и списывает оплату. Отказ склада или платежа — 200 с success=false.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Количество и цена за единицу"
// @Success 200 {object} CheckoutResponse
// @Failure 400 {object} CheckoutResponse "Невалидный запрос"
// @Failure 500 {object} CheckoutResponse "Внутренняя ошибка сервера"
// @Router /api/v1/checkout [post]
func (c *Controller) checkout(ctx *gin.Context) {
	var req CheckoutRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("checkout bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, CheckoutResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.log.Warn("checkout validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, CheckoutResponse{Error: err.Error()})
		return
	}

	rec, err := c.uc.Checkout(ctx.Request.Context(), *req.ItemCount, *req.UnitPrice)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			c.log.Warn("checkout bad input", "error", err)
			middlewares.CheckoutOutcomes.WithLabelValues("invalid").Inc()
			ctx.JSON(http.StatusBadRequest, CheckoutResponse{Error: err.Error()})
			return
		}
		c.log.Error("checkout failed", "error", err)
		middlewares.CheckoutOutcomes.WithLabelValues("error").Inc()
		ctx.JSON(http.StatusInternalServerError, CheckoutResponse{Error: err.Error()})
		return
	}

	middlewares.CheckoutOutcomes.WithLabelValues(outcome(rec)).Inc()
	ctx.JSON(http.StatusOK, CheckoutResponse{
		ID:      rec.ID,
		Success: rec.Success,
		State:   string(rec.State),
		Total:   rec.Total,
	})
}

// outcome — метка для метрики: склад отказал, платёж отклонён или заказ оформлен.
func outcome(rec *domain.Checkout) string {
	switch {
	case rec.State == domain.CheckoutRejected:
		return "rejected"
	case !rec.Success:
		return "declined"
	default:
		return "completed"
	}
}

// @Summary История оформлений
// @Tags checkout
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} CheckoutResponse "Внутренняя ошибка сервера"
// @Router /api/v1/checkouts [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("checkouts history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, CheckoutResponse{Error: err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, ch := range list {
		items[i] = HistoryItem{
			ID:        ch.ID,
			ItemCount: ch.ItemCount,
			UnitPrice: ch.UnitPrice,
			Total:     ch.Total,
			State:     string(ch.State),
			Success:   ch.Success,
			Timestamp: ch.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
