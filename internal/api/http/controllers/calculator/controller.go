package calculator

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lizzyShop/internal/api/http/middlewares"
	"lizzyShop/internal/domain"
	"lizzyShop/internal/ports"
)

// Controller — маршруты калькулятора: calculate, history.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/calculate", c.calculate)
	api.GET("/history", c.history)
}

// @Summary Выполнить вычисление
// @Description Принимает два целых числа и операцию (add, subtract, multiply, divide), возвращает результат.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Параметры вычисления"
// @Success 200 {object} CalculateResponse "Результат вычисления"
// @Failure 400 {object} CalculateResponse "Невалидный запрос или запрещённая операция"
// @Failure 422 {object} CalculateResponse "Деление на ноль"
// @Failure 500 {object} CalculateResponse "Внутренняя ошибка сервера"
// @Router /api/v1/calculate [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, CalculateResponse{Error: "invalid request: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.log.Warn("calculate validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, CalculateResponse{Error: err.Error()})
		return
	}

	label := domain.NormalizeOperation(req.Operation)
	op, err := c.uc.Calculate(ctx.Request.Context(), *req.Number1, *req.Number2, req.Operation)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDivisionByZero):
			c.log.Warn("calculate division by zero", "error", err)
			middlewares.OperationOutcomes.WithLabelValues(label, "division_by_zero").Inc()
			ctx.JSON(http.StatusUnprocessableEntity, CalculateResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidArgument):
			c.log.Warn("calculate bad operation", "error", err)
			middlewares.OperationOutcomes.WithLabelValues("unknown", "invalid").Inc()
			ctx.JSON(http.StatusBadRequest, CalculateResponse{Error: err.Error()})
		default:
			c.log.Error("calculate failed", "error", err)
			middlewares.OperationOutcomes.WithLabelValues(label, "error").Inc()
			ctx.JSON(http.StatusInternalServerError, CalculateResponse{Error: err.Error()})
		}
		return
	}
	middlewares.OperationOutcomes.WithLabelValues(op.Operation, "ok").Inc()
	ctx.JSON(http.StatusOK, CalculateResponse{Operation: op.Operation, Result: op.Result})
}

// @Summary Получить историю операций
// @Description Возвращает список выполненных операций, последние сначала
// @Tags calculator
// @Produce json
// @Success 200 {object} HistoryResponse "Список операций"
// @Failure 500 {object} CalculateResponse "Внутренняя ошибка сервера"
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, CalculateResponse{Error: err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, op := range list {
		items[i] = HistoryItem{
			ID:        op.ID,
			Number1:   op.Number1,
			Number2:   op.Number2,
			Operation: op.Operation,
			Result:    op.Result,
			Timestamp: op.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
