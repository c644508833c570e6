package checkout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lizzyShop/internal/domain"
	"lizzyShop/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newRouter(uc *mocks.MockICheckoutUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(uc, newTestLogger()).RegisterRoutes(r)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// priceEq сравнивает decimal по значению, а не по представлению.
type priceEq struct{ want decimal.Decimal }

func (m priceEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m priceEq) String() string { return "equals " + m.want.String() }

func TestController_Checkout(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		rec     domain.Checkout
		success bool
	}{
		{
			name:    "settled, price as string",
			body:    `{"item_count": 3, "unit_price": "9.99"}`,
			rec:     domain.Checkout{ID: "c-1", Total: decimal.RequireFromString("29.97"), State: domain.CheckoutSettled, Success: true},
			success: true,
		},
		{
			name: "rejected by stock, price as number",
			body: `{"item_count": 3, "unit_price": 9.99}`,
			rec:  domain.Checkout{ID: "c-2", Total: decimal.Zero, State: domain.CheckoutRejected},
		},
		{
			name: "declined by payment",
			body: `{"item_count": 3, "unit_price": "9.99"}`,
			rec:  domain.Checkout{ID: "c-3", Total: decimal.RequireFromString("29.97"), State: domain.CheckoutSettled},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			r := newRouter(uc)

			rec := tt.rec
			uc.EXPECT().Checkout(gomock.Any(), 3, priceEq{decimal.RequireFromString("9.99")}).Return(&rec, nil)

			w := post(r, tt.body)
			require.Equal(t, http.StatusOK, w.Code)

			var resp CheckoutResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.success, resp.Success)
			assert.Equal(t, tt.rec.ID, resp.ID)
			assert.Equal(t, string(tt.rec.State), resp.State)
			assert.True(t, resp.Total.Equal(tt.rec.Total))
		})
	}
}

func TestController_Checkout_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", fmt.Errorf("%w: item count must be positive (provided: 0)", domain.ErrInvalidArgument), http.StatusBadRequest},
		{"internal", errors.New("mongo down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			r := newRouter(uc)

			uc.EXPECT().Checkout(gomock.Any(), 0, gomock.Any()).Return(nil, tt.err)

			w := post(r, `{"item_count": 0, "unit_price": "1"}`)
			assert.Equal(t, tt.status, w.Code)

			var resp CheckoutResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.err.Error(), resp.Error)
		})
	}
}

func TestController_Checkout_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `nope`},
		{"missing price", `{"item_count": 1}`},
		{"missing count", `{"unit_price": "1"}`},
		{"bad price", `{"item_count": 1, "unit_price": "abc"}`},
		{"price exponent too large", `{"item_count": 1, "unit_price": "1e5000000"}`},
		{"price number exponent too large", `{"item_count": 1, "unit_price": 1e5000000}`},
		{"price too precise", `{"item_count": 1, "unit_price": "0.00001"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			r := newRouter(uc)

			w := post(r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestController_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	r := newRouter(uc)

	uc.EXPECT().History(gomock.Any()).Return([]domain.Checkout{
		{ID: "b", ItemCount: 150, UnitPrice: decimal.RequireFromString("5"), Total: decimal.Zero, State: domain.CheckoutRejected},
		{ID: "a", ItemCount: 100, UnitPrice: decimal.RequireFromString("5"), Total: decimal.RequireFromString("500"), State: domain.CheckoutSettled, Success: true},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/checkouts", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "rejected", resp.Items[0].State)
	assert.True(t, resp.Items[1].Total.Equal(decimal.NewFromInt(500)))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "rejected", outcome(&domain.Checkout{State: domain.CheckoutRejected}))
	assert.Equal(t, "declined", outcome(&domain.Checkout{State: domain.CheckoutSettled}))
	assert.Equal(t, "completed", outcome(&domain.Checkout{State: domain.CheckoutSettled, Success: true}))
}
