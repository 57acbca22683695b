//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"borrowing-service/internal/handler"
	"borrowing-service/internal/handler/api"
	"borrowing-service/internal/pkg/config"
	"borrowing-service/internal/usecase/queries"
	"borrowing-service/tests/common/builder"
	"borrowing-service/tests/common/httptest"
	commandsmock "borrowing-service/tests/mock/commands"
	queriesmock "borrowing-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *queriesmock.MockBorrowingQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockBorrowingQueries(ctrl)
	h := api.NewBorrowingHandler(commandsmock.NewMockBorrowingCommands(ctrl), q)

	engine := gin.New()
	handler.NewRouter(engine, config.NewTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), h)
	return engine, q
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Service is healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	router, q := newTestRouter(t)
	q.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(builder.NewBorrowingBuilder().WithID(3).BuildView(), nil)

	w := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/v1/borrowings/3", nil,
		map[string]string{"X-Request-ID": "req-123"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestRouter_BookUnitRoute(t *testing.T) {
	router, q := newTestRouter(t)
	q.EXPECT().ListByBookUnit(gomock.Any(), int64(9)).Return([]*queries.BorrowingView{}, nil)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/v1/book-units/9/borrowings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/v1/reservations", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
