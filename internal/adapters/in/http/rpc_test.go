package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant/internal/pkg/errcodes"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUseCase[C, R any] struct {
	mock.Mock
}

func (m *MockUseCase[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	ret := m.Called(ctx, cmd)
	result, _ := ret.Get(0).(R)
	return result, ret.Error(1)
}

type rpcResponse struct {
	Data  json.RawMessage `json:"data"`
	Error *errcodes.Code  `json:"error"`
}

type registrar interface {
	Register(e *echo.Echo)
}

func newEcho(r registrar) *echo.Echo {
	e := echo.New()
	r.Register(e)
	return e
}

func call(t *testing.T, e *echo.Echo, pattern, body string) (int, rpcResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/rpc/"+pattern, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}
