package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	Healthz(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		p := new(mockPinger)
		p.On("Ping", mock.Anything).Return(nil).Once()

		w := httptest.NewRecorder()
		Readyz(p)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		p.AssertExpectations(t)
	})

	t.Run("store down", func(t *testing.T) {
		p := new(mockPinger)
		p.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()

		w := httptest.NewRecorder()
		Readyz(p)(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		p.AssertExpectations(t)
	})
}
