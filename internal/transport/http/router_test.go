package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
	"github.com/aleksandr-shch/sun-finance/internal/middleware"
	"github.com/aleksandr-shch/sun-finance/internal/mocks"
)

func TestNewRouter(t *testing.T) {
	clients := mocks.NewClientUsecase(t)
	apps := mocks.NewApplicationUsecase(t)
	clients.On("Get", mock.Anything, int32(36)).Return(&jane, nil).Once()
	clients.On("Update", mock.Anything, int32(36), mock.Anything).Return(&jane, nil).Twice()
	apps.On("List", mock.Anything, 1, 10).Return([]domain.Application{}, int32(0), nil).Once()

	router := NewRouter(NewHandler(clients, apps, 10), nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "get_client", method: http.MethodGet, path: "/api/clients/36", wantStatus: http.StatusOK},
		{name: "put_client", method: http.MethodPut, path: "/api/clients/36", body: `{}`, wantStatus: http.StatusOK},
		{name: "patch_client", method: http.MethodPatch, path: "/api/clients/36", body: `{}`, wantStatus: http.StatusOK},
		{name: "list_applications_custom_page_size", method: http.MethodGet, path: "/api/applications", wantStatus: http.StatusOK},
		{name: "unknown_route", method: http.MethodGet, path: "/api/loans", wantStatus: http.StatusNotFound},
		{name: "method_not_allowed", method: http.MethodPost, path: "/api/clients/36", body: `{}`, wantStatus: http.StatusMethodNotAllowed},
		{name: "preflight", method: http.MethodOptions, path: "/api/clients/36", wantStatus: http.StatusNoContent},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(middleware.HeaderRequestID))
		})
	}

	t.Run("unmatched_requests_counted", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		body := rr.Body.String()
		assert.Contains(t, body, `route="unmatched",status="404"`)
		assert.Contains(t, body, `route="unmatched",status="405"`)
	})
}
