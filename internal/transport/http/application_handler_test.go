package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
	"github.com/aleksandr-shch/sun-finance/internal/mocks"
	"github.com/aleksandr-shch/sun-finance/internal/usecase"
	"github.com/aleksandr-shch/sun-finance/internal/validation"
)

var loan = domain.Application{ID: 5, ClientID: 320, Term: 10, Amount: decimal.RequireFromString("100"), Currency: "USD"}

func TestHandler_CreateApplication(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.ApplicationUsecase)
		wantStatus int
		assertBody func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "201_with_iri",
			body: `{"clientId":"/api/clients/320","term":10,"amount":100.00,"currency":"USD"}`,
			setupMock: func(m *mocks.ApplicationUsecase) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(p domain.ApplicationPatch) bool {
					return *p.ClientID == 320 && *p.Term == 10 && p.Amount.Equal(decimal.NewFromInt(100)) && *p.Currency == "USD"
				})).Return(&loan, nil).Once()
			},
			wantStatus: http.StatusCreated,
			assertBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, "/api/applications/5", rr.Header().Get("Location"))
				assert.Contains(t, rr.Body.String(), `"amount":100.00`)
				body := decode(t, rr.Body.Bytes())
				assert.Equal(t, "/api/contexts/Application", body["@context"])
				assert.Equal(t, "/api/clients/320", body["clientId"])
				assert.Equal(t, float64(10), body["term"])
			},
		},
		{
			name:       "400_term_as_string",
			body:       `{"clientId":"/api/clients/320","term":"ten"}`,
			setupMock:  func(m *mocks.ApplicationUsecase) {},
			wantStatus: http.StatusBadRequest,
			assertBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, `The type of the "term" attribute must be "int", "string" given.`,
					decode(t, rr.Body.Bytes())["hydra:description"])
			},
		},
		{
			name:       "400_bad_iri",
			body:       `{"clientId":"/api/users/1"}`,
			setupMock:  func(m *mocks.ApplicationUsecase) {},
			wantStatus: http.StatusBadRequest,
			assertBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, `Invalid IRI "/api/users/1".`, decode(t, rr.Body.Bytes())["hydra:description"])
			},
		},
		{
			name: "422_unknown_client",
			body: `{"clientId":"/api/clients/999","term":10,"amount":100,"currency":"USD"}`,
			setupMock: func(m *mocks.ApplicationUsecase) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, domain.NewValidationError(
					domain.Violation{Field: "clientId", Message: validation.MsgClientNotFound},
				)).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			assertBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				body := decode(t, rr.Body.Bytes())
				assert.Equal(t, "clientId: Client not found.", body["hydra:description"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewApplicationUsecase(t)
			tt.setupMock(uc)
			h := NewHandler(nil, uc, 30)

			rr := httptest.NewRecorder()
			h.CreateApplication(rr, httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			tt.assertBody(t, rr)
		})
	}
}

func TestHandler_ListApplications(t *testing.T) {
	uc := mocks.NewApplicationUsecase(t)
	uc.On("List", mock.Anything, 2, 30).Return([]domain.Application{loan}, int32(31), nil).Once()
	h := NewHandler(nil, uc, 30)

	rr := httptest.NewRecorder()
	h.ListApplications(rr, httptest.NewRequest(http.MethodGet, "/api/applications?page=2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr.Body.Bytes())
	assert.Equal(t, float64(31), body["hydra:totalItems"])
	members := body["hydra:member"].([]any)
	require.Len(t, members, 1)
	assert.Equal(t, "/api/applications/5", members[0].(map[string]any)["@id"])
	view := body["hydra:view"].(map[string]any)
	assert.Equal(t, "/api/applications?page=2", view["@id"])
	assert.Equal(t, "/api/applications?page=1", view["hydra:previous"])
	assert.NotContains(t, view, "hydra:next")
}

func TestHandler_UpdateApplication(t *testing.T) {
	uc := mocks.NewApplicationUsecase(t)
	updated := loan
	updated.Currency = "RUB"
	uc.On("Update", mock.Anything, int32(5), mock.MatchedBy(func(p domain.ApplicationPatch) bool {
		return p.Currency != nil && *p.Currency == "RUB" && p.Term == nil && p.Amount == nil && p.ClientID == nil
	})).Return(&updated, nil).Once()
	h := NewHandler(nil, uc, 30)

	req := httptest.NewRequest(http.MethodPatch, "/api/applications/5", bytes.NewBufferString(`{"currency":"RUB"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rr := httptest.NewRecorder()
	h.UpdateApplication(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "RUB", decode(t, rr.Body.Bytes())["currency"])
}

func TestHandler_GetDeleteApplication(t *testing.T) {
	uc := mocks.NewApplicationUsecase(t)
	uc.On("Delete", mock.Anything, int32(5)).Return(nil).Once()
	uc.On("Get", mock.Anything, int32(5)).Return(nil, domain.ErrNotFound).Once()
	h := NewHandler(nil, uc, 30)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/applications/5", nil), map[string]string{"id": "5"})
	rr := httptest.NewRecorder()
	h.DeleteApplication(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/applications/5", nil), map[string]string{"id": "5"})
	rr = httptest.NewRecorder()
	h.GetApplication(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "hydra:Error", decode(t, rr.Body.Bytes())["@type"])
}

func TestHandler_ApplicationAmountExtremes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		setupMock  func(m *mocks.ApplicationRepository)
		wantStatus int
		wantDesc   string
	}{
		{
			name:   "create_huge_exponent",
			method: http.MethodPost,
			body:   `{"clientId":"/api/clients/320","term":10,"amount":1e200000000,"currency":"USD"}`,
			setupMock: func(m *mocks.ApplicationRepository) {
				m.On("ClientExists", mock.Anything, int32(320)).Return(true, nil).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantDesc:   "amount: This value should be between 100 and 5000.",
		},
		{
			name:   "patch_tiny_exponent_as_string",
			method: http.MethodPatch,
			body:   `{"amount":"1e-200000000"}`,
			setupMock: func(m *mocks.ApplicationRepository) {
				m.On("GetApplication", mock.Anything, int32(5)).Return(&loan, nil).Once()
				m.On("ClientExists", mock.Anything, int32(320)).Return(true, nil).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantDesc:   "amount: This value should be between 100 and 5000.",
		},
		{
			name:       "oversized_body",
			method:     http.MethodPost,
			body:       `{"amount":` + strings.Repeat("9", maxBodyBytes) + `}`,
			setupMock:  func(m *mocks.ApplicationRepository) {},
			wantStatus: http.StatusBadRequest,
			wantDesc:   MsgInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewApplicationRepository(t)
			tt.setupMock(repo)
			h := NewHandler(nil, usecase.NewApplicationUC(repo, validation.New()), 30)

			req := httptest.NewRequest(tt.method, "/api/applications/5", bytes.NewBufferString(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": "5"})
			rr := httptest.NewRecorder()

			start := time.Now()
			if tt.method == http.MethodPost {
				h.CreateApplication(rr, req)
			} else {
				h.UpdateApplication(rr, req)
			}
			assert.Less(t, time.Since(start), 2*time.Second)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantDesc, decode(t, rr.Body.Bytes())["hydra:description"])
		})
	}
}
