package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aleksandr-shch/sun-finance/internal/middleware"
)

func NewRouter(h *Handler, allowOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)
	r.NotFoundHandler = middleware.Metrics(http.HandlerFunc(notFound))
	r.MethodNotAllowedHandler = middleware.Metrics(http.HandlerFunc(notAllowed))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(StatusOK) }).Methods(http.MethodGet)
	r.Handle("/metrics", middleware.MetricsHandler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/clients", h.ListClients).Methods(http.MethodGet)
	api.HandleFunc("/clients", h.CreateClient).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}", h.GetClient).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", h.UpdateClient).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/clients/{id}", h.DeleteClient).Methods(http.MethodDelete)

	api.HandleFunc("/applications", h.ListApplications).Methods(http.MethodGet)
	api.HandleFunc("/applications", h.CreateApplication).Methods(http.MethodPost)
	api.HandleFunc("/applications/{id}", h.GetApplication).Methods(http.MethodGet)
	api.HandleFunc("/applications/{id}", h.UpdateApplication).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/applications/{id}", h.DeleteApplication).Methods(http.MethodDelete)

	return middleware.RequestID(middleware.CORS(allowOrigins)(r))
}
