package http

import (
	"encoding/json"
	"net/http"

	"github.com/aleksandr-shch/sun-finance/internal/domain"
	"github.com/aleksandr-shch/sun-finance/internal/dto"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", dto.ContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, description string) {
	writeJSON(w, status, dto.NewErrorResponse(description))
}

func writeViolations(w http.ResponseWriter, vs []domain.Violation) {
	writeJSON(w, StatusUnprocessableEntity, dto.NewViolationList(vs))
}
