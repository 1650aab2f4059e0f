package http

import (
	"net/http"

	"github.com/aleksandr-shch/sun-finance/internal/dto"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/log"
)

func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		fail(w, r, "list_applications", err)
		return
	}
	rows, total, err := h.Applications.List(r.Context(), page, h.PageSize)
	if err != nil {
		fail(w, r, "list_applications", err)
		return
	}
	log.Info.Printf("list_applications ok page=%d total=%d", page, total)
	writeJSON(w, StatusOK, dto.NewApplicationCollection(rows, total, page, h.PageSize))
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		fail(w, r, "get_application", err)
		return
	}
	a, err := h.Applications.Get(r.Context(), id)
	if err != nil {
		fail(w, r, "get_application", err)
		return
	}
	log.Info.Printf("get_application ok id=%d", id)
	writeJSON(w, StatusOK, dto.NewApplicationResponse(*a, false))
}

func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplicationRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, r, "create_application", err)
		return
	}
	a, err := h.Applications.Create(r.Context(), req.Patch())
	if err != nil {
		fail(w, r, "create_application", err)
		return
	}
	log.Info.Printf("create_application ok id=%d client_id=%d", a.ID, a.ClientID)
	w.Header().Set("Location", dto.ApplicationIRI(a.ID))
	writeJSON(w, StatusCreated, dto.NewApplicationResponse(*a, false))
}

func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		fail(w, r, "update_application", err)
		return
	}
	var req dto.ApplicationRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, r, "update_application", err)
		return
	}
	a, err := h.Applications.Update(r.Context(), id, req.Patch())
	if err != nil {
		fail(w, r, "update_application", err)
		return
	}
	log.Info.Printf("update_application ok id=%d", id)
	writeJSON(w, StatusOK, dto.NewApplicationResponse(*a, false))
}

func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		fail(w, r, "delete_application", err)
		return
	}
	if err := h.Applications.Delete(r.Context(), id); err != nil {
		fail(w, r, "delete_application", err)
		return
	}
	log.Info.Printf("delete_application ok id=%d", id)
	w.WriteHeader(StatusNoContent)
}
