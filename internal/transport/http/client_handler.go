package http

import (
	"net/http"

	"github.com/aleksandr-shch/sun-finance/internal/dto"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/log"
)

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		fail(w, r, "list_clients", err)
		return
	}
	rows, total, err := h.Clients.List(r.Context(), page, h.PageSize)
	if err != nil {
		fail(w, r, "list_clients", err)
		return
	}
	log.Info.Printf("list_clients ok page=%d total=%d", page, total)
	writeJSON(w, StatusOK, dto.NewClientCollection(rows, total, page, h.PageSize))
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		fail(w, r, "get_client", err)
		return
	}
	c, err := h.Clients.Get(r.Context(), id)
	if err != nil {
		fail(w, r, "get_client", err)
		return
	}
	log.Info.Printf("get_client ok id=%d", id)
	writeJSON(w, StatusOK, dto.NewClientResponse(*c, false))
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, r, "create_client", err)
		return
	}
	c, err := h.Clients.Create(r.Context(), req.Patch())
	if err != nil {
		fail(w, r, "create_client", err)
		return
	}
	log.Info.Printf("create_client ok id=%d email=%q", c.ID, c.Email)
	w.Header().Set("Location", dto.ClientIRI(c.ID))
	writeJSON(w, StatusCreated, dto.NewClientResponse(*c, false))
}

// PUT and PATCH
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		fail(w, r, "update_client", err)
		return
	}
	var req dto.ClientRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, r, "update_client", err)
		return
	}
	c, err := h.Clients.Update(r.Context(), id, req.Patch())
	if err != nil {
		fail(w, r, "update_client", err)
		return
	}
	log.Info.Printf("update_client ok id=%d", id)
	writeJSON(w, StatusOK, dto.NewClientResponse(*c, false))
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		fail(w, r, "delete_client", err)
		return
	}
	if err := h.Clients.Delete(r.Context(), id); err != nil {
		fail(w, r, "delete_client", err)
		return
	}
	log.Info.Printf("delete_client ok id=%d", id)
	w.WriteHeader(StatusNoContent)
}
