package announcement

import (
	"context"
	"errors"
	"net/http"

	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/go-chi/chi/v5"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/announcements", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.add)
		r.Post("/{id}/deactivate", h.deactivate)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListActive(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*Announcement{}
	}
	httpx.Respond(w, http.StatusOK, list)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := h.service.Add(r.Context(), req)
	if errors.Is(err, ErrInvalid) {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.Respond(w, http.StatusCreated, a)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.service.Deactivate)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.service.Delete)
}

func (h *Handler) byID(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) error) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := fn(r.Context(), id); err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
