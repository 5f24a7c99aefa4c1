package inventory

import (
	"context"
	"errors"
	"net/http"

	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Get("/", h.listItems)
		r.Post("/", h.addItem)
		r.Get("/low", h.lowStock)
		r.Get("/{id}", h.getItem)
		r.Delete("/{id}", h.deleteItem)
		r.Post("/{id}/adjust", h.adjust)
		r.Post("/{id}/restock", h.restock)
	})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	writeItems(w, items, err)
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.LowStock(r.Context())
	writeItems(w, items, err)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.service.AddItem(r.Context(), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, item)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.service.GetItem(r.Context(), id)
	writeItem(w, item, err)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, h.service.Adjust)
}

func (h *Handler) restock(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, h.service.Restock)
}

type quantityFunc func(ctx context.Context, id int64, delta int) (*Item, error)

func (h *Handler) changeQuantity(w http.ResponseWriter, r *http.Request, fn quantityFunc) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var req AdjustRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := fn(r.Context(), id, req.Delta)
	writeItem(w, item, err)
}

func writeItem(w http.ResponseWriter, item *Item, err error) {
	if err != nil {
		writeErr(w, err)
		return
	}
	if item == nil {
		httpx.Error(w, http.StatusNotFound, "inventory item not found")
		return
	}
	httpx.Respond(w, http.StatusOK, item)
}

func writeItems(w http.ResponseWriter, items []*Item, err error) {
	if err != nil {
		writeErr(w, err)
		return
	}
	if items == nil {
		items = []*Item{}
	}
	httpx.Respond(w, http.StatusOK, items)
}

func writeErr(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalid) {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.Error(w, http.StatusInternalServerError, err.Error())
}
