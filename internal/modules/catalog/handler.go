package catalog

import (
	"errors"
	"net/http"

	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.addProduct)
		r.Get("/{id}", h.getProduct)
		r.Patch("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
		r.Post("/{id}/move", h.moveProduct)
		r.Put("/{id}/image", h.setImage)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context(), Category(r.URL.Query().Get("category")))
	if err != nil {
		writeErr(w, err)
		return
	}
	if products == nil {
		products = []*Product{}
	}
	httpx.Respond(w, http.StatusOK, products)
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.service.AddProduct(r.Context(), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, p)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	if p == nil {
		httpx.Error(w, http.StatusNotFound, "product not found")
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	patch, err := DecodePatch(r.Body)
	if err != nil {
		writeErr(w, err)
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		writeErr(w, err)
		return
	}
	if p == nil {
		httpx.Error(w, http.StatusNotFound, "product not found")
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) moveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Direction Direction `json:"direction"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	moved, err := h.service.MoveProduct(r.Context(), id, req.Direction)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]bool{"moved": moved})
}

func (h *Handler) setImage(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	raw, err := httpx.ReadImage(r, "image")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.service.SetProductImage(r.Context(), id, raw)
	if err != nil {
		writeErr(w, err)
		return
	}
	if p == nil {
		httpx.Error(w, http.StatusNotFound, "product not found")
		return
	}
	httpx.Respond(w, http.StatusOK, p)
}

func writeErr(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalid) {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.Error(w, http.StatusInternalServerError, err.Error())
}
