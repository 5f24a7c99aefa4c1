package pos

import (
	"errors"
	"net/http"

	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes POS HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/pos", func(r chi.Router) {
		r.Get("/menu", h.menu)
		r.Post("/sales", h.recordSale)
		r.Get("/sales/today", h.todaySales)
		r.Get("/sales/today/total", h.todayTotal)
	})
}

func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.Menu(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.Respond(w, http.StatusOK, menu)
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req RecordSaleRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	sale, err := h.service.RecordSale(r.Context(), req)
	if errors.Is(err, ErrInvalid) {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.Respond(w, http.StatusCreated, sale)
}

func (h *Handler) todaySales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.TodaySales(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sales == nil {
		sales = []*Sale{}
	}
	httpx.Respond(w, http.StatusOK, sales)
}

func (h *Handler) todayTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TodayTotal(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]float64{"total": total})
}
