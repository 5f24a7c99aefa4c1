package staff

import (
	"errors"
	"net/http"

	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes staff and attendance HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/staff", func(r chi.Router) {
		r.Get("/", h.listMembers)
		r.Post("/", h.addMember)
		r.Get("/{id}", h.getMember)
		r.Delete("/{id}", h.deactivate)
		r.Get("/{id}/status", h.status)
		r.Post("/{id}/clock-in", h.clockIn)
		r.Post("/{id}/clock-out", h.clockOut)
	})
	r.Get("/api/v1/attendance/today", h.today)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"
	members, err := h.service.ListMembers(r.Context(), activeOnly)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if members == nil {
		members = []*Member{}
	}
	httpx.Respond(w, http.StatusOK, members)
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.service.AddMember(r.Context(), req)
	if errors.Is(err, ErrInvalid) {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.Respond(w, http.StatusCreated, m)
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.service.GetMember(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if m == nil {
		httpx.Error(w, http.StatusNotFound, "staff member not found")
		return
	}
	httpx.Respond(w, http.StatusOK, m)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.Deactivate(r.Context(), id); err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	st, err := h.service.Status(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]Status{"status": st})
}

func (h *Handler) clockIn(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := h.service.ClockIn(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		httpx.Error(w, http.StatusConflict, "cannot clock in: unknown member or already clocked in today")
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]bool{"clocked_in": true})
}

func (h *Handler) clockOut(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := h.service.ClockOut(r.Context(), id)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if a == nil {
		httpx.Error(w, http.StatusConflict, "not clocked in")
		return
	}
	httpx.Respond(w, http.StatusOK, a)
}

func (h *Handler) today(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Today(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []*DayEntry{}
	}
	httpx.Respond(w, http.StatusOK, entries)
}
