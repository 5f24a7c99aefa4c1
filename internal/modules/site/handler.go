package site

import (
	"errors"
	"net/http"

	"github.com/georgemunganga/shopfront/internal/httpx"
	"github.com/georgemunganga/shopfront/internal/modules/settings"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler exposes preview, publish and image slot endpoints.
type Handler struct {
	assembler *Assembler
	publisher *Publisher
	media     *Media
	logger    *zap.Logger
}

func NewHandler(assembler *Assembler, publisher *Publisher, media *Media, logger *zap.Logger) *Handler {
	return &Handler{assembler: assembler, publisher: publisher, media: media, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/site", func(r chi.Router) {
		r.Get("/preview", h.preview)
		r.Post("/preview", h.preview)
		r.Post("/publish", h.publish)
		r.Get("/images", h.listImages)
		r.Put("/images/{slot}", h.saveImage)
		r.Delete("/images/{slot}", h.removeImage)
	})
}

// preview renders with inlined images. A POST body carries unsaved edits.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var edits settings.Settings
	if r.Method == http.MethodPost && r.ContentLength != 0 {
		if err := httpx.Decode(r, &edits); err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	content, err := h.assembler.Assemble(r.Context(), Preview, edits)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	html, err := Render(content)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	if err := h.publisher.Publish(r.Context()); err != nil {
		httpx.Respond(w, http.StatusInternalServerError, map[string]any{"published": false, "error": err.Error()})
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]any{"published": true, "path": h.publisher.Output()})
}

func (h *Handler) listImages(w http.ResponseWriter, r *http.Request) {
	out := make(map[Slot]string, len(Slots))
	for _, slot := range Slots {
		out[slot] = h.media.Path(slot)
	}
	httpx.Respond(w, http.StatusOK, out)
}

func (h *Handler) saveImage(w http.ResponseWriter, r *http.Request) {
	slot := Slot(chi.URLParam(r, "slot"))
	if !slot.Valid() {
		httpx.Error(w, http.StatusNotFound, ErrUnknownSlot.Error())
		return
	}
	raw, err := httpx.ReadImage(r, "image")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	path, err := h.media.Save(slot, raw)
	if err != nil {
		httpx.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	httpx.Respond(w, http.StatusOK, map[string]string{"slot": string(slot), "path": path})
}

func (h *Handler) removeImage(w http.ResponseWriter, r *http.Request) {
	err := h.media.Remove(Slot(chi.URLParam(r, "slot")))
	if errors.Is(err, ErrUnknownSlot) {
		httpx.Error(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("image remove failed", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
