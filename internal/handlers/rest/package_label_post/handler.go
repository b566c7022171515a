package package_label_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/label"
	"ojitos/pkg/logger"
)

const (
	headerLabelURL      = "X-Label-URL"
	headerPackageStatus = "X-Package-Status"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP returns the rendered label itself. The stored copy URL and the
// package status after printing travel in response headers.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	format := entities.LabelFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entities.LabelPDF
	}

	rendered, err := h.service.Print(r.Context(), id, format)
	if err != nil {
		switch {
		case errors.Is(err, label.ErrInvalidPackageID):
			respond.Error(w, http.StatusBadRequest, "id de encomienda inválido")
		case errors.Is(err, label.ErrInvalidFormat):
			respond.Error(w, http.StatusBadRequest, "formato de etiqueta inválido, use pdf o cpcl")
		case errors.Is(err, entities.ErrPackageNotFound):
			respond.Error(w, http.StatusNotFound, "encomienda no encontrada")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("print label")
			respond.Error(w, http.StatusInternalServerError, "no se pudo generar la etiqueta")
		}
		return
	}

	w.Header().Set("Content-Type", rendered.Format.ContentType())
	w.Header().Set(headerPackageStatus, rendered.Status.String())
	if rendered.URL != "" {
		w.Header().Set(headerLabelURL, rendered.URL)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(rendered.Body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write label response")
	}
}
