package package_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/parcel"
	"ojitos/pkg/logger"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.service.DeletePackage(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidPackageID):
			respond.Error(w, http.StatusBadRequest, "id de encomienda inválido")
		case errors.Is(err, entities.ErrPackageNotFound):
			respond.Error(w, http.StatusNotFound, "encomienda no encontrada")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("delete package")
			respond.Error(w, http.StatusInternalServerError, "no se pudo eliminar la encomienda")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
