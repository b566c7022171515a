package package_restore_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"ojitos/internal/dto"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	pkg, err := h.service.RestorePackage(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidPackageID):
			respond.Error(w, http.StatusBadRequest, "id de encomienda inválido")
		case errors.Is(err, entities.ErrPackageNotFound):
			respond.Error(w, http.StatusNotFound, "encomienda eliminada no encontrada")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("restore package")
			respond.Error(w, http.StatusInternalServerError, "no se pudo restaurar la encomienda")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromPackage(*pkg))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
