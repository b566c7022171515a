package package_dispatches_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/dispatch"
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

	number, err := h.service.DispatchNumberFor(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidPackageID):
			respond.Error(w, http.StatusBadRequest, "id de encomienda inválido")
		case errors.Is(err, entities.ErrPackageNotFound):
			respond.Error(w, http.StatusNotFound, "encomienda no encontrada")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get dispatch number")
			respond.Error(w, http.StatusInternalServerError, "no se pudo obtener el número de despacho")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.DispatchNumber{
		DispatchNumber:  number.DispatchNumber,
		TotalDispatches: number.TotalDispatches,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
