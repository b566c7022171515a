package dispatches_eligible_get

import (
	"errors"
	"net/http"

	"ojitos/internal/dto"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tripID := r.URL.Query().Get("trip_id")

	packages, err := h.service.SelectEligible(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidTripID):
			respond.Error(w, http.StatusBadRequest, "id de viaje inválido")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("select eligible packages")
			respond.Error(w, http.StatusInternalServerError, "no se pudieron obtener las encomiendas")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromPackages(packages))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
