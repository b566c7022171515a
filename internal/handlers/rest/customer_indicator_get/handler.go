package customer_indicator_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/customer"
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

	indicator, err := h.service.GetIndicator(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrInvalidCustomerID):
			respond.Error(w, http.StatusBadRequest, "id de cliente inválido")
		case errors.Is(err, entities.ErrCustomerNotFound):
			respond.Error(w, http.StatusNotFound, "cliente no encontrado")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get customer indicator")
			respond.Error(w, http.StatusInternalServerError, "no se pudo calcular el indicador")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromIndicator(id, indicator))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
