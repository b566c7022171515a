package customers_get

import (
	"net/http"

	"ojitos/internal/dto"
	"ojitos/internal/handlers/rest/respond"
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
	customers, err := h.service.GetCustomers(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list customers")
		respond.Error(w, http.StatusInternalServerError, "no se pudieron obtener los clientes")
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromCustomers(customers))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
