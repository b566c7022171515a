package debts_get

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
	report, err := h.service.ListDebts(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list debts")
		respond.Error(w, http.StatusInternalServerError, "no se pudieron calcular las deudas")
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromDebtReport(*report))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
