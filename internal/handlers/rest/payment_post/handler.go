package payment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/payment"
	"ojitos/pkg/logger"
	"ojitos/pkg/tx"
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
	var paymentDTO dto.PaymentCreate
	err := json.NewDecoder(r.Body).Decode(&paymentDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	created, err := h.service.RecordPayment(r.Context(), paymentDTO.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidPackageID):
			respond.Error(w, http.StatusBadRequest, "id de encomienda inválido")
		case errors.Is(err, payment.ErrInvalidAmount):
			respond.Error(w, http.StatusBadRequest, "el monto del pago debe ser mayor que cero")
		case errors.Is(err, payment.ErrInvalidCurrency):
			respond.Error(w, http.StatusBadRequest, "moneda inválida, use COP o AWG")
		case errors.Is(err, payment.ErrInvalidPaymentMethod):
			respond.Error(w, http.StatusBadRequest, "método de pago inválido")
		case errors.Is(err, payment.ErrCurrencyMismatch):
			respond.Error(w, http.StatusBadRequest, "la moneda del pago no coincide con la de la encomienda")
		case errors.Is(err, entities.ErrPackageNotFound):
			respond.Error(w, http.StatusNotFound, "encomienda no encontrada")
		case errors.Is(err, tx.ErrConflict):
			respond.Error(w, http.StatusConflict, "otra operación modificó estas encomiendas al mismo tiempo, reintente")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("record payment")
			respond.Error(w, http.StatusInternalServerError, "no se pudo registrar el pago")
		}
		return
	}

	err = respond.JSON(w, http.StatusCreated, dto.FromPayment(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
