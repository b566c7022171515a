package package_deliver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	var deliveryDTO dto.Delivery
	err := json.NewDecoder(r.Body).Decode(&deliveryDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	details, err := h.service.DeliverWithPayment(r.Context(), id, deliveryDTO.DeliveredBy, deliveryDTO.ToDomainPayments(id))
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidPackageID):
			respond.Error(w, http.StatusBadRequest, "id de encomienda inválido")
		case errors.Is(err, payment.ErrMissingDeliveredBy):
			respond.Error(w, http.StatusBadRequest, "indique quién entrega la encomienda")
		case errors.Is(err, payment.ErrInvalidAmount):
			respond.Error(w, http.StatusBadRequest, "el monto del pago debe ser mayor que cero")
		case errors.Is(err, payment.ErrInvalidCurrency):
			respond.Error(w, http.StatusBadRequest, "moneda inválida, use COP o AWG")
		case errors.Is(err, payment.ErrInvalidPaymentMethod):
			respond.Error(w, http.StatusBadRequest, "método de pago inválido")
		case errors.Is(err, payment.ErrCurrencyMismatch):
			respond.Error(w, http.StatusBadRequest, "la moneda del pago no coincide con la de la encomienda")
		case errors.Is(err, payment.ErrAlreadyDelivered):
			respond.Error(w, http.StatusConflict, "la encomienda ya fue entregada")
		case errors.Is(err, entities.ErrPackageNotFound):
			respond.Error(w, http.StatusNotFound, "encomienda no encontrada")
		case errors.Is(err, tx.ErrConflict):
			respond.Error(w, http.StatusConflict, "otra operación modificó estas encomiendas al mismo tiempo, reintente")
		default:
			h.log.With(
				logger.NewField("package", id),
				logger.NewField("error", err),
			).Error("deliver package")
			respond.Error(w, http.StatusInternalServerError, "no se pudo registrar la entrega")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromPackageDetails(*details))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
