package message_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/messaging"
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
	var messageDTO dto.MessageSend
	err := json.NewDecoder(r.Body).Decode(&messageDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	notification, err := h.service.SendText(r.Context(), entities.OutboundMessage{
		CustomerID: messageDTO.CustomerID,
		Phone:      messageDTO.Phone,
		Body:       messageDTO.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, messaging.ErrEmptyMessage):
			respond.Error(w, http.StatusBadRequest, "el mensaje está vacío")
		case errors.Is(err, messaging.ErrMessageTooLong):
			respond.Error(w, http.StatusBadRequest, "el mensaje es demasiado largo")
		case errors.Is(err, messaging.ErrMissingRecipient):
			respond.Error(w, http.StatusBadRequest, "indique el cliente o el teléfono")
		case errors.Is(err, messaging.ErrInvalidPhone):
			respond.Error(w, http.StatusBadRequest, "teléfono inválido")
		case errors.Is(err, entities.ErrCustomerNotFound):
			respond.Error(w, http.StatusNotFound, "cliente no encontrado")
		case errors.Is(err, messaging.ErrSendFailed):
			h.log.With(
				logger.NewField("error", err),
			).Warn("whatsapp send failed")
			respond.Error(w, http.StatusBadGateway, "WhatsApp no aceptó el mensaje")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("send message")
			respond.Error(w, http.StatusInternalServerError, "no se pudo enviar el mensaje")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromNotification(*notification))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
