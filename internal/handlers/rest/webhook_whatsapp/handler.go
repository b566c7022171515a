package webhook_whatsapp

import (
	"encoding/json"
	"errors"
	"net/http"

	"ojitos/internal/dto"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/messaging"
	"ojitos/pkg/logger"
)

// Handler serves both sides of the WhatsApp Cloud API webhook: the GET
// subscription handshake and the POST message notifications.
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
	switch r.Method {
	case http.MethodGet:
		h.verify(w, r)
	case http.MethodPost:
		h.receive(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	challenge, err := h.service.VerifyWebhook(
		query.Get("hub.mode"),
		query.Get("hub.verify_token"),
		query.Get("hub.challenge"),
	)
	if err != nil {
		if !errors.Is(err, messaging.ErrWebhookVerification) {
			h.log.With(
				logger.NewField("error", err),
			).Error("verify webhook")
		}
		w.WriteHeader(http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(challenge)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write webhook challenge")
	}
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	var payload dto.WebhookPayload
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	messages := payload.InboundMessages()
	if len(messages) > 0 {
		if err := h.service.HandleInbound(r.Context(), messages); err != nil {
			h.log.With(
				logger.NewField("messages", len(messages)),
				logger.NewField("error", err),
			).Error("store inbound messages")
			respond.Error(w, http.StatusInternalServerError, "no se pudieron guardar los mensajes")
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
