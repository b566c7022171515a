package campaign_send_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/campaign"
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
	id := mux.Vars(r)["id"]

	result, err := h.service.SendCampaign(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrInvalidCampaignID):
			respond.Error(w, http.StatusBadRequest, "id de campaña inválido")
		case errors.Is(err, entities.ErrCampaignNotFound):
			respond.Error(w, http.StatusNotFound, "campaña no encontrada")
		case errors.Is(err, campaign.ErrCampaignAlreadySent):
			respond.Error(w, http.StatusConflict, "la campaña ya fue enviada")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("send campaign")
			respond.Error(w, http.StatusInternalServerError, "no se pudo enviar la campaña")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromCampaignResult(*result))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
