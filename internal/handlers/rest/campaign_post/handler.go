package campaign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"ojitos/internal/dto"
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
	var campaignDTO dto.CampaignCreate
	err := json.NewDecoder(r.Body).Decode(&campaignDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	created, err := h.service.CreateCampaign(r.Context(), campaignDTO.Name, campaignDTO.Message)
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrMissingRequiredFields):
			respond.Error(w, http.StatusBadRequest, "nombre y mensaje son obligatorios")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create campaign")
			respond.Error(w, http.StatusInternalServerError, "no se pudo crear la campaña")
		}
		return
	}

	err = respond.JSON(w, http.StatusCreated, dto.FromCampaign(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
