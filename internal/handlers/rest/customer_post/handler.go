package customer_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var customerDTO dto.CustomerCreate
	err := json.NewDecoder(r.Body).Decode(&customerDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	id, err := h.service.CreateCustomer(r.Context(), customerDTO.ToModify())
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingRequiredFields):
			respond.Error(w, http.StatusBadRequest, "nombre y teléfono son obligatorios")
		case errors.Is(err, customer.ErrInvalidName):
			respond.Error(w, http.StatusBadRequest, "nombre inválido")
		case errors.Is(err, customer.ErrInvalidPhone):
			respond.Error(w, http.StatusBadRequest, "teléfono inválido")
		case errors.Is(err, customer.ErrInvalidEmail):
			respond.Error(w, http.StatusBadRequest, "correo inválido")
		case errors.Is(err, entities.ErrDuplicatePhone):
			respond.Error(w, http.StatusConflict, "el teléfono ya está registrado")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create customer")
			respond.Error(w, http.StatusInternalServerError, "no se pudo crear el cliente")
		}
		return
	}

	err = respond.JSON(w, http.StatusCreated, dto.ID{ID: id})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
