package trip_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/trip"
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
	var tripDTO dto.TripCreate
	err := json.NewDecoder(r.Body).Decode(&tripDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	tripModify, err := tripDTO.ToModify()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "fecha de viaje inválida, use AAAA-MM-DD")
		return
	}

	id, err := h.service.CreateTrip(r.Context(), tripModify)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrMissingRequiredFields):
			respond.Error(w, http.StatusBadRequest, "fecha, origen y destino son obligatorios")
		case errors.Is(err, trip.ErrInvalidRoute):
			respond.Error(w, http.StatusBadRequest, "el origen y el destino deben ser distintos")
		case errors.Is(err, trip.ErrInvalidTravelerID):
			respond.Error(w, http.StatusBadRequest, "id de viajero inválido")
		case errors.Is(err, trip.ErrInvalidStatus):
			respond.Error(w, http.StatusBadRequest, "estado de viaje inválido")
		case errors.Is(err, entities.ErrTravelerNotFound):
			respond.Error(w, http.StatusNotFound, "viajero no encontrado")
		case errors.Is(err, entities.ErrDuplicateFlight):
			respond.Error(w, http.StatusConflict, "ya existe un viaje con ese vuelo en esa fecha")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create trip")
			respond.Error(w, http.StatusInternalServerError, "no se pudo crear el viaje")
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
