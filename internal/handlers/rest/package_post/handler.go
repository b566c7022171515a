package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/parcel"
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
	var packageDTO dto.PackageCreate
	err := json.NewDecoder(r.Body).Decode(&packageDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), packageDTO.ToModify())
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			respond.Error(w, http.StatusBadRequest, "cliente, origen, destino y peso son obligatorios")
		case errors.Is(err, parcel.ErrInvalidCustomerID):
			respond.Error(w, http.StatusBadRequest, "id de cliente inválido")
		case errors.Is(err, parcel.ErrInvalidTripID):
			respond.Error(w, http.StatusBadRequest, "id de viaje inválido")
		case errors.Is(err, parcel.ErrInvalidWeight):
			respond.Error(w, http.StatusBadRequest, "el peso debe ser mayor que cero")
		case errors.Is(err, parcel.ErrInvalidFreight):
			respond.Error(w, http.StatusBadRequest, "el flete no puede ser negativo")
		case errors.Is(err, parcel.ErrInvalidAmount):
			respond.Error(w, http.StatusBadRequest, "el monto a cobrar no puede ser negativo")
		case errors.Is(err, parcel.ErrInvalidCurrency):
			respond.Error(w, http.StatusBadRequest, "moneda inválida, use COP o AWG")
		case errors.Is(err, entities.ErrCustomerNotFound):
			respond.Error(w, http.StatusNotFound, "cliente no encontrado")
		case errors.Is(err, entities.ErrTripNotFound):
			respond.Error(w, http.StatusNotFound, "viaje no encontrado")
		case errors.Is(err, entities.ErrFreightRateNotFound):
			respond.Error(w, http.StatusUnprocessableEntity, "no hay tarifa para esta ruta, indique el flete")
		case errors.Is(err, entities.ErrDuplicateTracking):
			respond.Error(w, http.StatusConflict, "el número de guía ya existe")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create package")
			respond.Error(w, http.StatusInternalServerError, "no se pudo registrar la encomienda")
		}
		return
	}

	err = respond.JSON(w, http.StatusCreated, dto.FromPackage(*pkg))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
