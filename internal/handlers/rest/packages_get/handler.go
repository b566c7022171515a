package packages_get

import (
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
	query := r.URL.Query()

	var filter entities.PackageFilter
	if status := query.Get("status"); status != "" {
		packageStatus := entities.PackageStatus(status)
		filter.Status = &packageStatus
	}
	if customerID := query.Get("customer_id"); customerID != "" {
		filter.CustomerID = &customerID
	}
	if tripID := query.Get("trip_id"); tripID != "" {
		filter.TripID = &tripID
	}

	packages, err := h.service.GetPackages(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidStatus):
			respond.Error(w, http.StatusBadRequest, "estado inválido")
		case errors.Is(err, parcel.ErrInvalidCustomerID):
			respond.Error(w, http.StatusBadRequest, "id de cliente inválido")
		case errors.Is(err, parcel.ErrInvalidTripID):
			respond.Error(w, http.StatusBadRequest, "id de viaje inválido")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list packages")
			respond.Error(w, http.StatusInternalServerError, "no se pudieron obtener las encomiendas")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromPackages(packages))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
