package package_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	var statusDTO dto.StatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	pkg, err := h.service.UpdateStatus(r.Context(), id, entities.PackageStatus(statusDTO.Status), statusDTO.Location)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidPackageID):
			respond.Error(w, http.StatusBadRequest, "id de encomienda inválido")
		case errors.Is(err, parcel.ErrInvalidStatus):
			respond.Error(w, http.StatusBadRequest, "estado inválido")
		case errors.Is(err, entities.ErrPackageNotFound):
			respond.Error(w, http.StatusNotFound, "encomienda no encontrada")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update package status")
			respond.Error(w, http.StatusInternalServerError, "no se pudo actualizar el estado")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromPackage(*pkg))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
