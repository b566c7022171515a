package dispatch_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/dispatch"
	"ojitos/pkg/logger"
	"ojitos/pkg/tx"
)

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var dispatchDTO dto.DispatchCreate
	err := json.NewDecoder(r.Body).Decode(&dispatchDTO)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "cuerpo de la solicitud inválido")
		return
	}

	create, err := dispatchDTO.ToDomain(h.now())
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "fecha de despacho inválida, use AAAA-MM-DD")
		return
	}

	details, err := h.service.CreateDispatch(r.Context(), create)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrNoPackages):
			respond.Error(w, http.StatusBadRequest, "seleccione al menos una encomienda")
		case errors.Is(err, dispatch.ErrInvalidPackageID):
			respond.Error(w, http.StatusBadRequest, "id de encomienda inválido")
		case errors.Is(err, dispatch.ErrDuplicatePackageID):
			respond.Error(w, http.StatusBadRequest, "una encomienda aparece dos veces")
		case errors.Is(err, dispatch.ErrPackagesMissing), errors.Is(err, entities.ErrPackageNotFound):
			respond.Error(w, http.StatusNotFound, "algunas encomiendas no existen")
		case errors.Is(err, dispatch.ErrPackageNotEligible):
			respond.Error(w, http.StatusConflict, "hay encomiendas que no se pueden despachar en su estado actual")
		case errors.Is(err, tx.ErrConflict):
			respond.Error(w, http.StatusConflict, "otra operación modificó estas encomiendas al mismo tiempo, reintente")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create dispatch")
			respond.Error(w, http.StatusInternalServerError, "no se pudo crear el despacho")
		}
		return
	}

	err = respond.JSON(w, http.StatusCreated, dto.FromDispatchDetails(*details))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
