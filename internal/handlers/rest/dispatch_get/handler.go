package dispatch_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"ojitos/internal/dto"
	"ojitos/internal/entities"
	"ojitos/internal/handlers/rest/respond"
	"ojitos/internal/service/dispatch"
	"ojitos/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	details, err := h.service.GetDispatch(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidDispatchID):
			respond.Error(w, http.StatusBadRequest, "id de despacho inválido")
		case errors.Is(err, entities.ErrDispatchNotFound):
			respond.Error(w, http.StatusNotFound, "despacho no encontrado")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get dispatch")
			respond.Error(w, http.StatusInternalServerError, "no se pudo obtener el despacho")
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromDispatchDetails(*details))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
