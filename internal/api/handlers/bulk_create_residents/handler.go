package bulk_create_residents

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AmenityService/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityService/internal/service/residents"
	"github.com/m04kA/SMC-AmenityService/internal/service/residents/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyImport        = "список импорта не содержит ни одной записи"
	msgInvalidResident    = "некорректные данные жителя"
)

type Handler struct {
	service ResidentService
	logger  Logger
}

func NewHandler(service ResidentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/residents/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BulkImportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /residents/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BulkImport(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, residents.ErrEmptyImport):
			h.logger.Warn("POST /residents/bulk - Empty import payload")
			handlers.RespondBadRequest(w, msgEmptyImport)

		case errors.Is(err, residents.ErrInvalidInput):
			h.logger.Warn("POST /residents/bulk - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidResident)

		default:
			h.logger.Error("POST /residents/bulk - Failed to import residents: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /residents/bulk - Imported %d residents, skipped %d lines", result.Imported, result.Skipped)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
