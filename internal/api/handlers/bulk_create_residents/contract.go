package bulk_create_residents

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/service/residents/models"
)

type ResidentService interface {
	BulkImport(ctx context.Context, req *models.BulkImportRequest) (*models.BulkImportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
