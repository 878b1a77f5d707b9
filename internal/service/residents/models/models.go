package models

import (
	"time"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
)

// BulkImportRequest запрос на массовый импорт жителей
// Lines в формате "имя,юнит,email", по одной записи на строку
type BulkImportRequest struct {
	Lines string `json:"lines"`
}

// ResidentResponse ответ с данными жителя
type ResidentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Email string `json:"email"`
	Role  string `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}

// ResidentListResponse ответ со списком жителей
type ResidentListResponse struct {
	Residents []ResidentResponse `json:"residents"`
}

// BulkImportResponse результат массового импорта
type BulkImportResponse struct {
	Imported  int                `json:"imported"`
	Skipped   int                `json:"skipped"`
	Residents []ResidentResponse `json:"residents"`
}

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.Profile) *ResidentResponse {
	if p == nil {
		return nil
	}

	return &ResidentResponse{
		ID:        p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Email:     p.Email,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
	}
}

// FromDomainProfileList конвертирует список domain моделей в DTO
func FromDomainProfileList(profiles []*domain.Profile) *ResidentListResponse {
	resp := &ResidentListResponse{
		Residents: make([]ResidentResponse, 0, len(profiles)),
	}

	for _, profile := range profiles {
		if profileResp := FromDomainProfile(profile); profileResp != nil {
			resp.Residents = append(resp.Residents, *profileResp)
		}
	}

	return resp
}
