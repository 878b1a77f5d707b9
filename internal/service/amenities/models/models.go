package models

import (
	"time"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
)

// CreateAmenityRequest запрос на создание помещения
type CreateAmenityRequest struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Capacity int    `json:"capacity"`
}

// UpdateAmenityRequest запрос на обновление помещения; nil-поля не изменяются
type UpdateAmenityRequest struct {
	Name     *string `json:"name,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

// AmenityResponse ответ с данными помещения
type AmenityResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Capacity int    `json:"capacity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AmenityListResponse ответ со списком помещений
type AmenityListResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
}

// FromDomainAmenity конвертирует domain модель в DTO
func FromDomainAmenity(a *domain.Amenity) *AmenityResponse {
	if a == nil {
		return nil
	}

	return &AmenityResponse{
		ID:        a.ID,
		Name:      a.Name,
		Icon:      a.Icon,
		Capacity:  a.Capacity,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAmenityList конвертирует список domain моделей в DTO
func FromDomainAmenityList(amenities []*domain.Amenity) *AmenityListResponse {
	resp := &AmenityListResponse{
		Amenities: make([]AmenityResponse, 0, len(amenities)),
	}

	for _, amenity := range amenities {
		if amenityResp := FromDomainAmenity(amenity); amenityResp != nil {
			resp.Amenities = append(resp.Amenities, *amenityResp)
		}
	}

	return resp
}
