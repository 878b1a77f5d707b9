package models

import (
	"time"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
)

// CreateAnnouncementRequest запрос на публикацию объявления
type CreateAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnnouncementResponse ответ с данными объявления
type AnnouncementResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`

	CreatedAt time.Time `json:"createdAt"`
}

// AnnouncementListResponse лента объявлений, свежие первыми
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

// FromDomainAnnouncement конвертирует domain модель в DTO
func FromDomainAnnouncement(a *domain.Announcement) *AnnouncementResponse {
	if a == nil {
		return nil
	}

	return &AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		AuthorID:  a.AuthorID,
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainAnnouncementList конвертирует список domain моделей в DTO
func FromDomainAnnouncementList(announcements []*domain.Announcement) *AnnouncementListResponse {
	resp := &AnnouncementListResponse{
		Announcements: make([]AnnouncementResponse, 0, len(announcements)),
	}

	for _, announcement := range announcements {
		if announcementResp := FromDomainAnnouncement(announcement); announcementResp != nil {
			resp.Announcements = append(resp.Announcements, *announcementResp)
		}
	}

	return resp
}
