package announcements

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/internal/service/announcements/models"
)

type fakeAnnouncementRepo struct {
	announcements []*domain.Announcement
	nextID        int64
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{nextID: 1}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	cp := *a
	cp.ID = r.nextID
	r.nextID++
	// свежие первыми, как в репозитории
	r.announcements = append([]*domain.Announcement{&cp}, r.announcements...)
	out := cp
	return &out, nil
}

func (r *fakeAnnouncementRepo) List(_ context.Context) ([]*domain.Announcement, error) {
	out := make([]*domain.Announcement, 0, len(r.announcements))
	for _, a := range r.announcements {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newFakeAnnouncementRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), 1, &models.CreateAnnouncementRequest{
			Title:   "Pool maintenance",
			Content: "The pool is closed on Friday.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Pool maintenance", resp.Title)
		assert.Equal(t, int64(1), resp.AuthorID)
		assert.NotZero(t, resp.ID)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		svc := NewService(newFakeAnnouncementRepo(), nopLogger{})

		_, err := svc.Create(context.Background(), 1, &models.CreateAnnouncementRequest{
			Title:   "  ",
			Content: "Body",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		svc := NewService(newFakeAnnouncementRepo(), nopLogger{})

		_, err := svc.Create(context.Background(), 1, &models.CreateAnnouncementRequest{
			Title:   "Title",
			Content: "",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("oversized content rejected", func(t *testing.T) {
		svc := NewService(newFakeAnnouncementRepo(), nopLogger{})

		_, err := svc.Create(context.Background(), 1, &models.CreateAnnouncementRequest{
			Title:   "Title",
			Content: strings.Repeat("a", domain.MaxAnnouncementContentLength+1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_List(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), 1, &models.CreateAnnouncementRequest{Title: "First", Content: "a"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 1, &models.CreateAnnouncementRequest{Title: "Second", Content: "b"})
	require.NoError(t, err)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Announcements, 2)
	assert.Equal(t, "Second", resp.Announcements[0].Title)
	assert.Equal(t, "First", resp.Announcements[1].Title)
}
