package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/internal/service/settings/models"
)

type fakeSettingsRepo struct {
	leadTimeDays int
}

func (r *fakeSettingsRepo) GetLeadTimeDays(_ context.Context) (int, error) {
	return r.leadTimeDays, nil
}

func (r *fakeSettingsRepo) UpdateLeadTimeDays(_ context.Context, days int) error {
	r.leadTimeDays = days
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Get(t *testing.T) {
	repo := &fakeSettingsRepo{leadTimeDays: domain.DefaultLeadTimeDays}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLeadTimeDays, resp.BookingLeadTimeDays)
}

func TestService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &fakeSettingsRepo{leadTimeDays: 1}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{BookingLeadTimeDays: 7})
		require.NoError(t, err)
		assert.Equal(t, 7, resp.BookingLeadTimeDays)
		assert.Equal(t, 7, repo.leadTimeDays)
	})

	t.Run("zero allows same-day booking", func(t *testing.T) {
		repo := &fakeSettingsRepo{leadTimeDays: 1}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{BookingLeadTimeDays: 0})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.BookingLeadTimeDays)
	})

	t.Run("negative rejected", func(t *testing.T) {
		repo := &fakeSettingsRepo{leadTimeDays: 1}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{BookingLeadTimeDays: -1})
		assert.ErrorIs(t, err, ErrInvalidLeadTime)
		assert.Equal(t, 1, repo.leadTimeDays)
	})

	t.Run("above maximum rejected", func(t *testing.T) {
		repo := &fakeSettingsRepo{leadTimeDays: 1}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{BookingLeadTimeDays: domain.MaxLeadTimeDays + 1})
		assert.ErrorIs(t, err, ErrInvalidLeadTime)
	})
}
