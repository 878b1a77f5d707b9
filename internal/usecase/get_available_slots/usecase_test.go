package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	amenityRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/amenity"
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

type fakeLedger struct {
	bookings []*domain.Booking
}

func (f *fakeLedger) GetConfirmedForDay(_ context.Context, amenityID int64, date types.DateString) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.AmenityID == amenityID && b.Date == date && b.IsConfirmed() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeAmenities struct {
	known map[int64]bool
}

func (f *fakeAmenities) GetByID(_ context.Context, id int64) (*domain.Amenity, error) {
	if !f.known[id] {
		return nil, amenityRepo.ErrAmenityNotFound
	}
	return &domain.Amenity{ID: id, Name: "Pool", Icon: "🏊", Capacity: 20}, nil
}

type fakeSettings struct {
	leadDays int
}

func (f *fakeSettings) GetLeadTimeDays(_ context.Context) (int, error) {
	return f.leadDays, nil
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(ledger *fakeLedger, leadDays int, now time.Time) *UseCase {
	uc := NewUseCase(ledger, &fakeAmenities{known: map[int64]bool{1: true}}, &fakeSettings{leadDays: leadDays}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestUseCase_Execute_FullCatalogInOrder(t *testing.T) {
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeLedger{}, 1, now)

	resp, err := uc.Execute(context.Background(), &Request{AmenityID: 1, Date: "2024-06-10"})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 14)
	assert.Equal(t, "08:00 - 09:00", resp.Slots[0].Slot)
	assert.Equal(t, "21:00 - 22:00", resp.Slots[13].Slot)
	for _, s := range resp.Slots {
		assert.False(t, s.IsTaken)
	}
	assert.Equal(t, types.DateString("2024-06-10"), resp.MinBookableDate)
}

func TestUseCase_Execute_TakenAndCancelledSlots(t *testing.T) {
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	ledger := &fakeLedger{
		bookings: []*domain.Booking{
			{ID: 1, AmenityID: 1, Date: "2024-06-10", Slot: "08:00 - 09:00", Status: domain.StatusConfirmed},
			{ID: 2, AmenityID: 1, Date: "2024-06-10", Slot: "12:00 - 13:00", Status: domain.StatusCancelled},
			// Другая дата не влияет
			{ID: 3, AmenityID: 1, Date: "2024-06-11", Slot: "09:00 - 10:00", Status: domain.StatusConfirmed},
			// Другой amenity не влияет
			{ID: 4, AmenityID: 2, Date: "2024-06-10", Slot: "10:00 - 11:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(ledger, 0, now)

	resp, err := uc.Execute(context.Background(), &Request{AmenityID: 1, Date: "2024-06-10"})
	require.NoError(t, err)

	byLabel := make(map[string]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		byLabel[s.Slot] = s.IsTaken
	}

	assert.True(t, byLabel["08:00 - 09:00"], "confirmed booking must mark slot taken")
	assert.False(t, byLabel["12:00 - 13:00"], "cancelled booking must not occupy slot")
	assert.False(t, byLabel["09:00 - 10:00"], "other date must not leak in")
	assert.False(t, byLabel["10:00 - 11:00"], "other amenity must not leak in")
}

func TestUseCase_Execute_Errors(t *testing.T) {
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeLedger{}, 0, now)

	_, err := uc.Execute(context.Background(), &Request{AmenityID: 99, Date: "2024-06-10"})
	assert.ErrorIs(t, err, ErrAmenityNotFound)

	_, err = uc.Execute(context.Background(), &Request{AmenityID: 1, Date: "not-a-date"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AmenityID: 0, Date: "2024-06-10"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
