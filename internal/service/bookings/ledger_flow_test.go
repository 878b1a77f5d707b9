package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/booking"
	createBookingUC "github.com/m04kA/SMC-AmenityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// orderedLedger общий фейк для use case создания и сервиса чтения/отмены:
// выдаёт последовательные id и отдаёт списки в порядке вставки,
// как реальное хранилище с сортировкой по id
type orderedLedger struct {
	nextID int64
	order  []int64
	byID   map[int64]*domain.Booking
}

func newOrderedLedger() *orderedLedger {
	return &orderedLedger{nextID: 1, byID: make(map[int64]*domain.Booking)}
}

func (l *orderedLedger) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	cp := *b
	cp.ID = l.nextID
	l.nextID++
	l.order = append(l.order, cp.ID)
	l.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (l *orderedLedger) GetConfirmedForDay(_ context.Context, amenityID int64, date types.DateString) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, id := range l.order {
		b := l.byID[id]
		if b.AmenityID == amenityID && b.Date == date && b.Status == domain.StatusConfirmed {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (l *orderedLedger) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := l.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (l *orderedLedger) GetByResidentID(_ context.Context, residentID int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, id := range l.order {
		if b := l.byID[id]; b.ResidentID == residentID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (l *orderedLedger) GetByDate(_ context.Context, date types.DateString) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, id := range l.order {
		if b := l.byID[id]; b.Date == date {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (l *orderedLedger) Cancel(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := l.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	cp := *b
	return &cp, nil
}

type anyAmenities struct{}

func (anyAmenities) GetByID(_ context.Context, id int64) (*domain.Amenity, error) {
	return &domain.Amenity{ID: id, Name: "Gym", Capacity: 1}, nil
}

type anyResidents struct{}

func (anyResidents) GetByID(_ context.Context, id int64) (*domain.Profile, error) {
	return &domain.Profile{ID: id, Role: domain.RoleResident}, nil
}

type leadTimeSettings struct {
	days int
}

func (s leadTimeSettings) GetLeadTimeDays(context.Context) (int, error) {
	return s.days, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Полный жизненный цикл слота: бронь, конфликт за тот же слот, отмена
// освобождает слот, повторная бронь проходит, а листинг дня показывает
// обе записи в порядке создания
func TestLedger_CancelFreesSlotAndDayListingKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	date := types.DateString("2030-06-15")
	const slot = "10:00 - 11:00"

	ledger := newOrderedLedger()
	uc := createBookingUC.NewUseCase(ledger, anyAmenities{}, anyResidents{}, leadTimeSettings{days: 1}, passthroughTx{}, nopLogger{})
	svc := NewService(ledger, nopLogger{})

	// Резидент 10 бронирует слот
	first, err := uc.Execute(ctx, &createBookingUC.Request{AmenityID: 1, ResidentID: 10, Date: date, Slot: slot})
	require.NoError(t, err)

	// Резидент 20 проигрывает гонку за тот же слот, журнал не меняется
	_, err = uc.Execute(ctx, &createBookingUC.Request{AmenityID: 1, ResidentID: 20, Date: date, Slot: slot})
	assert.ErrorIs(t, err, createBookingUC.ErrSlotNotAvailable)
	assert.Len(t, ledger.order, 1)

	// Отмена освобождает слот, запись остаётся в журнале
	_, err = svc.Cancel(ctx, first.ID, admin)
	require.NoError(t, err)

	// Теперь резидент 20 успешно бронирует тот же слот
	second, err := uc.Execute(ctx, &createBookingUC.Request{AmenityID: 1, ResidentID: 20, Date: date, Slot: slot})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	// Листинг дня: обе записи, в порядке создания
	day, err := svc.GetDateBookings(ctx, date, admin)
	require.NoError(t, err)
	require.Len(t, day.Bookings, 2)

	assert.Equal(t, first.ID, day.Bookings[0].ID)
	assert.Equal(t, "cancelled", day.Bookings[0].Status)
	assert.Equal(t, int64(10), day.Bookings[0].ResidentID)

	assert.Equal(t, second.ID, day.Bookings[1].ID)
	assert.Equal(t, "confirmed", day.Bookings[1].Status)
	assert.Equal(t, int64(20), day.Bookings[1].ResidentID)
}
