package amenities

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	amenityRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/amenity"
	"github.com/m04kA/SMC-AmenityService/internal/service/amenities/models"
	"github.com/m04kA/SMC-AmenityService/pkg/ptr"
)

type fakeAmenityRepo struct {
	amenities map[int64]*domain.Amenity
	nextID    int64
}

func newFakeAmenityRepo(amenities ...*domain.Amenity) *fakeAmenityRepo {
	r := &fakeAmenityRepo{amenities: make(map[int64]*domain.Amenity), nextID: 1}
	for _, a := range amenities {
		r.amenities[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *fakeAmenityRepo) Create(_ context.Context, amenity *domain.Amenity) (*domain.Amenity, error) {
	cp := *amenity
	cp.ID = r.nextID
	r.nextID++
	r.amenities[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeAmenityRepo) GetByID(_ context.Context, id int64) (*domain.Amenity, error) {
	a, ok := r.amenities[id]
	if !ok {
		return nil, amenityRepo.ErrAmenityNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAmenityRepo) List(_ context.Context) ([]*domain.Amenity, error) {
	out := make([]*domain.Amenity, 0, len(r.amenities))
	for _, a := range r.amenities {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAmenityRepo) Update(_ context.Context, amenity *domain.Amenity) error {
	if _, ok := r.amenities[amenity.ID]; !ok {
		return amenityRepo.ErrAmenityNotFound
	}
	cp := *amenity
	r.amenities[amenity.ID] = &cp
	return nil
}

func (r *fakeAmenityRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.amenities[id]; !ok {
		return amenityRepo.ErrAmenityNotFound
	}
	delete(r.amenities, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newFakeAmenityRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateAmenityRequest{
			Name:     "Gym",
			Icon:     "🏋️",
			Capacity: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, "Gym", resp.Name)
		assert.Equal(t, 10, resp.Capacity)
		assert.NotZero(t, resp.ID)
	})

	t.Run("capacity defaults to minimum", func(t *testing.T) {
		repo := newFakeAmenityRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateAmenityRequest{Name: "Lounge"})
		require.NoError(t, err)
		assert.Equal(t, domain.MinAmenityCapacity, resp.Capacity)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		repo := newFakeAmenityRepo()
		svc := NewService(repo, nopLogger{})

		_, err := svc.Create(context.Background(), &models.CreateAmenityRequest{Name: "   ", Capacity: 5})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("name too long rejected", func(t *testing.T) {
		repo := newFakeAmenityRepo()
		svc := NewService(repo, nopLogger{})

		_, err := svc.Create(context.Background(), &models.CreateAmenityRequest{
			Name:     strings.Repeat("a", domain.MaxAmenityNameLength+1),
			Capacity: 5,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	gym := &domain.Amenity{ID: 1, Name: "Gym", Icon: "🏋️", Capacity: 10}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		repo := newFakeAmenityRepo(gym)
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), 1, &models.UpdateAmenityRequest{
			Name: ptr.Ptr("Fitness Room"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Fitness Room", resp.Name)
		assert.Equal(t, "🏋️", resp.Icon)
		assert.Equal(t, 10, resp.Capacity)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newFakeAmenityRepo()
		svc := NewService(repo, nopLogger{})

		_, err := svc.Update(context.Background(), 404, &models.UpdateAmenityRequest{Name: ptr.Ptr("X")})
		assert.ErrorIs(t, err, ErrAmenityNotFound)
	})

	t.Run("invalid capacity rejected", func(t *testing.T) {
		repo := newFakeAmenityRepo(gym)
		svc := NewService(repo, nopLogger{})

		_, err := svc.Update(context.Background(), 1, &models.UpdateAmenityRequest{Capacity: ptr.Ptr(0)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newFakeAmenityRepo(&domain.Amenity{ID: 1, Name: "Gym", Capacity: 10})
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Delete(context.Background(), 1))
		assert.Empty(t, repo.amenities)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newFakeAmenityRepo()
		svc := NewService(repo, nopLogger{})

		assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrAmenityNotFound)
	})
}

func TestService_List(t *testing.T) {
	repo := newFakeAmenityRepo(
		&domain.Amenity{ID: 1, Name: "Gym", Capacity: 10},
		&domain.Amenity{ID: 2, Name: "Pool", Capacity: 20},
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Amenities, 2)
}
