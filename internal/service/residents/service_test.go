package residents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	residentRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/resident"
	"github.com/m04kA/SMC-AmenityService/internal/service/residents/models"
)

type fakeResidentRepo struct {
	profiles map[int64]*domain.Profile
	nextID   int64
}

func newFakeResidentRepo(profiles ...*domain.Profile) *fakeResidentRepo {
	r := &fakeResidentRepo{profiles: make(map[int64]*domain.Profile), nextID: 1}
	for _, p := range profiles {
		r.profiles[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakeResidentRepo) GetByID(_ context.Context, id int64) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, residentRepo.ErrResidentNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeResidentRepo) List(_ context.Context) ([]*domain.Profile, error) {
	out := make([]*domain.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeResidentRepo) BulkCreate(_ context.Context, profiles []*domain.Profile) ([]*domain.Profile, error) {
	out := make([]*domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		cp := *p
		cp.ID = r.nextID
		r.nextID++
		r.profiles[cp.ID] = &cp
		res := cp
		out = append(out, &res)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_BulkImport(t *testing.T) {
	t.Run("imports well-formed lines", func(t *testing.T) {
		repo := newFakeResidentRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.BulkImport(context.Background(), &models.BulkImportRequest{
			Lines: "Alice Johnson,402-B,alice@example.com\nBob Lee,101-A,bob@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Imported)
		assert.Equal(t, 0, resp.Skipped)
		require.Len(t, resp.Residents, 2)
		assert.Equal(t, "Alice Johnson", resp.Residents[0].Name)
		assert.Equal(t, "402-B", resp.Residents[0].Unit)
		assert.Equal(t, string(domain.RoleResident), resp.Residents[0].Role)
	})

	t.Run("tolerates missing unit and email", func(t *testing.T) {
		repo := newFakeResidentRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.BulkImport(context.Background(), &models.BulkImportRequest{
			Lines: "Alice Johnson\nBob Lee,101-A",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Imported)
		assert.Empty(t, resp.Residents[0].Unit)
		assert.Empty(t, resp.Residents[1].Email)
	})

	t.Run("skips empty and nameless lines", func(t *testing.T) {
		repo := newFakeResidentRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.BulkImport(context.Background(), &models.BulkImportRequest{
			Lines: "\nAlice Johnson,402-B,alice@example.com\n\n ,101-A,void@example.com\n",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Imported)
		assert.Equal(t, 1, resp.Skipped)
	})

	t.Run("rejects payload with no valid lines", func(t *testing.T) {
		repo := newFakeResidentRepo()
		svc := NewService(repo, nopLogger{})

		_, err := svc.BulkImport(context.Background(), &models.BulkImportRequest{Lines: "\n\n"})
		assert.ErrorIs(t, err, ErrEmptyImport)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		repo := newFakeResidentRepo()
		svc := NewService(repo, nopLogger{})

		_, err := svc.BulkImport(context.Background(), &models.BulkImportRequest{
			Lines: "Alice Johnson,402-B,not-an-email",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, repo.profiles)
	})
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeResidentRepo(&domain.Profile{ID: 10, Name: "Alice", Role: domain.RoleResident})
	svc := NewService(repo, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "Alice", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, ErrResidentNotFound)
	})
}
