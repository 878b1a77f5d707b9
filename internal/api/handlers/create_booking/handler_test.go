package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-AmenityService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string, userID, role string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}
	rec := httptest.NewRecorder()

	// Прогоняем через Auth, чтобы контекст был как в production
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	body := `{"amenityId":1,"date":"2025-06-15","slot":"10:00 - 11:00"}`

	t.Run("created", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createBooking.Response{
			ID:         7,
			AmenityID:  1,
			ResidentID: 10,
			Slot:       "10:00 - 11:00",
			Status:     "confirmed",
		}}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, body, "10", "RESIDENT")
		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(10), uc.gotReq.ResidentID)
		assert.Contains(t, rec.Body.String(), `"id":7`)
	})

	t.Run("slot conflict maps to 409", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrSlotNotAvailable}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, body, "10", "RESIDENT")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("amenity not found maps to 404", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrAmenityNotFound}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, body, "10", "RESIDENT")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("date too early maps to 400", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrDateTooEarly}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, body, "10", "RESIDENT")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("resident cannot book for another resident", func(t *testing.T) {
		uc := &fakeUseCase{}
		h := NewHandler(uc, nopLogger{})

		withOther := `{"amenityId":1,"date":"2025-06-15","slot":"10:00 - 11:00","residentId":99}`
		rec := doRequest(t, h, withOther, "10", "RESIDENT")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, uc.gotReq)
	})

	t.Run("admin books for any resident", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createBooking.Response{ID: 8, ResidentID: 99, Status: "confirmed"}}
		h := NewHandler(uc, nopLogger{})

		withOther := `{"amenityId":1,"date":"2025-06-15","slot":"10:00 - 11:00","residentId":99}`
		rec := doRequest(t, h, withOther, "1", "ADMIN")
		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(99), uc.gotReq.ResidentID)
	})

	t.Run("missing auth header maps to 401", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		rec := doRequest(t, h, body, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed date maps to 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		bad := `{"amenityId":1,"date":"15-06-2025","slot":"10:00 - 11:00"}`
		rec := doRequest(t, h, bad, "10", "RESIDENT")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
