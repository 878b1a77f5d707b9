package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", d.String())

	_, err = NewDateStringFromString("10.06.2024")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = NewDateStringFromString("2024-13-01")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateString_AddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		days int
		want string
	}{
		{"same day", "2024-06-10", 0, "2024-06-10"},
		{"within month", "2024-06-10", 7, "2024-06-17"},
		{"month boundary", "2023-01-28", 7, "2023-02-04"},
		{"leap year february", "2024-02-28", 2, "2024-03-01"},
		{"year boundary", "2024-12-30", 3, "2025-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDateStringFromString(tt.date)
			require.NoError(t, err)

			got, err := d.AddDays(tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDateString_Compare(t *testing.T) {
	a := DateString("2024-06-10")
	b := DateString("2024-06-11")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
}

func TestDateString_Scan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan(time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2024-06-10"), d)

	require.NoError(t, d.Scan("2024-07-01"))
	assert.Equal(t, DateString("2024-07-01"), d)

	require.NoError(t, d.Scan([]byte("2024-08-02")))
	assert.Equal(t, DateString("2024-08-02"), d)

	assert.Error(t, d.Scan(42))
}
