package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayCount(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single day", day(1), day(1), 1},
		{"full week", day(1), day(7), 7},
		{"month boundary", time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), day(2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayCount(tt.start, tt.end))
		})
	}
}

func TestCreateRequestValidate(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		req := CreateRequest{Type: "licencia_medica", StartDate: "2025-07-01", EndDate: "2025-07-05"}
		start, end, err := req.Validate()
		assert.NoError(t, err)
		assert.Equal(t, 5, DayCount(start, end))
	})

	t.Run("end before start", func(t *testing.T) {
		req := CreateRequest{Type: "licencia_medica", StartDate: "2025-07-05", EndDate: "2025-07-01"}
		_, _, err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		req := CreateRequest{Type: "dia_libre", StartDate: "2025-07-01", EndDate: "2025-07-01"}
		_, _, err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := CreateRequest{Type: "permiso_sin_goce", StartDate: "01/07/2025", EndDate: "2025-07-05"}
		_, _, err := req.Validate()
		assert.Error(t, err)
	})
}

func TestResolveRequestValidate(t *testing.T) {
	assert.NoError(t, ResolveRequest{Action: ActionAccept}.Validate())
	assert.NoError(t, ResolveRequest{Action: ActionReject}.Validate())
	assert.Error(t, ResolveRequest{Action: "aprobar"}.Validate())
	assert.Error(t, ResolveRequest{}.Validate())
}
