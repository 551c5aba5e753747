package dto_test

import (
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Window(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "rfc3339",
			req:       dto.CreateBookingRequest{Start: "2025-06-01T10:00:00Z", End: "2025-06-02T10:00:00Z"},
			wantStart: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "missing values stay zero",
			req:     dto.CreateBookingRequest{},
			wantErr: false,
		},
		{
			name:    "garbage",
			req:     dto.CreateBookingRequest{Start: "tomorrow"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := tt.req.Window()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(start))
			assert.True(t, tt.wantEnd.Equal(end))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	req := dto.CreateBookingRequest{ItemID: 5}

	booking := req.ToModel(2, now.Add(time.Hour), now.Add(2*time.Hour), now)

	assert.Equal(t, int64(5), booking.ItemID)
	assert.Equal(t, int64(2), booking.BookerID)
	assert.Equal(t, model.StatusWaiting, booking.Status)
	assert.Equal(t, "2", booking.CreatedBy)
	assert.Equal(t, now, booking.CreatedAt)
}

func TestBookingResponse_FromModel(t *testing.T) {
	var res dto.BookingResponse

	res.FromModel(model.Booking{ID: 1, ItemID: 5, ItemName: "Drill", BookerID: 2, Status: model.StatusApproved})

	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, dto.BookerResponse{ID: 2}, res.Booker)
	assert.Equal(t, dto.ItemResponse{ID: 5, Name: "Drill"}, res.Item)
	assert.Equal(t, model.StatusApproved, res.Status)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	var res dto.GetBookingsResponse

	res.FromModels(nil)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}
