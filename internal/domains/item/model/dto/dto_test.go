package dto_test

import (
	"encoding/json"
	bookingDto "shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/shared"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	available := true
	requestID := int64(3)

	item := (&dto.CreateItemRequest{Name: "Drill", Description: "Cordless", Available: &available, RequestID: &requestID}).ToModel(1, now)

	assert.Equal(t, int64(1), item.OwnerID)
	assert.True(t, item.Available)
	assert.Equal(t, &requestID, item.RequestID)
	assert.Equal(t, "1", item.CreatedBy)
}

func TestUpdateItemRequest(t *testing.T) {
	unavailable := false
	req := dto.UpdateItemRequest{Available: &unavailable}

	fields := shared.TransformFields(req, "1")
	assert.Equal(t, false, fields[model.FieldAvailable])
	assert.NotContains(t, fields, model.FieldName)

	item := model.Item{Name: "Drill", Available: true}
	req.Apply(&item)

	assert.False(t, item.Available)
	assert.Equal(t, "Drill", item.Name)
	assert.False(t, req.IsEmpty())
	assert.True(t, dto.UpdateItemRequest{}.IsEmpty())
}

func TestItemDetailResponse_JSON(t *testing.T) {
	var res dto.ItemDetailResponse

	res.FromModel(model.Item{ID: 1, Name: "Drill", Available: true}, bookingDto.LastNext{Next: &bookingDto.BookingShort{ID: 4, BookerID: 2}}, nil)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "Drill", decoded["name"])
	assert.Nil(t, decoded["lastBooking"])
	assert.Equal(t, map[string]any{"id": float64(4), "bookerId": float64(2), "start": "", "end": ""}, decoded["nextBooking"])
	assert.Equal(t, []any{}, decoded["comments"])
	assert.NotContains(t, decoded, "requestId")
}
