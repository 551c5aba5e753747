package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/domains/booking/model"
	"shareit/shared"
)

func TestProject(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	approved := func(id, itemID int64, offset time.Duration) model.Booking {
		return model.Booking{ID: id, ItemID: itemID, BookerID: 9, Start: now.Add(offset), End: now.Add(offset + time.Hour), Status: model.StatusApproved}
	}

	t.Run("nearest approved bookings on both sides", func(t *testing.T) {
		bookings := []model.Booking{
			approved(1, 5, -5*time.Hour),
			approved(2, 5, -2*time.Hour),
			approved(3, 5, 3*time.Hour),
			approved(4, 5, 7*time.Hour),
		}

		res := project([]int64{5}, bookings, now)

		require.NotNil(t, res[5].Last)
		require.NotNil(t, res[5].Next)
		assert.Equal(t, int64(2), res[5].Last.ID)
		assert.Equal(t, int64(3), res[5].Next.ID)
		assert.Equal(t, int64(9), res[5].Next.BookerID)
		assert.Equal(t, shared.FormatDateTime(now.Add(3*time.Hour)), res[5].Next.Start)
	})

	t.Run("waiting and rejected bookings are ignored", func(t *testing.T) {
		waiting := approved(1, 5, time.Hour)
		waiting.Status = model.StatusWaiting
		rejected := approved(2, 5, -time.Hour)
		rejected.Status = model.StatusRejected

		res := project([]int64{5}, []model.Booking{waiting, rejected}, now)

		assert.Nil(t, res[5].Last)
		assert.Nil(t, res[5].Next)
	})

	t.Run("every requested item gets an entry", func(t *testing.T) {
		res := project([]int64{5, 6}, []model.Booking{approved(1, 5, time.Hour), approved(2, 8, time.Hour)}, now)

		assert.Len(t, res, 2)
		assert.Nil(t, res[5].Last)
		assert.Equal(t, int64(1), res[5].Next.ID)
		assert.Nil(t, res[6].Last)
		assert.Nil(t, res[6].Next)
		assert.NotContains(t, res, int64(8))
	})

	t.Run("booking starting now is both last and next", func(t *testing.T) {
		res := project([]int64{5}, []model.Booking{approved(1, 5, 0)}, now)

		assert.Equal(t, int64(1), res[5].Last.ID)
		assert.Equal(t, int64(1), res[5].Next.ID)
	})
}

func TestProjectAcrossZones(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 19:00 in Jakarta is 12:00 UTC.
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, jakarta)
	stored := func(id int64, hour int) model.Booking {
		start := time.Date(2025, 6, 1, hour, 0, 0, 0, time.UTC)

		return model.Booking{ID: id, ItemID: 5, Start: start, End: start.Add(time.Hour), Status: model.StatusApproved}
	}

	// Compared by wall clock, 13:00 UTC would read as before 19:00 and 11:00 as long past.
	res := project([]int64{5}, []model.Booking{stored(1, 9), stored(2, 11), stored(3, 13), stored(4, 18)}, now)

	require.NotNil(t, res[5].Last)
	require.NotNil(t, res[5].Next)
	assert.Equal(t, int64(2), res[5].Last.ID)
	assert.Equal(t, int64(3), res[5].Next.ID)
}

func TestProjectLastAndNext(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty batch skips the store", func(t *testing.T) {
		f := newFixture(t, now)

		res, err := f.svc.ProjectLastAndNext(context.Background(), nil, now)

		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("one round-trip for the batch", func(t *testing.T) {
		f := newFixture(t, now)

		f.repo.EXPECT().GetNearest(context.Background(), []int64{1, 2}, now).Return([]model.Booking{
			{ID: 10, ItemID: 1, Start: now.Add(-time.Hour), Status: model.StatusApproved},
			{ID: 11, ItemID: 2, Start: now.Add(time.Hour), Status: model.StatusApproved},
		}, nil).Times(1)

		res, err := f.svc.ProjectLastAndNext(context.Background(), []int64{1, 2}, now)

		require.NoError(t, err)
		assert.Equal(t, int64(10), res[1].Last.ID)
		assert.Nil(t, res[1].Next)
		assert.Equal(t, int64(11), res[2].Next.ID)
	})

	t.Run("store error", func(t *testing.T) {
		f := newFixture(t, now)

		f.repo.EXPECT().GetNearest(context.Background(), []int64{1}, now).Return(nil, errors.New("database error"))

		_, err := f.svc.ProjectLastAndNext(context.Background(), []int64{1}, now)

		assert.Error(t, err)
	})
}
