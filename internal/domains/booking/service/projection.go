package service

import (
	"context"
	"fmt"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) ProjectLastAndNext(ctx context.Context, itemIDs []int64, now time.Time) (res map[int64]dto.LastNext, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ProjectLastAndNext")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(itemIDs) == 0 {
		return map[int64]dto.LastNext{}, nil
	}

	bookings, err := s.repo.GetNearest(ctx, itemIDs, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to get nearest bookings")

		return nil, fmt.Errorf("failed to get nearest bookings: %w", err)
	}

	return project(itemIDs, bookings, now), nil
}

// project folds candidate bookings into one last/next pair per requested item.
// Non-approved bookings and bookings of other items are ignored.
func project(itemIDs []int64, bookings []model.Booking, now time.Time) map[int64]dto.LastNext {
	last := make(map[int64]model.Booking, len(itemIDs))
	next := make(map[int64]model.Booking, len(itemIDs))
	requested := make(map[int64]struct{}, len(itemIDs))

	for _, id := range itemIDs {
		requested[id] = struct{}{}
	}

	for _, booking := range bookings {
		if _, ok := requested[booking.ItemID]; !ok || booking.Status != model.StatusApproved {
			continue
		}

		if !booking.Start.After(now) {
			if current, ok := last[booking.ItemID]; !ok || booking.Start.After(current.Start) {
				last[booking.ItemID] = booking
			}
		}

		if !booking.Start.Before(now) {
			if current, ok := next[booking.ItemID]; !ok || booking.Start.Before(current.Start) {
				next[booking.ItemID] = booking
			}
		}
	}

	res := make(map[int64]dto.LastNext, len(requested))

	for id := range requested {
		var pair dto.LastNext

		if booking, ok := last[id]; ok {
			pair.Last = dto.NewBookingShort(booking)
		}

		if booking, ok := next[id]; ok {
			pair.Next = dto.NewBookingShort(booking)
		}

		res[id] = pair
	}

	return res
}
