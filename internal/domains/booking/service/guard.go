package service

import (
	"context"
	"fmt"
	"shareit/infras/metrics"
	itemModel "shareit/internal/domains/item/model"
	"shareit/shared"
	"shareit/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	invalidWindowMessage = "Start date and time must not be later than the end date and time. " +
		"Start date and time and the end date and time must not be in the past. " +
		"Start date and time and the end date and time must not be equal"
	notWaitingMessage = "Booking status is not WAITING"

	rejectReasonWindow      = "window"
	rejectReasonUnavailable = "unavailable"
	rejectReasonOwner       = "owner"
)

// validateWindow requires both bounds, neither before now, and start strictly before end.
func validateWindow(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() || start.Before(now) || end.Before(now) || !start.Before(end) {
		return failure.BadRequestFromString(invalidWindowMessage) // nolint:wrapcheck
	}

	return nil
}

// admitBooking returns the item when requesterID may book it.
func (s *serviceImpl) admitBooking(ctx context.Context, itemID, requesterID int64) (item itemModel.Item, err error) {
	item, err = s.itemRepo.Get(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return item, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return item, failure.NotFoundf("Item with this id=%d not found", itemID) // nolint:wrapcheck
	}

	if !item.Available {
		metrics.IncBookingRejected(rejectReasonUnavailable)

		return item, failure.BadRequestf("Item with this id=%d not found or not available", itemID) // nolint:wrapcheck
	}

	if item.OwnerID == requesterID {
		metrics.IncBookingRejected(rejectReasonOwner)
		log.Warn().Int64("itemID", itemID).Int64("userID", requesterID).Msg("owner tried to book own item")

		return item, failure.NotFound("Owner cannot booking his item") // nolint:wrapcheck
	}

	return item, nil
}
