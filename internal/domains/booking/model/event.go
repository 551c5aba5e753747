package model

import "time"

const (
	EventBookingCreated = "booking.created"
	EventBookingDecided = "booking.decided"
)

type Event struct {
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	ItemID     int64     `json:"itemId"`
	BookerID   int64     `json:"bookerId"`
	OwnerID    int64     `json:"ownerId"`
	Status     Status    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEvent(eventType string, booking Booking, now time.Time) Event {
	return Event{
		Type:       eventType,
		BookingID:  booking.ID,
		ItemID:     booking.ItemID,
		BookerID:   booking.BookerID,
		OwnerID:    booking.ItemOwnerID,
		Status:     booking.Status,
		Start:      booking.Start,
		End:        booking.End,
		OccurredAt: now,
	}
}
