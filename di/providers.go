package di

import (
	bookingService "shareit/internal/domains/booking/service"
)

// ProvideProjection exposes the booking service as the item service's last/next projector.
func ProvideProjection(booking bookingService.Booking) bookingService.Projection {
	return booking
}
