package dto

import (
	"shareit/internal/domains/booking/model"
	"shareit/shared"
	gModel "shareit/shared/model"
	"time"
)

type CreateBookingRequest struct {
	ItemID int64  `json:"itemId" validate:"required,gt=0"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Window parses start and end. Missing values stay zero so the time window check can reject them.
func (r *CreateBookingRequest) Window() (start, end time.Time, err error) {
	if r.Start != "" {
		if start, err = shared.ParseDateTime(r.Start); err != nil {
			return start, end, err //nolint:wrapcheck
		}
	}

	if r.End != "" {
		if end, err = shared.ParseDateTime(r.End); err != nil {
			return start, end, err //nolint:wrapcheck
		}
	}

	return start, end, nil
}

func (r *CreateBookingRequest) ToModel(bookerID int64, start, end, now time.Time) model.Booking {
	return model.Booking{
		Start:    start,
		End:      end,
		ItemID:   r.ItemID,
		BookerID: bookerID,
		Status:   model.StatusWaiting,
		Metadata: gModel.NewMetadata(now, shared.Actor(bookerID)),
	}
}

type BookerResponse struct {
	ID int64 `json:"id"`
}

type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64          `json:"id"`
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Status model.Status   `json:"status"`
	Booker BookerResponse `json:"booker"`
	Item   ItemResponse   `json:"item"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Start = shared.FormatDateTime(model.Start)
	r.End = shared.FormatDateTime(model.End)
	r.Status = model.Status
	r.Booker = BookerResponse{ID: model.BookerID}
	r.Item = ItemResponse{ID: model.ItemID, Name: model.ItemName}
}

type GetBookingsResponse []BookingResponse

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	*r = make(GetBookingsResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}

// BookingShort is the booking summary attached to item views.
type BookingShort struct {
	ID       int64  `json:"id"`
	BookerID int64  `json:"bookerId"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

func NewBookingShort(booking model.Booking) *BookingShort {
	return &BookingShort{
		ID:       booking.ID,
		BookerID: booking.BookerID,
		Start:    shared.FormatDateTime(booking.Start),
		End:      shared.FormatDateTime(booking.End),
	}
}

type LastNext struct {
	Last *BookingShort `json:"lastBooking"`
	Next *BookingShort `json:"nextBooking"`
}
