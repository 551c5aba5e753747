package dto

import (
	bookingDto "shareit/internal/domains/booking/model/dto"
	commentDto "shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/item/model"
	"shareit/shared"
	gModel "shareit/shared/model"
	"time"
)

type CreateItemRequest struct {
	Name        string `json:"name"                validate:"required,notblank,max=255"`
	Description string `json:"description"         validate:"required,notblank,max=512"`
	Available   *bool  `json:"available"           validate:"required"`
	RequestID   *int64 `json:"requestId,omitempty" validate:"omitempty,gt=0"`
}

func (r *CreateItemRequest) ToModel(ownerID int64, now time.Time) model.Item {
	return model.Item{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available != nil && *r.Available,
		OwnerID:     ownerID,
		RequestID:   r.RequestID,
		Metadata:    gModel.NewMetadata(now, shared.Actor(ownerID)),
	}
}

type UpdateItemRequest struct {
	Name        *string `db:"name"        json:"name,omitempty"        validate:"omitempty,notblank,max=255"`
	Description *string `db:"description" json:"description,omitempty" validate:"omitempty,notblank,max=512"`
	Available   *bool   `db:"available"   json:"available,omitempty"`
}

func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Available == nil
}

// Apply copies the fields present in the request onto item.
func (r UpdateItemRequest) Apply(item *model.Item) {
	if r.Name != nil {
		item.Name = *r.Name
	}

	if r.Description != nil {
		item.Description = *r.Description
	}

	if r.Available != nil {
		item.Available = *r.Available
	}
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Available = model.Available
	r.RequestID = model.RequestID
}

type GetItemsResponse []ItemResponse

func (r *GetItemsResponse) FromModels(models []model.Item) {
	*r = make(GetItemsResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}

// ItemDetailResponse is an item with its comments and, for the owner, the nearest bookings.
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *bookingDto.BookingShort       `json:"lastBooking"`
	NextBooking *bookingDto.BookingShort       `json:"nextBooking"`
	Comments    commentDto.GetCommentsResponse `json:"comments"`
}

func (r *ItemDetailResponse) FromModel(model model.Item, projection bookingDto.LastNext, comments commentDto.GetCommentsResponse) {
	r.ItemResponse.FromModel(model)
	r.LastBooking = projection.Last
	r.NextBooking = projection.Next
	r.Comments = comments

	if r.Comments == nil {
		r.Comments = commentDto.GetCommentsResponse{}
	}
}

type GetItemDetailsResponse []ItemDetailResponse
