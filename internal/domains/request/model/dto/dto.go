package dto

import (
	itemModel "shareit/internal/domains/item/model"
	"shareit/internal/domains/request/model"
	"shareit/shared"
	gModel "shareit/shared/model"
	"time"
)

type CreateRequest struct {
	Description string `json:"description" validate:"required,notblank,max=512"`
}

func (r *CreateRequest) ToModel(requesterID int64, now time.Time) model.Request {
	return model.Request{
		Description: r.Description,
		RequesterID: requesterID,
		Metadata:    gModel.NewMetadata(now, shared.Actor(requesterID)),
	}
}

// OfferedItem is an item that was created in answer to a request.
type OfferedItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	OwnerID   int64  `json:"ownerId"`
	Available bool   `json:"available"`
}

type RequestResponse struct {
	ID          int64         `json:"id"`
	Description string        `json:"description"`
	Created     string        `json:"created"`
	Items       []OfferedItem `json:"items"`
}

func (r *RequestResponse) FromModel(model model.Request, items []itemModel.Item) {
	r.ID = model.ID
	r.Description = model.Description
	r.Created = shared.FormatDateTime(model.CreatedAt)
	r.Items = make([]OfferedItem, len(items))

	for i, item := range items {
		r.Items[i] = OfferedItem{
			ID:        item.ID,
			Name:      item.Name,
			OwnerID:   item.OwnerID,
			Available: item.Available,
		}
	}
}

type GetRequestsResponse []RequestResponse

// FromModels attaches to each request the items offered for it.
func (r *GetRequestsResponse) FromModels(models []model.Request, items map[int64][]itemModel.Item) {
	*r = make(GetRequestsResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod, items[mod.ID])
	}
}
