package dto

import (
	"shareit/internal/domains/comment/model"
	"shareit/shared"
	gModel "shareit/shared/model"
	"time"
)

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

func (r *CreateCommentRequest) ToModel(itemID, authorID int64, now time.Time) model.Comment {
	return model.Comment{
		Text:     r.Text,
		ItemID:   itemID,
		AuthorID: authorID,
		Metadata: gModel.NewMetadata(now, shared.Actor(authorID)),
	}
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.Text = model.Text
	r.AuthorName = model.AuthorName
	r.Created = shared.FormatDateTime(model.CreatedAt)
}

type GetCommentsResponse []CommentResponse

func (r *GetCommentsResponse) FromModels(models []model.Comment) {
	*r = make(GetCommentsResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}
