package dto

import (
	"shareit/internal/domains/user/model"
	gModel "shareit/shared/model"
	"time"
)

type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,notblank,max=255"`
	Email string `json:"email" validate:"required,email,max=512"`
}

func (r *CreateUserRequest) ToModel(now time.Time, actor string) model.User {
	return model.User{
		Name:     r.Name,
		Email:    r.Email,
		Metadata: gModel.NewMetadata(now, actor),
	}
}

type UpdateUserRequest struct {
	Name  *string `db:"name"  json:"name,omitempty"  validate:"omitempty,notblank,max=255"`
	Email *string `db:"email" json:"email,omitempty" validate:"omitempty,email,max=512"`
}

func (r UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
}

type GetUsersResponse []UserResponse

func (r *GetUsersResponse) FromModels(models []model.User) {
	*r = make(GetUsersResponse, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}
