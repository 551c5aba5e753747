package dto_test

import (
	"shareit/internal/domains/user/model"
	"shareit/internal/domains/user/model/dto"
	"shareit/shared"
	"shareit/shared/constant"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	req := dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"}

	user := req.ToModel(now, "guest")

	assert.Zero(t, user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, "guest", user.ModifiedBy)
}

func TestUpdateUserRequest_Fields(t *testing.T) {
	email := "new@example.com"
	req := dto.UpdateUserRequest{Email: &email}

	assert.False(t, req.IsEmpty())
	assert.True(t, dto.UpdateUserRequest{}.IsEmpty())

	fields := shared.TransformFields(req, "7")

	assert.Equal(t, email, fields[model.FieldEmail])
	assert.NotContains(t, fields, model.FieldName)
	assert.Equal(t, "7", fields[constant.FieldModifiedBy])
}

func TestGetUsersResponse_FromModels(t *testing.T) {
	var res dto.GetUsersResponse

	res.FromModels([]model.User{{ID: 1, Name: "Ann", Email: "a@x.io"}, {ID: 2, Name: "Bob", Email: "b@x.io"}})

	assert.Len(t, res, 2)
	assert.Equal(t, dto.UserResponse{ID: 2, Name: "Bob", Email: "b@x.io"}, res[1])

	res.FromModels(nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}
