package repository_test

import (
	"shareit/internal/domains/user/model"
	"shareit/internal/domains/user/repository"
	gDto "shareit/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailFilter(t *testing.T) {
	filter := repository.EmailFilter("ann@example.com", 4)

	assert.Equal(t, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: "ann@example.com", Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorNotEq, Value: int64(4), Table: model.TableName},
		},
	}, filter)

	where, args := filter.GetWhereClause()
	assert.Contains(t, where, "users.email")
	assert.Contains(t, where, "users.id")
	assert.Len(t, args, 2)
}
