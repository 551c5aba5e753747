package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/user/model"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	gRepo "shareit/shared/repository"
)

type User interface {
	InsertReturningID(ctx context.Context, user model.User) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// EmailTaken reports whether a user other than exceptID already owns email.
func (r *repositoryImpl) EmailTaken(ctx context.Context, email string, exceptID int64) (taken bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.EmailTaken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	taken, err = r.Exist(ctx, EmailFilter(email, exceptID))
	if err != nil {
		return false, fmt.Errorf("failed to check email (user): %w", err)
	}

	return taken, nil
}

func EmailFilter(email string, exceptID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorNotEq,
				Value:    exceptID,
				Table:    model.TableName,
			},
		},
	}
}
