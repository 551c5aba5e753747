package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/booking/model"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/logger"
	gRepo "shareit/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	argCurrentStatus = "current_status"
	argItemIDs       = "item_ids"
	argNow           = "now"
)

// nearestQuery picks, per item, the latest approved booking starting at or before now
// and the earliest one starting at or after now, in a single round-trip.
const nearestQuery = `(SELECT DISTINCT ON (bookings.item_id) %[1]s FROM %[2]s
WHERE bookings.item_id IN (:item_ids) AND bookings.status = :status AND bookings.start_date <= :now
ORDER BY bookings.item_id, bookings.start_date DESC, bookings.id)
UNION ALL
(SELECT DISTINCT ON (bookings.item_id) %[1]s FROM %[2]s
WHERE bookings.item_id IN (:item_ids) AND bookings.status = :status AND bookings.start_date >= :now
ORDER BY bookings.item_id, bookings.start_date ASC, bookings.id)`

type Booking interface {
	InsertReturningID(ctx context.Context, booking model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status, actor string, now time.Time) (bool, error)
	GetNearest(ctx context.Context, itemIDs []int64, now time.Time) ([]model.Booking, error)
	HasFinished(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatus moves a WAITING booking to status. It reports false when the booking
// was no longer WAITING at write time.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id int64, status model.Status, actor string, now time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	affected, err := r.UpdateCount(ctx, map[string]any{
		model.FieldStatus:        string(status),
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}, StatusTransitionFilter(id))
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}

func (r *repositoryImpl) GetNearest(ctx context.Context, itemIDs []int64, now time.Time) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetNearest")
	defer scope.End()

	bookings := []model.Booking{}
	if len(itemIDs) == 0 {
		return bookings, nil
	}

	query, args, err := BindNearest(r.SelectClause(ctx), r.FromClause(), itemIDs, now)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build nearest bookings query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &bookings, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get nearest bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) HasFinished(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasFinished")
	defer scope.End()

	return r.Exist(ctx, FinishedFilter(bookerID, itemID, now)) //nolint:wrapcheck
}

// StatusTransitionFilter matches the booking only while it is still WAITING.
func StatusTransitionFilter(id int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{
				ArgName:  argCurrentStatus,
				Field:    model.FieldStatus,
				Value:    string(model.StatusWaiting),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

// FinishedFilter matches approved bookings of the item by the booker that ended before now.
func FinishedFilter(bookerID, itemID int64, now time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookerID, Value: bookerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldItemID, Value: itemID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusApproved), Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: argNow, Field: model.FieldEnd, Value: now, Operator: gDto.FilterOperatorLess, Table: model.TableName},
		},
	}
}

// BindNearest expands the item id list and renders the nearest query with postgres placeholders.
func BindNearest(selectClause, fromClause string, itemIDs []int64, now time.Time) (string, []any, error) {
	query, args, err := sqlx.Named(fmt.Sprintf(nearestQuery, selectClause, fromClause), map[string]any{
		argItemIDs:        itemIDs,
		model.FieldStatus: string(model.StatusApproved),
		argNow:            now,
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to bind named arguments: %w", err)
	}

	query, args, err = sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to expand item ids: %w", err)
	}

	return sqlx.Rebind(sqlx.DOLLAR, query), args, nil
}
