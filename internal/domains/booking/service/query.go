package service

import (
	"context"
	"fmt"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"time"

	"github.com/rs/zerolog/log"
)

const argNow = "now"

var listOrder = model.TableName + "." + model.FieldStart

func (s *serviceImpl) ListForBooker(ctx context.Context, userID int64, state string, page gDto.PageRequest) (dto.GetBookingsResponse, error) {
	return s.list(ctx, model.ScopeBooker, userID, state, page)
}

func (s *serviceImpl) ListForOwner(ctx context.Context, userID int64, state string, page gDto.PageRequest) (dto.GetBookingsResponse, error) {
	return s.list(ctx, model.ScopeOwner, userID, state, page)
}

func (s *serviceImpl) list(ctx context.Context, scopeBy model.Scope, userID int64, rawState string, page gDto.PageRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"scope": string(scopeBy), "state": rawState})

	if err = page.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	state, err := model.ParseState(rawState)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	now := s.clock.Now()
	params := page.ToQueryParams(listOrder, gDto.SortDirDesc)

	models, err := s.repo.GetAll(ctx, params, buildListFilter(scopeBy, userID, state, now))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// buildListFilter combines the owner or booker scope with the state bucket evaluated at now.
func buildListFilter(scopeBy model.Scope, userID int64, state model.State, now time.Time) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{scopeFilter(scopeBy, userID)},
	}

	switch state {
	case model.StateCurrent:
		return filter.And(
			timeFilter(model.FieldStart, gDto.FilterOperatorLessEq, now),
			timeFilter(model.FieldEnd, gDto.FilterOperatorGreaterEq, now),
		)
	case model.StatePast:
		return filter.And(timeFilter(model.FieldEnd, gDto.FilterOperatorLess, now))
	case model.StateFuture:
		return filter.And(timeFilter(model.FieldStart, gDto.FilterOperatorGreater, now))
	case model.StateWaiting:
		return filter.And(statusFilter(model.StatusWaiting))
	case model.StateRejected:
		return filter.And(statusFilter(model.StatusRejected))
	default:
		return filter
	}
}

func scopeFilter(scopeBy model.Scope, userID int64) gDto.Filter {
	if scopeBy == model.ScopeOwner {
		return gDto.Filter{Field: model.FieldItemOwnerID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.ItemTableName}
	}

	return gDto.Filter{Field: model.FieldBookerID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableName}
}

func timeFilter(field, operator string, now time.Time) gDto.Filter {
	return gDto.Filter{ArgName: argNow, Field: field, Value: now, Operator: operator, Table: model.TableName}
}

func statusFilter(status model.Status) gDto.Filter {
	return gDto.Filter{Field: model.FieldStatus, Value: string(status), Operator: gDto.FilterOperatorEq, Table: model.TableName}
}
