package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Request=MockRequestService

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	itemModel "shareit/internal/domains/item/model"
	itemRepo "shareit/internal/domains/item/repository"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"

	"github.com/rs/zerolog/log"
)

type Request interface {
	Create(ctx context.Context, requesterID int64, req dto.CreateRequest) (dto.RequestResponse, error)
	GetOwn(ctx context.Context, requesterID int64) (dto.GetRequestsResponse, error)
	GetAll(ctx context.Context, userID int64, page gDto.PageRequest) (dto.GetRequestsResponse, error)
	Get(ctx context.Context, userID, requestID int64) (dto.RequestResponse, error)
}

type serviceImpl struct {
	repo     repository.Request
	itemRepo itemRepo.Item
	userRepo userRepo.User
	clock    clock.Clock
	otel     otel.Otel
}

func New(repo repository.Request, itemRepo itemRepo.Item, userRepo userRepo.User, clock clock.Clock, otel otel.Otel) Request {
	return &serviceImpl{
		repo:     repo,
		itemRepo: itemRepo,
		userRepo: userRepo,
		clock:    clock,
		otel:     otel,
	}
}

func requesterFilter(requesterID int64, operator string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRequesterID,
				Operator: operator,
				Value:    requesterID,
				Table:    model.TableName,
			},
		},
	}
}

func newestFirst() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}
}

func (s *serviceImpl) ensureUser(ctx context.Context, userID int64) error {
	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFoundf("User with id=%d not found", userID) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, requesterID int64, req dto.CreateRequest) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, requesterID); err != nil {
		return res, err
	}

	request := req.ToModel(requesterID, s.clock.Now())

	request.ID, err = s.repo.InsertReturningID(ctx, request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create request")

		return res, fmt.Errorf("failed to create request: %w", err)
	}

	res.FromModel(request, nil)

	return res, nil
}

func (s *serviceImpl) GetOwn(ctx context.Context, requesterID int64) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetOwn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, requesterID); err != nil {
		return res, err
	}

	requests, err := s.repo.GetAll(ctx, newestFirst(), requesterFilter(requesterID, gDto.FilterOperatorEq))
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	return s.withItems(ctx, requests)
}

func (s *serviceImpl) GetAll(ctx context.Context, userID int64, page gDto.PageRequest) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = page.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	params := page.ToQueryParams(model.TableName+"."+constant.FieldCreatedAt, gDto.SortDirDesc)

	requests, err := s.repo.GetAll(ctx, params, requesterFilter(userID, gDto.FilterOperatorNotEq))
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	return s.withItems(ctx, requests)
}

func (s *serviceImpl) Get(ctx context.Context, userID, requestID int64) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(requestID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get request")

		return res, fmt.Errorf("failed to get request: %w", err)
	}

	if request.ID == 0 {
		return res, failure.NotFoundf("Request id=%d not found", requestID) // nolint:wrapcheck
	}

	items, err := s.offeredItems(ctx, []int64{requestID})
	if err != nil {
		return res, err
	}

	res.FromModel(request, items[requestID])

	return res, nil
}

func (s *serviceImpl) withItems(ctx context.Context, requests []model.Request) (dto.GetRequestsResponse, error) {
	res := dto.GetRequestsResponse{}
	if len(requests) == 0 {
		return res, nil
	}

	requestIDs := make([]int64, len(requests))
	for i, request := range requests {
		requestIDs[i] = request.ID
	}

	items, err := s.offeredItems(ctx, requestIDs)
	if err != nil {
		return res, err
	}

	res.FromModels(requests, items)

	return res, nil
}

// offeredItems loads the items created for the given requests, grouped by request id.
func (s *serviceImpl) offeredItems(ctx context.Context, requestIDs []int64) (map[int64][]itemModel.Item, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    itemModel.FieldRequestID,
				Operator: gDto.FilterOperatorIn,
				Value:    requestIDs,
				Table:    itemModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  itemModel.TableName + "." + itemModel.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	items, err := s.itemRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get offered items")

		return nil, fmt.Errorf("failed to get offered items: %w", err)
	}

	grouped := make(map[int64][]itemModel.Item, len(requestIDs))

	for _, item := range items {
		if item.RequestID != nil {
			grouped[*item.RequestID] = append(grouped[*item.RequestID], item)
		}
	}

	return grouped, nil
}
