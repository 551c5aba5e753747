package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Item=MockItemService

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	bookingDto "shareit/internal/domains/booking/model/dto"
	bookingService "shareit/internal/domains/booking/service"
	commentModel "shareit/internal/domains/comment/model"
	commentDto "shareit/internal/domains/comment/model/dto"
	commentRepo "shareit/internal/domains/comment/repository"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/repository"
	requestModel "shareit/internal/domains/request/model"
	requestRepo "shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

type Item interface {
	Create(ctx context.Context, ownerID int64, req dto.CreateItemRequest) (dto.ItemResponse, error)
	Update(ctx context.Context, ownerID, itemID int64, req dto.UpdateItemRequest) (dto.ItemResponse, error)
	Get(ctx context.Context, viewerID, itemID int64) (dto.ItemDetailResponse, error)
	GetAllByOwner(ctx context.Context, ownerID int64, page gDto.PageRequest) (dto.GetItemDetailsResponse, error)
	Search(ctx context.Context, text string, page gDto.PageRequest) (dto.GetItemsResponse, error)
}

type serviceImpl struct {
	repo        repository.Item
	commentRepo commentRepo.Comment
	requestRepo requestRepo.Request
	userRepo    userRepo.User
	projection  bookingService.Projection
	clock       clock.Clock
	otel        otel.Otel
}

func New(
	repo repository.Item,
	commentRepo commentRepo.Comment,
	requestRepo requestRepo.Request,
	userRepo userRepo.User,
	projection bookingService.Projection,
	clock clock.Clock,
	otel otel.Otel,
) Item {
	return &serviceImpl{
		repo:        repo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		projection:  projection,
		clock:       clock,
		otel:        otel,
	}
}

func ownerFilter(ownerID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    ownerID,
				Table:    model.TableName,
			},
		},
	}
}

// searchFilter matches available items whose name or description contains text, ignoring case.
func searchFilter(text string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  constant.RequestParamText,
						Field:    model.FieldName,
						Operator: gDto.FilterOperatorLike,
						Value:    text,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  constant.RequestParamText,
						Field:    model.FieldDescription,
						Operator: gDto.FilterOperatorLike,
						Value:    text,
						Table:    model.TableName,
					},
				},
			},
		},
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

func (s *serviceImpl) Create(ctx context.Context, ownerID int64, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, ownerID); err != nil {
		return res, err
	}

	if req.RequestID != nil {
		exist, err := s.requestRepo.Exist(ctx, shared.FilterByID(*req.RequestID, requestModel.FieldID, requestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if request exists")

			return res, fmt.Errorf("failed to check if request exists: %w", err)
		}

		if !exist {
			return res, failure.NotFoundf("Request id=%d not found", *req.RequestID) // nolint:wrapcheck
		}
	}

	item := req.ToModel(ownerID, s.clock.Now())

	item.ID, err = s.repo.InsertReturningID(ctx, item)
	if err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, ownerID, itemID int64, req dto.UpdateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(itemID, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 || item.OwnerID != ownerID {
		log.Warn().Int64("itemID", itemID).Int64("userID", ownerID).Msg("item update by non owner")

		return res, failure.NotFoundf("Item with this id=%d not found", itemID) // nolint:wrapcheck
	}

	if !req.IsEmpty() {
		err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ownerID)), filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to update item")

			return res, fmt.Errorf("failed to update item: %w", err)
		}
	}

	req.Apply(&item)
	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, viewerID, itemID int64) (res dto.ItemDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Get(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return res, failure.NotFoundf("Item with this id=%d not found", itemID) // nolint:wrapcheck
	}

	comments, err := s.comments(ctx, []int64{itemID})
	if err != nil {
		return res, err
	}

	var projection bookingDto.LastNext

	if item.OwnerID == viewerID {
		projected, err := s.projection.ProjectLastAndNext(ctx, []int64{itemID}, s.clock.Now())
		if err != nil {
			return res, fmt.Errorf("failed to project bookings: %w", err)
		}

		projection = projected[itemID]
	}

	res.FromModel(item, projection, comments[itemID])

	return res, nil
}

func (s *serviceImpl) GetAllByOwner(ctx context.Context, ownerID int64, page gDto.PageRequest) (res dto.GetItemDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetAllByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = page.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.ensureUser(ctx, ownerID); err != nil {
		return res, err
	}

	params := page.ToQueryParams(model.TableName+"."+model.FieldID, gDto.SortDirAsc)

	items, err := s.repo.GetAll(ctx, params, ownerFilter(ownerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get items")

		return res, fmt.Errorf("failed to get items: %w", err)
	}

	res = make(dto.GetItemDetailsResponse, len(items))
	if len(items) == 0 {
		return res, nil
	}

	itemIDs := make([]int64, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	comments, err := s.comments(ctx, itemIDs)
	if err != nil {
		return res, err
	}

	projections, err := s.projection.ProjectLastAndNext(ctx, itemIDs, s.clock.Now())
	if err != nil {
		return res, fmt.Errorf("failed to project bookings: %w", err)
	}

	for i, item := range items {
		res[i].FromModel(item, projections[item.ID], comments[item.ID])
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, text string, page gDto.PageRequest) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = page.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	res = dto.GetItemsResponse{}

	text = strings.TrimSpace(text)
	if text == "" {
		return res, nil
	}

	params := page.ToQueryParams(model.TableName+"."+model.FieldID, gDto.SortDirAsc)

	items, err := s.repo.GetAll(ctx, params, searchFilter(text))
	if err != nil {
		log.Error().Err(err).Msg("failed to search items")

		return res, fmt.Errorf("failed to search items: %w", err)
	}

	res.FromModels(items)

	return res, nil
}

// comments loads the comments of every item in one query, grouped by item id in creation order.
func (s *serviceImpl) comments(ctx context.Context, itemIDs []int64) (map[int64]commentDto.GetCommentsResponse, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    commentModel.FieldItemID,
				Operator: gDto.FilterOperatorIn,
				Value:    itemIDs,
				Table:    commentModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  commentModel.TableName + "." + commentModel.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.commentRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	grouped := make(map[int64]commentDto.GetCommentsResponse, len(itemIDs))

	for _, mod := range models {
		var comment commentDto.CommentResponse

		comment.FromModel(mod)
		grouped[mod.ItemID] = append(grouped[mod.ItemID], comment)
	}

	return grouped, nil
}
