package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Comment=MockCommentService

import (
	"context"
	"fmt"
	"shareit/infras/metrics"
	"shareit/infras/otel"
	bookingRepo "shareit/internal/domains/booking/repository"
	"shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/comment/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepo "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/clock"
	"shareit/shared/constant"
	"shareit/shared/failure"

	"github.com/rs/zerolog/log"
)

type Comment interface {
	Create(ctx context.Context, authorID, itemID int64, req dto.CreateCommentRequest) (dto.CommentResponse, error)
}

type serviceImpl struct {
	repo        repository.Comment
	bookingRepo bookingRepo.Booking
	itemRepo    itemRepo.Item
	userRepo    userRepo.User
	clock       clock.Clock
	otel        otel.Otel
}

func New(
	repo repository.Comment,
	bookingRepo bookingRepo.Booking,
	itemRepo itemRepo.Item,
	userRepo userRepo.User,
	clock clock.Clock,
	otel otel.Otel,
) Comment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clock,
		otel:        otel,
	}
}

// Create stores a comment from a user who has an approved booking of the item that already ended.
func (s *serviceImpl) Create(ctx context.Context, authorID, itemID int64, req dto.CreateCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".comment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	author, err := s.userRepo.Get(ctx, shared.FilterByID(authorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if author.ID == 0 {
		return res, failure.NotFoundf("User with id=%d not found", authorID) // nolint:wrapcheck
	}

	exist, err := s.itemRepo.Exist(ctx, shared.FilterByID(itemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if item exists")

		return res, fmt.Errorf("failed to check if item exists: %w", err)
	}

	if !exist {
		return res, failure.BadRequestFromString("Item doesn't exist yet") // nolint:wrapcheck
	}

	finished, err := s.bookingRepo.HasFinished(ctx, authorID, itemID, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to check finished bookings")

		return res, fmt.Errorf("failed to check finished bookings: %w", err)
	}

	if !finished {
		log.Warn().Int64("userID", authorID).Int64("itemID", itemID).Msg("comment without finished booking")

		return res, failure.BadRequestFromString("Only users whose booking has expired can leave comments") // nolint:wrapcheck
	}

	comment := req.ToModel(itemID, authorID, now)

	comment.ID, err = s.repo.InsertReturningID(ctx, comment)
	if err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	comment.AuthorName = author.Name

	metrics.IncCommentCreated()
	res.FromModel(comment)

	return res, nil
}
