package item

import (
	"net/http"
	"shareit/infras/otel"
	commentDto "shareit/internal/domains/comment/model/dto"
	commentService "shareit/internal/domains/comment/service"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/service"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/validator"
	"shareit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Item
	commentService commentService.Comment
	otel           otel.Otel
}

func New(service service.Item, commentService commentService.Comment, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		commentService: commentService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetOwnItems)
		routerGroup.Get("/search", handler.SearchItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Post("/{id}/comment", handler.CreateComment)
	})
}

// CreateItem lists a new item for loan.
// @Summary Create an item
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Data[dto.ItemResponse] "Created item"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /items [post]
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.Create(ctx, shared.UserIDFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Item created successfully")

	response.WithJSON(writer, http.StatusCreated, item)
}

// UpdateItem changes the name, description or availability of an owned item.
// @Summary Update an item
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param id path int true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Data[dto.ItemResponse] "Updated item"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /items/{id} [patch]
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateItemRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Update(ctx, shared.UserIDFromContext(ctx), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("itemID", id).Msg("failed to update item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// GetItemByID returns an item with its comments. The owner also sees the last and next bookings.
// @Summary Get an item by ID
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header int true "Viewer ID"
// @Param id path int true "Item ID"
// @Success 200 {object} response.Data[dto.ItemDetailResponse] "Item details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /items/{id} [get]
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	item, err := handler.service.Get(ctx, shared.UserIDFromContext(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("itemID", id).Msg("failed to get item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// GetOwnItems lists the caller's items with comments and last/next bookings.
// @Summary List own items
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} response.Data[dto.GetItemDetailsResponse] "Owned items"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /items [get]
func (handler *Handler) GetOwnItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnItems")
	defer scope.End()

	page := gDto.PageRequest{}
	if err := page.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	items, err := handler.service.GetAllByOwner(ctx, shared.UserIDFromContext(ctx), page)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get own items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// SearchItems finds available items whose name or description contains the text.
// @Summary Search available items
// @Tags Item
// @Produce json
// @Param text query string true "Search text"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} response.Data[dto.GetItemsResponse] "Matching items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /items/search [get]
func (handler *Handler) SearchItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchItems")
	defer scope.End()

	page := gDto.PageRequest{}
	if err := page.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	items, err := handler.service.Search(ctx, r.URL.Query().Get(constant.RequestParamText), page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// CreateComment leaves a comment on an item the caller has finished borrowing.
// @Summary Comment on an item
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Author ID"
// @Param id path int true "Item ID"
// @Param request body commentDto.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} response.Data[commentDto.CommentResponse] "Created comment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /items/{id}/comment [post]
func (handler *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComment")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := commentDto.CreateCommentRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	comment, err := handler.commentService.Create(ctx, shared.UserIDFromContext(ctx), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("itemID", id).Msg("failed to create comment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Comment created successfully")

	response.WithJSON(w, http.StatusCreated, comment)
}
