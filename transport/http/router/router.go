package router

import (
	"shareit/config"
	"shareit/infras/metrics"
	"shareit/internal/handlers/booking"
	"shareit/internal/handlers/item"
	"shareit/internal/handlers/request"
	"shareit/internal/handlers/user"
	"shareit/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	User    user.Handler
	Item    item.Handler
	Booking booking.Handler
	Request request.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Identity       middleware.Identity
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.Metrics.Enable {
		router.Handle(r.Config.Metrics.Path, metrics.Handler())
	}

	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Identity.Identify)

		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Item.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Request.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, identity middleware.Identity, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Identity:       identity,
		Config:         cfg,
	}
}
