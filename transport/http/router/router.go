package router

import (
	"roomescape/internal/handlers/auth"
	"roomescape/internal/handlers/member"
	"roomescape/internal/handlers/reservation"
	"roomescape/internal/handlers/theme"
	"roomescape/internal/handlers/timeslot"
	"roomescape/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Member      member.Handler
	Timeslot    timeslot.Handler
	Theme       theme.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Member.Router(routerGroup)
		r.DomainHandlers.Timeslot.Router(routerGroup)
		r.DomainHandlers.Theme.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
