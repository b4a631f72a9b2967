package router

import (
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/dashboard"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/health"
	"lodge/internal/handlers/payment"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/service"
	"lodge/internal/handlers/staff"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Guest     guest.Handler
	Room      room.Handler
	Service   service.Handler
	Staff     staff.Handler
	Booking   booking.Handler
	Payment   payment.Handler
	Dashboard dashboard.Handler
	Health    health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
