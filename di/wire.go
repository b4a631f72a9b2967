//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	"github.com/google/wire"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	dashboardService "lodge/internal/domains/dashboard/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	paymentRepository "lodge/internal/domains/payment/repository"
	paymentService "lodge/internal/domains/payment/service"
	recordRepository "lodge/internal/domains/record/repository"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	serviceRepository "lodge/internal/domains/service/repository"
	serviceService "lodge/internal/domains/service/service"
	staffRepository "lodge/internal/domains/staff/repository"
	staffService "lodge/internal/domains/staff/service"

	bookingHandler "lodge/internal/handlers/booking"
	dashboardHandler "lodge/internal/handlers/dashboard"
	guestHandler "lodge/internal/handlers/guest"
	healthHandler "lodge/internal/handlers/health"
	paymentHandler "lodge/internal/handlers/payment"
	roomHandler "lodge/internal/handlers/room"
	serviceHandler "lodge/internal/handlers/service"
	staffHandler "lodge/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var serviceDomain = wire.NewSet(
	serviceRepository.New,
	serviceService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	recordRepository.New,
	paymentRepository.New,
	bookingService.New,
	paymentService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
	serviceDomain,
	staffDomain,
	bookingDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	guestHandler.New,
	roomHandler.New,
	serviceHandler.New,
	staffHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	dashboardHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
