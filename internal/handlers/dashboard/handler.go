package dashboard

import (
	"lodge/infras/otel"
	"lodge/internal/domains/dashboard/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboards", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSummary)
		routerGroup.Get("/bookings", handler.GetBookingCount)
		routerGroup.Get("/rooms", handler.GetRoomCounts)
		routerGroup.Get("/check-in-out", handler.GetCheckInOutCounts)
	})
}

// GetSummary retrieves all dashboard figures in one response.
// @Summary Get the dashboard summary
// @Description Retrieve booking, room and check-in/out counts in one call.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Dashboard summary"
// @Failure 500 {object} response.Error
// @Router /api/dashboards [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// GetBookingCount retrieves the total number of bookings.
// @Summary Get the booking count
// @Description Retrieve the total number of bookings ever made.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.BookingCountResponse] "Booking count"
// @Failure 500 {object} response.Error
// @Router /api/dashboards/bookings [get]
func (handler *Handler) GetBookingCount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingCount")
	defer scope.End()

	count, err := handler.service.BookingCount(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking count")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking count retrieved successfully")

	response.WithJSON(w, http.StatusOK, count)
}

// GetRoomCounts retrieves room occupancy figures.
// @Summary Get room counts
// @Description Retrieve total, available and unavailable room counts.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RoomCountsResponse] "Room counts"
// @Failure 500 {object} response.Error
// @Router /api/dashboards/rooms [get]
func (handler *Handler) GetRoomCounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomCounts")
	defer scope.End()

	counts, err := handler.service.RoomCounts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room counts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room counts retrieved successfully")

	response.WithJSON(w, http.StatusOK, counts)
}

// GetCheckInOutCounts retrieves check-in and checkout figures.
// @Summary Get check-in and checkout counts
// @Description Retrieve the number of bookings currently checked in and already checked out.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.CheckInOutResponse] "Check-in and checkout counts"
// @Failure 500 {object} response.Error
// @Router /api/dashboards/check-in-out [get]
func (handler *Handler) GetCheckInOutCounts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckInOutCounts")
	defer scope.End()

	counts, err := handler.service.CheckInOutCounts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-in/out counts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in/out counts retrieved successfully")

	response.WithJSON(w, http.StatusOK, counts)
}
