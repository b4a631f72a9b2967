package health

import (
	"lodge/infras/postgres"
	"lodge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{db: db}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the service can reach its database.
// @Summary Health check
// @Description Ping the database and report service health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service is healthy"
// @Failure 500 {object} response.Error
// @Router /api/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
