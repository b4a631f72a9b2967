package staff

import (
	"lodge/infras/otel"
	"lodge/internal/domains/staff/model/dto"
	"lodge/internal/domains/staff/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Staff
	otel    otel.Otel
}

func New(service service.Staff, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStaff)
		routerGroup.Get("/", handler.GetStaff)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/{staffId}", handler.GetStaffByID)
		routerGroup.Put("/{staffId}", handler.UpdateStaff)
		routerGroup.Delete("/{staffId}", handler.DeleteStaff)
	})
}

// CreateStaff registers a new staff member.
// @Summary Create a new staff member
// @Description Create a staff member with a generated sequential id. The password is stored as a bcrypt hash.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} response.Data[dto.StaffResponse] "Staff created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/staff [post]
func (handler *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	var req dto.CreateStaffRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	staff, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff created successfully")

	response.WithJSON(w, http.StatusCreated, staff)
}

// GetStaff retrieves all staff members based on query parameters.
// @Summary Get all staff members
// @Description Retrieve staff members with pagination.
// @Tags Staff
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetStaffResponse] "List of staff members"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/staff [get]
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	staff, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// Login verifies staff credentials.
// @Summary Log in as a staff member
// @Description Verify a staff id and password pair and return the profile on success.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Data[dto.StaffResponse] "Authenticated staff profile"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/staff/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	staff, err := handler.service.Authenticate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to authenticate staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff logged in successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// GetStaffByID retrieves a staff member by id.
// @Summary Get a staff member by id
// @Description Retrieve a staff member by their identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param staffId path string true "Staff ID"
// @Success 200 {object} response.Data[dto.StaffResponse] "Staff details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/staff/{staffId} [get]
func (handler *Handler) GetStaffByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamStaffID)

	staff, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff by id")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff retrieved successfully")

	response.WithJSON(w, http.StatusOK, staff)
}

// UpdateStaff updates an existing staff member.
// @Summary Update a staff member by id
// @Description Update an existing staff member. A provided password is re-hashed; zero-valued fields are left unchanged.
// @Tags Staff
// @Accept json
// @Produce json
// @Param staffId path string true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} response.Message "Staff updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/staff/{staffId} [put]
func (handler *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamStaffID)

	var req dto.UpdateStaffRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff updated successfully")

	response.WithMessage(w, http.StatusOK, "Staff updated successfully")
}

// DeleteStaff deletes a staff member by id.
// @Summary Delete a staff member by id
// @Description Delete a staff member using their identifier.
// @Tags Staff
// @Accept json
// @Produce json
// @Param staffId path string true "Staff ID"
// @Success 200 {object} response.Message "Staff deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/staff/{staffId} [delete]
func (handler *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamStaffID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staff deleted successfully")

	response.WithMessage(w, http.StatusOK, "Staff deleted successfully")
}
