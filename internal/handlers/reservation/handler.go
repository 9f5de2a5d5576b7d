package reservation

import (
	"context"
	"net/http"
	"roomescape/infras/otel"
	"roomescape/internal/domains/reservation/model"
	"roomescape/internal/domains/reservation/model/dto"
	"roomescape/internal/domains/reservation/service"
	"roomescape/shared"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	"roomescape/shared/validator"
	"roomescape/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	requestParamDateFrom = "date_from"
	requestParamDateTo   = "date_to"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", handler.CreateReservation)
		r.Post("/standby", handler.CreateStandby)
		r.Delete("/standby/{id}", handler.DeleteStandby)
		r.Get("/mine", handler.GetMyReservations)
	})

	r.Route("/admin/reservations", func(r chi.Router) {
		r.Get("/", handler.GetReservations)
	})
}

// memberIDFromContext resolves the authenticated member's ID stored by the auth middleware.
func memberIDFromContext(ctx context.Context) (int64, error) {
	rawMemberID, _ := ctx.Value(constant.ContextKeyMemberID).(string)

	return shared.ParseID(rawMemberID)
}

// CreateReservation books a slot as a confirmed reservation.
// @Summary Create a reservation
// @Description Book a slot for the authenticated member. Fails when the slot already has a confirmed reservation.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.MyReservationResponse] "Reservation created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	memberID, err := memberIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse member id from context")

		response.WithError(w, failure.Unauthorized("Invalid token claims"))

		return
	}

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reserve(ctx, memberID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully by member " + shared.FormatID(memberID))

	response.WithJSON(w, http.StatusCreated, res)
}

// CreateStandby places the member on the waiting list of a slot.
// @Summary Create a standby reservation
// @Description Join the waiting list of a slot for the authenticated member.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Standby Request"
// @Success 201 {object} response.Data[dto.MyReservationResponse] "Standby created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/standby [post]
// @Security BearerAuth
func (handler *Handler) CreateStandby(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStandby")
	defer scope.End()

	memberID, err := memberIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse member id from context")

		response.WithError(w, failure.Unauthorized("Invalid token claims"))

		return
	}

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Standby(ctx, memberID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create standby")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Standby created successfully by member " + shared.FormatID(memberID))

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteStandby removes the member's own standby reservation.
// @Summary Delete a standby reservation
// @Description Delete a standby reservation owned by the authenticated member. Ranks behind it shift up.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path integer true "Reservation ID"
// @Success 200 {object} response.Message "Standby deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/standby/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStandby(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStandby")
	defer scope.End()

	memberID, err := memberIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse member id from context")

		response.WithError(w, failure.Unauthorized("Invalid token claims"))

		return
	}

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse reservation id")

		response.WithError(w, failure.BadRequestFromString("invalid reservation id"))

		return
	}

	if err := handler.service.DeleteStandby(ctx, id, memberID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete standby")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Standby deleted successfully by member " + shared.FormatID(memberID))

	response.WithMessage(w, http.StatusOK, "Standby deleted successfully")
}

// GetMyReservations lists the member's reservations and standbys with ranks.
// @Summary Get my reservations
// @Description Retrieve every reservation of the authenticated member, standbys carrying their current queue rank.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetMyReservationsResponse] "List of the member's reservations"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	memberID, err := memberIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse member id from context")

		response.WithError(w, failure.Unauthorized("Invalid token claims"))

		return
	}

	res, err := handler.service.FindMyReservations(ctx, memberID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get member reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Member reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservations retrieves all reservations based on query parameters.
// @Summary Get all reservations
// @Description Retrieve all reservations with optional filtering by member, theme, and date range.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param member_id query integer false "Filter by member"
// @Param theme_id query integer false "Filter by theme"
// @Param date_from query string false "Filter from date (2006-01-02)"
// @Param date_to query string false "Filter to date (2006-01-02)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if memberID, err := shared.ParseID(r.URL.Query().Get(model.FieldMemberID)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldMemberID,
			Operator: gDto.FilterOperatorEq,
			Value:    memberID,
			Table:    model.TableName,
		})
	}

	if themeID, err := shared.ParseID(r.URL.Query().Get(model.FieldThemeID)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldThemeID,
			Operator: gDto.FilterOperatorEq,
			Value:    themeID,
			Table:    model.TableName,
		})
	}

	if dateFrom := r.URL.Query().Get(requestParamDateFrom); dateFrom != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    dateFrom,
			Table:    model.TableName,
			ArgName:  requestParamDateFrom,
		})
	}

	if dateTo := r.URL.Query().Get(requestParamDateTo); dateTo != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    dateTo,
			Table:    model.TableName,
			ArgName:  requestParamDateTo,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}
