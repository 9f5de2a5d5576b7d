package timeslot

import (
	"net/http"
	"roomescape/infras/otel"
	"roomescape/internal/domains/timeslot/model/dto"
	"roomescape/internal/domains/timeslot/service"
	"roomescape/shared"
	"roomescape/shared/constant"
	"roomescape/shared/failure"
	"roomescape/shared/validator"
	"roomescape/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	requestParamDate    = "date"
	requestParamThemeID = "theme_id"
)

type Handler struct {
	service service.Timeslot
	otel    otel.Otel
}

func New(service service.Timeslot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/times", func(r chi.Router) {
		r.Post("/", handler.CreateTimeslot)
		r.Get("/", handler.GetTimeslots)
		r.Get("/availability", handler.GetAvailability)
		r.Delete("/{id}", handler.DeleteTimeslot)
	})
}

// CreateTimeslot registers a new bookable start time.
// @Summary Create a reservation time
// @Description Create a new reservation time with the provided start time.
// @Tags Timeslot
// @Accept json
// @Produce json
// @Param request body dto.CreateTimeslotRequest true "Create Timeslot Request"
// @Success 201 {object} response.Data[dto.TimeslotResponse] "Reservation time created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/times [post]
// @Security BearerAuth
func (handler *Handler) CreateTimeslot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTimeslot")
	defer scope.End()

	req := dto.CreateTimeslotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation time")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation time created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTimeslots retrieves all reservation times.
// @Summary Get all reservation times
// @Description Retrieve all reservation times ordered by start time.
// @Tags Timeslot
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetTimeslotsResponse] "List of reservation times"
// @Failure 500 {object} response.Error
// @Router /v1/times [get]
func (handler *Handler) GetTimeslots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeslots")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation times")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation times retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailability lists every reservation time for a slot with its booked flag.
// @Summary Get reservation time availability
// @Description Retrieve all reservation times for a date and theme, each flagged as already booked or free.
// @Tags Timeslot
// @Accept json
// @Produce json
// @Param date query string true "Date (2006-01-02)"
// @Param theme_id query integer true "Theme ID"
// @Success 200 {object} response.Data[dto.GetAvailableTimeslotsResponse] "Availability per reservation time"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/times/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	date := r.URL.Query().Get(requestParamDate)

	themeID, err := shared.ParseID(r.URL.Query().Get(requestParamThemeID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse theme id")

		response.WithError(w, failure.BadRequestFromString("invalid theme id"))

		return
	}

	res, err := handler.service.GetAvailability(ctx, date, themeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation time availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation time availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteTimeslot removes a reservation time by its ID.
// @Summary Delete a reservation time
// @Description Delete a reservation time that no reservation references.
// @Tags Timeslot
// @Accept json
// @Produce json
// @Param id path integer true "Reservation time ID"
// @Success 200 {object} response.Message "Reservation time deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/times/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTimeslot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTimeslot")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse reservation time id")

		response.WithError(w, failure.BadRequestFromString("invalid reservation time id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation time")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation time deleted successfully")

	response.WithMessage(w, http.StatusOK, "Reservation time deleted successfully")
}
