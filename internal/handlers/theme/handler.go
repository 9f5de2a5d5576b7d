package theme

import (
	"net/http"
	"roomescape/infras/otel"
	"roomescape/internal/domains/theme/model"
	"roomescape/internal/domains/theme/model/dto"
	"roomescape/internal/domains/theme/service"
	"roomescape/shared"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	"roomescape/shared/validator"
	"roomescape/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Theme
	otel    otel.Otel
}

func New(service service.Theme, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/themes", func(r chi.Router) {
		r.Post("/", handler.CreateTheme)
		r.Get("/", handler.GetThemes)
		r.Get("/popular", handler.GetPopularThemes)
		r.Get("/{id}", handler.GetThemeByID)
		r.Delete("/{id}", handler.DeleteTheme)
	})
}

// CreateTheme handles the creation of a new theme.
// @Summary Create a new theme
// @Description Create a new theme with the provided details and optional thumbnail image.
// @Tags Theme
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Theme name"
// @Param description formData string false "Theme description"
// @Param thumbnail formData string false "Thumbnail URL"
// @Param image formData file false "Thumbnail image"
// @Success 201 {object} response.Data[dto.ThemeResponse] "Theme created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/themes [post]
// @Security BearerAuth
func (handler *Handler) CreateTheme(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTheme")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.CreateThemeRequest{
		Name:        r.FormValue(model.FieldName),
		Description: r.FormValue(model.FieldDescription),
		Thumbnail:   r.FormValue(model.FieldThumbnail),
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create theme")

		response.WithError(w, err)

		return
	}

	member, _ := ctx.Value(constant.ContextKeyMemberID).(string)
	scope.AddEvent("Theme created successfully by member " + member)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetThemes retrieves all themes based on query parameters.
// @Summary Get all themes
// @Description Retrieve all themes with optional filtering and pagination.
// @Tags Theme
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetThemesResponse] "List of themes"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/themes [get]
func (handler *Handler) GetThemes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetThemes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	themes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get themes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Themes retrieved successfully")

	response.WithJSON(w, http.StatusOK, themes)
}

// GetPopularThemes retrieves the most reserved themes of the recent window.
// @Summary Get popular themes
// @Description Retrieve the themes with the most confirmed reservations over the last week.
// @Tags Theme
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetPopularThemesResponse] "List of popular themes"
// @Failure 500 {object} response.Error
// @Router /v1/themes/popular [get]
func (handler *Handler) GetPopularThemes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPopularThemes")
	defer scope.End()

	themes, err := handler.service.FindPopular(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get popular themes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Popular themes retrieved successfully")

	response.WithJSON(w, http.StatusOK, themes)
}

// GetThemeByID retrieves a theme by its ID.
// @Summary Get a theme by ID
// @Description Retrieve a theme by its unique identifier.
// @Tags Theme
// @Accept json
// @Produce json
// @Param id path integer true "Theme ID"
// @Success 200 {object} response.Data[dto.ThemeResponse] "Theme details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/themes/{id} [get]
func (handler *Handler) GetThemeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetThemeByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse theme id")

		response.WithError(w, failure.BadRequestFromString("invalid theme id"))

		return
	}

	theme, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get theme by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Theme retrieved successfully")

	response.WithJSON(w, http.StatusOK, theme)
}

// DeleteTheme deletes a theme by its ID.
// @Summary Delete a theme by ID
// @Description Delete a theme that no reservation references.
// @Tags Theme
// @Accept json
// @Produce json
// @Param id path integer true "Theme ID"
// @Success 200 {object} response.Message "Theme deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/themes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTheme")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse theme id")

		response.WithError(w, failure.BadRequestFromString("invalid theme id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete theme")

		response.WithError(w, err)

		return
	}

	member, _ := ctx.Value(constant.ContextKeyMemberID).(string)
	scope.AddEvent("Theme deleted successfully by member " + member)

	response.WithMessage(w, http.StatusOK, "Theme deleted successfully")
}
