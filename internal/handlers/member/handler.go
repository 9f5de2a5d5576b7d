package member

import (
	"net/http"
	"roomescape/infras/otel"
	"roomescape/internal/domains/member/service"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Member
	otel    otel.Otel
}

func New(service service.Member, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/members", func(r chi.Router) {
		r.Get("/", handler.GetMembers)
	})
}

// GetMembers retrieves all registered members.
// @Summary Get all members
// @Description Retrieve all members with optional pagination.
// @Tags Member
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetMembersResponse] "List of members"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/members [get]
// @Security BearerAuth
func (handler *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMembers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	members, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Members retrieved successfully")

	response.WithJSON(w, http.StatusOK, members)
}
