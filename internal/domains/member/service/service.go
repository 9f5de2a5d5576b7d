package service

import (
	"context"
	"fmt"

	"roomescape/config"
	"roomescape/infras/otel"
	"roomescape/internal/domains/member/model/dto"
	"roomescape/internal/domains/member/repository"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"

	"github.com/rs/zerolog/log"
)

type Member interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetMembersResponse, error)
}

type serviceImpl struct {
	repo repository.Member
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Member, cfg *config.Config, otel otel.Otel) Member {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetMembersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get members")

		return res, fmt.Errorf("failed to get members: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
