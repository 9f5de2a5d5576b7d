package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomescape/config"
	"roomescape/infras/otel"
	"roomescape/internal/domains/timeslot/model"
	"roomescape/internal/domains/timeslot/model/dto"
	"roomescape/internal/domains/timeslot/repository"
	"roomescape/shared"
	"roomescape/shared/cache"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllTimeslot = "reservation_time:gets"
)

type Timeslot interface {
	Create(ctx context.Context, req dto.CreateTimeslotRequest) (dto.TimeslotResponse, error)
	GetAll(ctx context.Context) (dto.GetTimeslotsResponse, error)
	Delete(ctx context.Context, id int64) error
	GetAvailability(ctx context.Context, rawDate string, themeID int64) (dto.GetAvailableTimeslotsResponse, error)
}

type serviceImpl struct {
	repo  repository.Timeslot
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Timeslot, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Timeslot {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTimeslotRequest) (res dto.TimeslotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyMemberEmail).(string)

	mod := req.ToModel(username)

	id, err := s.repo.Create(ctx, mod)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateStartAt) {
			return res, failure.Conflict("reservation time already exists") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation time")

		return res, fmt.Errorf("failed to create reservation time: %w", err)
	}

	mod.ID = id
	res.FromModel(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTimeslot)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTimeslotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllTimeslot, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation times")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldStartAt, SortDir: "ASC"}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation times")

		return res, fmt.Errorf("failed to get reservation times: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation times to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation time exists")

		return fmt.Errorf("failed to check if reservation time exists: %w", err)
	}

	if !exist {
		return failure.NotFound("reservation time not found") //nolint:wrapcheck
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return failure.Conflict("reservation time is referenced by a reservation") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete reservation time")

		return fmt.Errorf("failed to delete reservation time: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTimeslot)
	}()

	return nil
}

func (s *serviceImpl) GetAvailability(ctx context.Context, rawDate string, themeID int64) (res dto.GetAvailableTimeslotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err := time.Parse(constant.DateOnlyFormat, rawDate); err != nil {
		return res, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	models, err := s.repo.FindAllWithAvailability(ctx, rawDate, themeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation time availability")

		return res, fmt.Errorf("failed to get reservation time availability: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
