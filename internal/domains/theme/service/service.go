package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roomescape/config"
	"roomescape/infras/otel"
	"roomescape/infras/s3"
	"roomescape/internal/domains/theme/model"
	"roomescape/internal/domains/theme/model/dto"
	"roomescape/internal/domains/theme/repository"
	"roomescape/shared"
	"roomescape/shared/cache"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	"roomescape/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTheme     = "theme:get"
	cacheGetAllTheme  = "theme:gets"
	cacheCountTheme   = "theme:count"
	cachePopularTheme = "theme:popular"
)

type Theme interface {
	Create(ctx context.Context, req dto.CreateThemeRequest) (dto.ThemeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetThemesResponse, error)
	Get(ctx context.Context, id int64) (dto.ThemeResponse, error)
	Delete(ctx context.Context, id int64) error
	FindPopular(ctx context.Context) (dto.GetPopularThemesResponse, error)
}

type serviceImpl struct {
	repo  repository.Theme
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Theme, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Theme {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateThemeRequest) (res dto.ThemeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyMemberEmail).(string)

	thumbnailURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := uuid.NewString()

		// Keep the original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload thumbnail to S3")

			return res, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
		thumbnailURL = url
		uploadedObjectName = filename
	}

	mod := req.ToModel(username, thumbnailURL)

	id, err := s.repo.Create(ctx, mod)
	if err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		if errors.Is(err, repository.ErrDuplicateName) {
			return res, failure.Conflict("theme name already exists") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create theme")

		return res, fmt.Errorf("failed to create theme: %w", err)
	}

	mod.ID = id
	res.FromModel(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTheme)
		shared.InvalidateCaches(c, s.cache, cacheCountTheme)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetThemesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTheme, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for themes")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count themes")

		return res, fmt.Errorf("failed to count themes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get themes")

		return res, fmt.Errorf("failed to get themes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save themes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ThemeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTheme, shared.FormatID(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for theme")

		return res, nil
	}

	theme, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get theme")

		return res, fmt.Errorf("failed to get theme: %w", err)
	}

	if theme.ID == 0 {
		return res, failure.NotFound("theme not found") //nolint:wrapcheck
	}

	res.FromModel(theme)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save theme to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	theme, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if theme exists")

		return fmt.Errorf("failed to check if theme exists: %w", err)
	}

	if theme.ID == 0 {
		return failure.NotFound("theme not found") //nolint:wrapcheck
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return failure.Conflict("theme is referenced by a reservation") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete theme")

		return fmt.Errorf("failed to delete theme: %w", err)
	}

	if theme.Thumbnail != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, theme.Thumbnail)
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTheme, shared.FormatID(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete theme from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTheme)
		shared.InvalidateCaches(c, s.cache, cacheCountTheme)
	}()

	return nil
}

func (s *serviceImpl) FindPopular(ctx context.Context) (res dto.GetPopularThemesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindPopular")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	endDate := now.AddDate(0, 0, -1).Format(constant.DateOnlyFormat)
	startDate := now.AddDate(0, 0, -constant.PopularThemeWindowDays).Format(constant.DateOnlyFormat)

	cacheKey := shared.BuildCacheKey(cachePopularTheme, startDate, endDate)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for popular themes")

		return res, nil
	}

	models, err := s.repo.FindPopular(ctx, startDate, endDate, constant.PopularThemeLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get popular themes")

		return res, fmt.Errorf("failed to get popular themes: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save popular themes to cache")
		}
	}()

	return res, nil
}
