package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomescape/config"
	"roomescape/infras/otel/mocks"
	s3Mocks "roomescape/infras/s3/mocks"
	themeMocks "roomescape/internal/domains/theme/mocks"
	"roomescape/internal/domains/theme/model"
	"roomescape/internal/domains/theme/model/dto"
	"roomescape/internal/domains/theme/repository"
	"roomescape/internal/domains/theme/service"
	cacheMocks "roomescape/shared/cache/mocks"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
)

type themeServiceMocks struct {
	repo  *themeMocks.MockTheme
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newService(t *testing.T) (service.Theme, themeServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := themeServiceMocks{
		repo:  themeMocks.NewMockTheme(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "roomescape"

	return service.New(m.repo, cfg, m.cache, mocks.NewOtel(), m.s3), m
}

func TestThemeService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateThemeRequest
		setupMock func(m themeServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation without image",
			req:  dto.CreateThemeRequest{Name: "Vault Breakout", Description: "A bank heist gone wrong"},
			setupMock: func(m themeServiceMocks) {
				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(3), nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate theme name",
			req:  dto.CreateThemeRequest{Name: "Vault Breakout"},
			setupMock: func(m themeServiceMocks) {
				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDuplicateName)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  dto.CreateThemeRequest{Name: "Vault Breakout"},
			setupMock: func(m themeServiceMocks) {
				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyMemberEmail, "admin@example.com")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(3), res.ID)
				assert.Equal(t, tt.req.Name, res.Name)
			}

			// Cache invalidation runs on a goroutine.
			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestThemeService_GetAll(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m themeServiceMocks)
		wantErr    bool
		wantResult dto.GetThemesResponse
	}{
		{
			name: "cache hit",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Theme{{ID: 1, Name: "Vault Breakout"}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantResult: dto.GetThemesResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "count error",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestThemeService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m themeServiceMocks)
		wantErr   bool
		wantCode  int
		wantID    int64
	}{
		{
			name: "cache hit",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Theme{ID: 3, Name: "Vault Breakout"}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  3,
		},
		{
			name: "theme not found",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Theme{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Get(context.Background(), 3)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)

				if tt.wantID != 0 {
					assert.Equal(t, tt.wantID, res.ID)
				}
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestThemeService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m themeServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion with thumbnail cleanup",
			setupMock: func(m themeServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Theme{ID: 3, Thumbnail: "https://cdn.example.com/roomescape/theme/abc.jpg"}, nil)

				m.repo.EXPECT().
					DeleteByID(gomock.Any(), int64(3)).
					Return(nil)

				m.s3.EXPECT().
					GetObjectNameFromURL("roomescape", "https://cdn.example.com/roomescape/theme/abc.jpg").
					Return("theme/abc.jpg")

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), "roomescape", model.EntityName, "theme/abc.jpg").
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "theme not found",
			setupMock: func(m themeServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Theme{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "referenced by a reservation",
			setupMock: func(m themeServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Theme{ID: 3}, nil)

				m.repo.EXPECT().
					DeleteByID(gomock.Any(), int64(3)).
					Return(repository.ErrInUse)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			err := svc.Delete(context.Background(), 3)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestThemeService_FindPopular(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m themeServiceMocks)
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache hit",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "cache miss, successful lookup",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					FindPopular(gomock.Any(), gomock.Any(), gomock.Any(), constant.PopularThemeLimit).
					Return([]model.PopularTheme{
						{Theme: model.Theme{ID: 1, Name: "Vault Breakout"}, ReservationCount: 9},
						{Theme: model.Theme{ID: 2, Name: "Haunted Manor"}, ReservationCount: 4},
					}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "repository error",
			setupMock: func(m themeServiceMocks) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					FindPopular(gomock.Any(), gomock.Any(), gomock.Any(), constant.PopularThemeLimit).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.FindPopular(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Themes, tt.wantLen)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
