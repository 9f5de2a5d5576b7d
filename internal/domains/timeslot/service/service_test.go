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
	timeslotMocks "roomescape/internal/domains/timeslot/mocks"
	"roomescape/internal/domains/timeslot/model"
	"roomescape/internal/domains/timeslot/model/dto"
	"roomescape/internal/domains/timeslot/repository"
	"roomescape/internal/domains/timeslot/service"
	cacheMocks "roomescape/shared/cache/mocks"
	"roomescape/shared/constant"
	"roomescape/shared/failure"
)

func newService(t *testing.T) (service.Timeslot, *timeslotMocks.MockTimeslot, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := timeslotMocks.NewMockTimeslot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestTimeslotService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTimeslotRequest
		setupMock func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateTimeslotRequest{StartAt: "10:00"},
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate start time",
			req:  dto.CreateTimeslotRequest{StartAt: "10:00"},
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDuplicateStartAt)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  dto.CreateTimeslotRequest{StartAt: "10:00"},
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyMemberEmail, "admin@example.com")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), res.ID)
				assert.Equal(t, "10:00", res.StartAt)
			}

			// Cache invalidation runs on a goroutine.
			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestTimeslotService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache hit",
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Timeslot{
						{ID: 1, StartAt: "10:00:00"},
						{ID: 2, StartAt: "12:00:00"},
					}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "repository error",
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Timeslots, tt.wantLen)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestTimeslotService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					DeleteByID(gomock.Any(), int64(1)).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "reservation time not found",
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "referenced by a reservation",
			setupMock: func(repo *timeslotMocks.MockTimeslot, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					DeleteByID(gomock.Any(), int64(1)).
					Return(repository.ErrInUse)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Delete(context.Background(), 1)

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

func TestTimeslotService_GetAvailability(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		setupMock func(repo *timeslotMocks.MockTimeslot)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful availability lookup",
			date: "2026-10-05",
			setupMock: func(repo *timeslotMocks.MockTimeslot) {
				repo.EXPECT().
					FindAllWithAvailability(gomock.Any(), "2026-10-05", int64(3)).
					Return([]model.AvailableTimeslot{
						{Timeslot: model.Timeslot{ID: 1, StartAt: "10:00:00"}, AlreadyBooked: true},
						{Timeslot: model.Timeslot{ID: 2, StartAt: "12:00:00"}, AlreadyBooked: false},
					}, nil)
			},
			wantErr: false,
		},
		{
			name:      "invalid date format",
			date:      "05-10-2026",
			setupMock: func(repo *timeslotMocks.MockTimeslot) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			date: "2026-10-05",
			setupMock: func(repo *timeslotMocks.MockTimeslot) {
				repo.EXPECT().
					FindAllWithAvailability(gomock.Any(), "2026-10-05", int64(3)).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.GetAvailability(context.Background(), tt.date, 3)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Timeslots, 2)
				assert.True(t, res.Timeslots[0].AlreadyBooked)
				assert.False(t, res.Timeslots[1].AlreadyBooked)
			}
		})
	}
}
