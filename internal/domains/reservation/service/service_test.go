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
	"roomescape/infras/kafka"
	kafkaMocks "roomescape/infras/kafka/mocks"
	"roomescape/infras/otel/mocks"
	memberMocks "roomescape/internal/domains/member/mocks"
	reservationMocks "roomescape/internal/domains/reservation/mocks"
	"roomescape/internal/domains/reservation/model"
	"roomescape/internal/domains/reservation/model/dto"
	"roomescape/internal/domains/reservation/repository"
	"roomescape/internal/domains/reservation/service"
	themeMocks "roomescape/internal/domains/theme/mocks"
	timeslotMocks "roomescape/internal/domains/timeslot/mocks"
	timeslotModel "roomescape/internal/domains/timeslot/model"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	"roomescape/shared/timezone"
)

const (
	futureDate = "2100-01-01"
	pastDate   = "2000-01-01"
)

type serviceMocks struct {
	repo     *reservationMocks.MockReservation
	member   *memberMocks.MockMember
	timeslot *timeslotMocks.MockTimeslot
	theme    *themeMocks.MockTheme
	producer *kafkaMocks.MockProducer
}

func newService(t *testing.T) (service.Reservation, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		repo:     reservationMocks.NewMockReservation(ctrl),
		member:   memberMocks.NewMockMember(ctrl),
		timeslot: timeslotMocks.NewMockTimeslot(ctrl),
		theme:    themeMocks.NewMockTheme(ctrl),
		producer: kafkaMocks.NewMockProducer(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.Topics.Reservation = "reservation"

	svc := service.New(m.repo, m.member, m.timeslot, m.theme, cfg, mocks.NewOtel(), m.producer)

	return svc, m
}

// expectSlotResolution wires the lookups shared by Reserve and Standby for a
// slot that exists and lies in the future.
func expectSlotResolution(m serviceMocks) {
	m.member.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	m.timeslot.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(timeslotModel.Timeslot{ID: 2, StartAt: "10:00"}, nil)

	m.theme.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)
}

// expectSlotResolutionAt is expectSlotResolution with a caller-chosen time of
// day on the resolved slot.
func expectSlotResolutionAt(m serviceMocks, startAt string) {
	m.member.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	m.timeslot.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(timeslotModel.Timeslot{ID: 2, StartAt: startAt}, nil)

	m.theme.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)
}

// expectPublish wires the event producer and returns a channel that signals
// once the fire-and-forget goroutine has published.
func expectPublish(m serviceMocks) <-chan struct{} {
	published := make(chan struct{}, 1)

	m.producer.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, ...kafka.Message) error {
			published <- struct{}{}

			return nil
		})

	return published
}

func waitForPublish(t *testing.T, published <-chan struct{}) {
	t.Helper()

	if published == nil {
		return
	}

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reservation event")
	}
}

func futureRecord(id, memberID int64, status string) model.Reservation {
	date, _ := model.ParseDate(futureDate)

	return model.Reservation{
		ID:       id,
		MemberID: memberID,
		Date:     date,
		TimeID:   2,
		ThemeID:  3,
		Status:   status,
	}
}

func TestReservationService_Reserve(t *testing.T) {
	req := dto.CreateReservationRequest{Date: futureDate, TimeID: 2, ThemeID: 3}

	// A slot on today's date whose time of day has just gone by. Date and
	// start_at derive from the same instant so the pair stays consistent
	// across midnight.
	sameDayMoment := timezone.Now().Add(-time.Minute)
	sameDayReq := dto.CreateReservationRequest{
		Date:    sameDayMoment.Format(constant.DateOnlyFormat),
		TimeID:  2,
		ThemeID: 3,
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(m serviceMocks) <-chan struct{}
		wantErr   bool
		wantCode  int
		wantRank  int
	}{
		{
			name: "successful reservation",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(5), nil)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureRecord(5, 1, model.StatusConfirmed), nil)

				return expectPublish(m)
			},
			wantErr:  false,
			wantRank: model.ConfirmedRank,
		},
		{
			name: "member not found",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.member.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "invalid date format",
			req:  dto.CreateReservationRequest{Date: "01-10-2026", TimeID: 2, ThemeID: 3},
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.member.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "reservation time not found",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.member.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.timeslot.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(timeslotModel.Timeslot{}, nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "theme not found",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.member.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.timeslot.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(timeslotModel.Timeslot{ID: 2, StartAt: "10:00"}, nil)

				m.theme.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "slot in the past",
			req:  dto.CreateReservationRequest{Date: pastDate, TimeID: 2, ThemeID: 3},
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "slot today one minute in the past",
			req:  sameDayReq,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolutionAt(m, sameDayMoment.Format(timeslotModel.StartAtFormat))

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "slot already confirmed",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "concurrent reserve loses the unique index race",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrSlotTaken)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "member already holds a record for the slot",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrMemberSlotTaken)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))

				return nil
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			published := tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyMemberEmail, "member@example.com")
			res, err := svc.Reserve(ctx, 1, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(5), res.ID)
				assert.Equal(t, model.StatusConfirmed, res.Status)
				assert.Equal(t, tt.wantRank, res.Rank)
			}

			waitForPublish(t, published)
		})
	}
}

func TestReservationService_Standby(t *testing.T) {
	req := dto.CreateReservationRequest{Date: futureDate, TimeID: 2, ThemeID: 3}

	sameDayMoment := timezone.Now().Add(-time.Minute)
	sameDayReq := dto.CreateReservationRequest{
		Date:    sameDayMoment.Format(constant.DateOnlyFormat),
		TimeID:  2,
		ThemeID: 3,
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(m serviceMocks) <-chan struct{}
		wantErr   bool
		wantCode  int
		wantRank  int
	}{
		{
			name: "first standby ranks one",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(11), nil)

				record := futureRecord(11, 1, model.StatusStandby)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(record, nil)

				m.repo.EXPECT().
					FindStandbysBySlot(gomock.Any(), gomock.Any()).
					Return([]model.Reservation{record}, nil)

				return expectPublish(m)
			},
			wantErr:  false,
			wantRank: 1,
		},
		{
			name: "later standby ranks behind earlier ones",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(13), nil)

				record := futureRecord(13, 1, model.StatusStandby)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(record, nil)

				m.repo.EXPECT().
					FindStandbysBySlot(gomock.Any(), gomock.Any()).
					Return([]model.Reservation{
						futureRecord(11, 2, model.StatusStandby),
						futureRecord(12, 3, model.StatusStandby),
						record,
					}, nil)

				return expectPublish(m)
			},
			wantErr:  false,
			wantRank: 3,
		},
		{
			name: "slot today one minute in the past",
			req:  sameDayReq,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolutionAt(m, sameDayMoment.Format(timeslotModel.StartAtFormat))

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "member already holds a record for the slot",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "concurrent duplicate loses the unique index race",
			req:  req,
			setupMock: func(m serviceMocks) <-chan struct{} {
				expectSlotResolution(m)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrMemberSlotTaken)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			published := tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyMemberEmail, "member@example.com")
			res, err := svc.Standby(ctx, 1, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusStandby, res.Status)
				assert.Equal(t, tt.wantRank, res.Rank)
			}

			waitForPublish(t, published)
		})
	}
}

func TestReservationService_DeleteStandby(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m serviceMocks) <-chan struct{}
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner deletes own standby",
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureRecord(11, 1, model.StatusStandby), nil)

				m.repo.EXPECT().
					DeleteOwnedStandby(gomock.Any(), int64(11), int64(1)).
					Return(true, nil)

				return expectPublish(m)
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "another member's standby",
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureRecord(11, 2, model.StatusStandby), nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "confirmed reservation is not a standby",
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureRecord(11, 1, model.StatusConfirmed), nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "record vanished before the delete",
			setupMock: func(m serviceMocks) <-chan struct{} {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureRecord(11, 1, model.StatusStandby), nil)

				m.repo.EXPECT().
					DeleteOwnedStandby(gomock.Any(), int64(11), int64(1)).
					Return(false, nil)

				return nil
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			published := tt.setupMock(m)

			err := svc.DeleteStandby(context.Background(), 11, 1)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.True(t, failure.Is(err, tt.wantCode))
				}
			} else {
				assert.NoError(t, err)
			}

			waitForPublish(t, published)
		})
	}
}

func TestReservationService_FindMyReservations(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantRanks []int
	}{
		{
			name: "confirmed and standby records with live ranks",
			setupMock: func(m serviceMocks) {
				confirmed := futureRecord(10, 1, model.StatusConfirmed)
				standby := futureRecord(12, 1, model.StatusStandby)

				m.repo.EXPECT().
					FindAllByMember(gomock.Any(), int64(1)).
					Return([]model.Reservation{confirmed, standby}, nil)

				m.repo.EXPECT().
					FindStandbysBySlot(gomock.Any(), standby.Slot()).
					Return([]model.Reservation{
						futureRecord(11, 2, model.StatusStandby),
						standby,
					}, nil)
			},
			wantErr:   false,
			wantRanks: []int{model.ConfirmedRank, 2},
		},
		{
			name: "empty list",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					FindAllByMember(gomock.Any(), int64(1)).
					Return([]model.Reservation{}, nil)
			},
			wantErr:   false,
			wantRanks: []int{},
		},
		{
			name: "repository error",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					FindAllByMember(gomock.Any(), int64(1)).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.FindMyReservations(context.Background(), 1)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Reservations, len(tt.wantRanks))

				for i, rank := range tt.wantRanks {
					assert.Equal(t, rank, res.Reservations[i].Rank)
				}
			}
		})
	}
}

func TestReservationService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func(m serviceMocks) {
				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Reservation{
						futureRecord(10, 1, model.StatusConfirmed),
						futureRecord(11, 2, model.StatusStandby),
					}, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "count error",
			setupMock: func(m serviceMocks) {
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

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}
