package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomescape/config"
	"roomescape/infras/kafka"
	"roomescape/infras/otel"
	memberModel "roomescape/internal/domains/member/model"
	memberRepo "roomescape/internal/domains/member/repository"
	"roomescape/internal/domains/reservation/model"
	"roomescape/internal/domains/reservation/model/dto"
	"roomescape/internal/domains/reservation/repository"
	themeModel "roomescape/internal/domains/theme/model"
	themeRepo "roomescape/internal/domains/theme/repository"
	timeslotModel "roomescape/internal/domains/timeslot/model"
	timeslotRepo "roomescape/internal/domains/timeslot/repository"
	"roomescape/shared"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	"roomescape/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Reserve(ctx context.Context, memberID int64, req dto.CreateReservationRequest) (dto.MyReservationResponse, error)
	Standby(ctx context.Context, memberID int64, req dto.CreateReservationRequest) (dto.MyReservationResponse, error)
	DeleteStandby(ctx context.Context, reservationID, actingMemberID int64) error
	FindMyReservations(ctx context.Context, memberID int64) (dto.GetMyReservationsResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo         repository.Reservation
	memberRepo   memberRepo.Member
	timeslotRepo timeslotRepo.Timeslot
	themeRepo    themeRepo.Theme
	cfg          *config.Config
	otel         otel.Otel
	producer     kafka.Producer
}

func New(
	repo repository.Reservation,
	memberRepo memberRepo.Member,
	timeslotRepo timeslotRepo.Timeslot,
	themeRepo themeRepo.Theme,
	cfg *config.Config,
	otel otel.Otel,
	producer kafka.Producer,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		memberRepo:   memberRepo,
		timeslotRepo: timeslotRepo,
		themeRepo:    themeRepo,
		cfg:          cfg,
		otel:         otel,
		producer:     producer,
	}
}

// resolveSlot runs the validation sequence shared by Reserve and Standby:
// member existence, date parsing, time slot existence, theme existence,
// and the rejection of slots that are not strictly in the future.
func (s *serviceImpl) resolveSlot(ctx context.Context, memberID int64, req dto.CreateReservationRequest) (date time.Time, err error) {
	memberExists, err := s.memberRepo.Exist(ctx, shared.FilterByID(memberID, memberModel.FieldID, memberModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if member exists")

		return date, fmt.Errorf("failed to check if member exists: %w", err)
	}

	if !memberExists {
		return date, failure.NotFound("member not found") //nolint:wrapcheck
	}

	date, err = model.ParseDate(req.Date)
	if err != nil {
		return date, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	timeslot, err := s.timeslotRepo.Get(ctx, shared.FilterByID(req.TimeID, timeslotModel.FieldID, timeslotModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation time")

		return date, fmt.Errorf("failed to get reservation time: %w", err)
	}

	if timeslot.ID == 0 {
		return date, failure.NotFound("reservation time not found") //nolint:wrapcheck
	}

	themeExists, err := s.themeRepo.Exist(ctx, shared.FilterByID(req.ThemeID, themeModel.FieldID, themeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if theme exists")

		return date, fmt.Errorf("failed to check if theme exists: %w", err)
	}

	if !themeExists {
		return date, failure.NotFound("theme not found") //nolint:wrapcheck
	}

	clock, err := timeslot.Clock()
	if err != nil {
		log.Error().Err(err).Str("start_at", timeslot.StartAt).Msg("failed to parse reservation time start_at")

		return date, fmt.Errorf("failed to parse reservation time start_at: %w", err)
	}

	slotMoment := time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		timezone.GetLocation(),
	)

	if !slotMoment.After(timezone.Now()) {
		return date, failure.BadRequestFromString("cannot book a slot in the past") //nolint:wrapcheck
	}

	return date, nil
}

func (s *serviceImpl) Reserve(ctx context.Context, memberID int64, req dto.CreateReservationRequest) (res dto.MyReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := s.resolveSlot(ctx, memberID, req)
	if err != nil {
		return res, err
	}

	slot := model.Slot{Date: date.Format(constant.DateOnlyFormat), TimeID: req.TimeID, ThemeID: req.ThemeID}

	confirmed, err := s.repo.Exist(ctx, slotFilter(slot, model.StatusConfirmed))
	if err != nil {
		log.Error().Err(err).Msg("failed to check confirmed reservation")

		return res, fmt.Errorf("failed to check confirmed reservation: %w", err)
	}

	if confirmed {
		return res, failure.Conflict("slot already has a confirmed reservation") //nolint:wrapcheck
	}

	username, _ := ctx.Value(constant.ContextKeyMemberEmail).(string)

	id, err := s.repo.Create(ctx, req.ToModel(memberID, date, model.StatusConfirmed, username))
	if err != nil {
		// A concurrent reserve for the same slot may win between the
		// existence check and the insert; the unique index decides.
		switch {
		case errors.Is(err, repository.ErrSlotTaken):
			return res, failure.Conflict("slot already has a confirmed reservation") //nolint:wrapcheck
		case errors.Is(err, repository.ErrMemberSlotTaken):
			return res, failure.Conflict("member already holds a record for this slot") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load created reservation")

		return res, fmt.Errorf("failed to load created reservation: %w", err)
	}

	res.FromModel(record)
	res.Rank = model.ConfirmedRank

	s.publishEvent(ctx, dto.EventReservationConfirmed, record)

	return res, nil
}

func (s *serviceImpl) Standby(ctx context.Context, memberID int64, req dto.CreateReservationRequest) (res dto.MyReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Standby")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := s.resolveSlot(ctx, memberID, req)
	if err != nil {
		return res, err
	}

	slot := model.Slot{Date: date.Format(constant.DateOnlyFormat), TimeID: req.TimeID, ThemeID: req.ThemeID}

	alreadyHolds, err := s.repo.Exist(ctx, memberSlotFilter(memberID, slot))
	if err != nil {
		log.Error().Err(err).Msg("failed to check member records for slot")

		return res, fmt.Errorf("failed to check member records for slot: %w", err)
	}

	if alreadyHolds {
		return res, failure.Conflict("member already holds a record for this slot") //nolint:wrapcheck
	}

	username, _ := ctx.Value(constant.ContextKeyMemberEmail).(string)

	id, err := s.repo.Create(ctx, req.ToModel(memberID, date, model.StatusStandby, username))
	if err != nil {
		if errors.Is(err, repository.ErrMemberSlotTaken) {
			return res, failure.Conflict("member already holds a record for this slot") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create standby")

		return res, fmt.Errorf("failed to create standby: %w", err)
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load created standby")

		return res, fmt.Errorf("failed to load created standby: %w", err)
	}

	standbys, err := s.repo.FindStandbysBySlot(ctx, slot)
	if err != nil {
		log.Error().Err(err).Msg("failed to load standbys for slot")

		return res, fmt.Errorf("failed to load standbys for slot: %w", err)
	}

	res.FromModel(record)
	res.Rank = model.Rank(record, standbys)

	s.publishEvent(ctx, dto.EventReservationStandby, record)

	return res, nil
}

func (s *serviceImpl) DeleteStandby(ctx context.Context, reservationID, actingMemberID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteStandby")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.repo.Get(ctx, shared.FilterByID(reservationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if record.ID == 0 {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	// Ownership is decided by the record's stored member, never by the caller.
	if record.MemberID != actingMemberID {
		return failure.Forbidden("reservation does not belong to the member") //nolint:wrapcheck
	}

	if record.Status != model.StatusStandby {
		return failure.BadRequestFromString("reservation is not a standby") //nolint:wrapcheck
	}

	deleted, err := s.repo.DeleteOwnedStandby(ctx, reservationID, actingMemberID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete standby")

		return fmt.Errorf("failed to delete standby: %w", err)
	}

	if !deleted {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	s.publishEvent(ctx, dto.EventStandbyDeleted, record)

	return nil
}

func (s *serviceImpl) FindMyReservations(ctx context.Context, memberID int64) (res dto.GetMyReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindMyReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	records, err := s.repo.FindAllByMember(ctx, memberID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get member reservations")

		return res, fmt.Errorf("failed to get member reservations: %w", err)
	}

	// Ranks are recomputed on every read so deletions ahead in the queue
	// are reflected immediately. Standby lists per slot are expected to
	// be small; one query per distinct standby slot is acceptable.
	standbysBySlot := map[model.Slot][]model.Reservation{}

	for _, record := range records {
		if record.Status != model.StatusStandby {
			continue
		}

		slot := record.Slot()
		if _, ok := standbysBySlot[slot]; ok {
			continue
		}

		standbys, err := s.repo.FindStandbysBySlot(ctx, slot)
		if err != nil {
			log.Error().Err(err).Msg("failed to get standbys for slot")

			return res, fmt.Errorf("failed to get standbys for slot: %w", err)
		}

		standbysBySlot[slot] = standbys
	}

	res.Reservations = make([]dto.MyReservationResponse, len(records))

	for i, record := range records {
		res.Reservations[i].FromModel(record)
		res.Reservations[i].Rank = model.Rank(record, standbysBySlot[record.Slot()])
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	records, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(records, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, record model.Reservation) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: shared.FormatID(record.ID),
			Value: dto.ReservationEvent{
				Event:         event,
				ReservationID: record.ID,
				MemberID:      record.MemberID,
				Date:          record.FormattedDate(),
				TimeID:        record.TimeID,
				ThemeID:       record.ThemeID,
				Status:        record.Status,
			},
		}

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.Reservation, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish reservation event")
		}
	}()
}

func slotFilter(slot model.Slot, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldDate, Operator: gDto.FilterOperatorEq, Value: slot.Date, Table: model.TableName},
			gDto.Filter{Field: model.FieldTimeID, Operator: gDto.FilterOperatorEq, Value: slot.TimeID, Table: model.TableName},
			gDto.Filter{Field: model.FieldThemeID, Operator: gDto.FilterOperatorEq, Value: slot.ThemeID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName},
		},
	}
}

func memberSlotFilter(memberID int64, slot model.Slot) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldMemberID, Operator: gDto.FilterOperatorEq, Value: memberID, Table: model.TableName},
			gDto.Filter{Field: model.FieldDate, Operator: gDto.FilterOperatorEq, Value: slot.Date, Table: model.TableName},
			gDto.Filter{Field: model.FieldTimeID, Operator: gDto.FilterOperatorEq, Value: slot.TimeID, Table: model.TableName},
			gDto.Filter{Field: model.FieldThemeID, Operator: gDto.FilterOperatorEq, Value: slot.ThemeID, Table: model.TableName},
		},
	}
}
