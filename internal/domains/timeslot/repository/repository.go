package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"roomescape/infras/otel"
	"roomescape/infras/postgres"
	"roomescape/internal/domains/timeslot/model"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/logger"
	gRepo "roomescape/shared/repository"

	"github.com/lib/pq"
)

var (
	// ErrDuplicateStartAt reports an insert that collided with an existing
	// time slot for the same start_at.
	ErrDuplicateStartAt = errors.New("reservation time already exists")

	// ErrInUse reports a delete blocked by reservations referencing the slot.
	ErrInUse = errors.New("reservation time is referenced by a reservation")
)

type Timeslot interface {
	Create(ctx context.Context, model model.Timeslot) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Timeslot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Timeslot, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	FindAllWithAvailability(ctx context.Context, date string, themeID int64) ([]model.AvailableTimeslot, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Timeslot]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Timeslot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Timeslot](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Create(ctx context.Context, mod model.Timeslot) (int64, error) {
	id, err := repo.Repository.Create(ctx, mod)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return 0, ErrDuplicateStartAt
		}

		return 0, err
	}

	return id, nil
}

func (repo *repositoryImpl) DeleteByID(ctx context.Context, id int64) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DeleteByID", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = :id", model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = repo.db.Write.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeFkViolation {
			return ErrInUse
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) FindAllWithAvailability(ctx context.Context, date string, themeID int64) (res []model.AvailableTimeslot, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindAllWithAvailability", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT
			rt.id, rt.start_at, rt.created_at, rt.modified_at, rt.created_by, rt.modified_by,
			EXISTS(
				SELECT 1 FROM reservations r
				WHERE r.time_id = rt.id
					AND r.date = :date
					AND r.theme_id = :theme_id
					AND r.status = 'CONFIRMED'
			) AS already_booked
		FROM reservation_times rt
		ORDER BY rt.start_at ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"date":     date,
		"theme_id": themeID,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &res, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get availability (%s): %w", model.EntityName, err)
	}

	return res, nil
}
