package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"roomescape/infras/otel"
	"roomescape/infras/postgres"
	"roomescape/internal/domains/theme/model"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/logger"
	gRepo "roomescape/shared/repository"

	"github.com/lib/pq"
)

var (
	// ErrDuplicateName reports an insert that collided with an existing
	// theme of the same name.
	ErrDuplicateName = errors.New("theme already exists")

	// ErrInUse reports a delete blocked by reservations referencing the theme.
	ErrInUse = errors.New("theme is referenced by a reservation")
)

type Theme interface {
	Create(ctx context.Context, model model.Theme) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Theme, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Theme, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	DeleteByID(ctx context.Context, id int64) error
	FindPopular(ctx context.Context, startDate, endDate string, limit int) ([]model.PopularTheme, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Theme]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Theme {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Theme](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Create(ctx context.Context, mod model.Theme) (int64, error) {
	id, err := repo.Repository.Create(ctx, mod)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return 0, ErrDuplicateName
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

func (repo *repositoryImpl) FindPopular(ctx context.Context, startDate, endDate string, limit int) (res []model.PopularTheme, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.FindPopular", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT
			t.id, t.name, t.description, t.thumbnail,
			t.created_at, t.modified_at, t.created_by, t.modified_by,
			COUNT(r.id) AS reservation_count
		FROM themes t
		JOIN reservations r
			ON r.theme_id = t.id
			AND r.status = 'CONFIRMED'
			AND r.date BETWEEN :start_date AND :end_date
		GROUP BY t.id, t.name, t.description, t.thumbnail,
			t.created_at, t.modified_at, t.created_by, t.modified_by
		ORDER BY reservation_count DESC, t.id ASC
		LIMIT :limit`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"start_date": startDate,
		"end_date":   endDate,
		"limit":      limit,
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

		return res, fmt.Errorf("failed to get popular themes (%s): %w", model.EntityName, err)
	}

	return res, nil
}
