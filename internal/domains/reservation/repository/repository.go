package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"roomescape/infras/otel"
	"roomescape/infras/postgres"
	"roomescape/internal/domains/reservation/model"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/logger"
	gRepo "roomescape/shared/repository"

	"github.com/lib/pq"
)

var (
	// ErrSlotTaken reports an insert that lost the race for a slot's
	// single confirmed reservation.
	ErrSlotTaken = errors.New("slot already has a confirmed reservation")

	// ErrMemberSlotTaken reports an insert that collided with the
	// member's existing record for the same slot.
	ErrMemberSlotTaken = errors.New("member already holds a record for this slot")
)

type Reservation interface {
	Create(ctx context.Context, model model.Reservation) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	FindAllByMember(ctx context.Context, memberID int64) ([]model.Reservation, error)
	FindStandbysBySlot(ctx context.Context, slot model.Slot) ([]model.Reservation, error)
	DeleteOwnedStandby(ctx context.Context, id, memberID int64) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Create persists the record and relies on the partial unique indexes to
// serialize concurrent inserts for the same slot. Losing inserts surface
// as unique violations and are mapped to sentinel errors by constraint.
func (repo *repositoryImpl) Create(ctx context.Context, mod model.Reservation) (int64, error) {
	id, err := repo.Repository.Create(ctx, mod)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			switch pqErr.Constraint {
			case model.ConstraintConfirmedSlot:
				return 0, ErrSlotTaken
			case model.ConstraintMemberSlot:
				return 0, ErrMemberSlotTaken
			}
		}

		return 0, err
	}

	return id, nil
}

func (repo *repositoryImpl) FindAllByMember(ctx context.Context, memberID int64) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldMemberID,
				Operator: gDto.FilterOperatorEq,
				Value:    memberID,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) FindStandbysBySlot(ctx context.Context, slot model.Slot) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    slot.Date,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTimeID,
				Operator: gDto.FilterOperatorEq,
				Value:    slot.TimeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldThemeID,
				Operator: gDto.FilterOperatorEq,
				Value:    slot.ThemeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusStandby,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, filter)
}

// DeleteOwnedStandby removes a standby record in a single statement that
// re-checks ownership and status, so the read-then-delete sequence cannot
// race with a concurrent mutation.
func (repo *repositoryImpl) DeleteOwnedStandby(ctx context.Context, id, memberID int64) (deleted bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.DeleteOwnedStandby", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = :id AND %s = :member_id AND %s = :status",
		model.TableName, model.FieldID, model.FieldMemberID, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":        id,
		"member_id": memberID,
		"status":    model.StatusStandby,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}
