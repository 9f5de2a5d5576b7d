package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"roomescape/infras/otel"
	"roomescape/infras/postgres"
	"roomescape/internal/domains/member/model"
	gDto "roomescape/shared/dto"
	gRepo "roomescape/shared/repository"
)

type Member interface {
	Create(ctx context.Context, model model.Member) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Member, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Member, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Member]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Member {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Member](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
