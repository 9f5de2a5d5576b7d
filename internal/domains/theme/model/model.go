package model

import "roomescape/shared/model"

const (
	TableName  = "themes"
	EntityName = "theme"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldThumbnail   = "thumbnail"
)

type Theme struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Thumbnail   string `db:"thumbnail"`
	model.Metadata
}

// PopularTheme is a Theme annotated with its confirmed reservation count
// over the ranking window.
type PopularTheme struct {
	Theme
	ReservationCount int `db:"reservation_count"`
}
