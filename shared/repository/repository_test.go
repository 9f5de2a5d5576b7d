package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomescape/infras/otel/mocks"
)

type sortedEntity struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	MemberName string `db:"member_name" table:"members" column:"name"`
}

func TestRepository_SortColumn(t *testing.T) {
	repo := NewRepository[sortedEntity]("sortedEntity", "records", "id", nil, mocks.NewOtel())

	tests := []struct {
		name   string
		sortBy string
		want   string
		wantOK bool
	}{
		{
			name:   "own column",
			sortBy: "name",
			want:   "records.name",
			wantOK: true,
		},
		{
			name:   "primary key",
			sortBy: "id",
			want:   "records.id",
			wantOK: true,
		},
		{
			name:   "joined column by alias",
			sortBy: "member_name",
			want:   "members.name",
			wantOK: true,
		},
		{
			name:   "joined column by source name is not addressable",
			sortBy: "members.name",
			wantOK: false,
		},
		{
			name:   "unknown column",
			sortBy: "created_at",
			wantOK: false,
		},
		{
			name:   "injection shaped key",
			sortBy: "name; DROP TABLE records; --",
			wantOK: false,
		},
		{
			name:   "subquery expression",
			sortBy: "(SELECT 1)",
			wantOK: false,
		},
		{
			name:   "empty key",
			sortBy: "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := repo.sortColumn(tt.sortBy)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
