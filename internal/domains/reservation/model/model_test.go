package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roomescape/internal/domains/reservation/model"
)

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()

	date, err := model.ParseDate(raw)
	assert.NoError(t, err)

	return date
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid date", raw: "2026-10-05", wantErr: false},
		{name: "empty string", raw: "", wantErr: true},
		{name: "wrong layout", raw: "05-10-2026", wantErr: true},
		{name: "garbage", raw: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.ParseDate(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlot(t *testing.T) {
	reservation := model.Reservation{
		ID:       1,
		MemberID: 7,
		Date:     mustDate(t, "2026-10-05"),
		TimeID:   2,
		ThemeID:  3,
		Status:   model.StatusStandby,
	}

	slot := reservation.Slot()

	assert.Equal(t, "2026-10-05", slot.Date)
	assert.Equal(t, int64(2), slot.TimeID)
	assert.Equal(t, int64(3), slot.ThemeID)
}

func TestRank(t *testing.T) {
	date := mustDate(t, "2026-10-05")

	standbyB := model.Reservation{ID: 11, MemberID: 2, Date: date, TimeID: 1, ThemeID: 1, Status: model.StatusStandby}
	standbyC := model.Reservation{ID: 12, MemberID: 3, Date: date, TimeID: 1, ThemeID: 1, Status: model.StatusStandby}
	standbyD := model.Reservation{ID: 13, MemberID: 4, Date: date, TimeID: 1, ThemeID: 1, Status: model.StatusStandby}
	standbys := []model.Reservation{standbyB, standbyC, standbyD}

	tests := []struct {
		name     string
		target   model.Reservation
		standbys []model.Reservation
		want     int
	}{
		{
			name:     "confirmed reservation has no rank",
			target:   model.Reservation{ID: 10, Status: model.StatusConfirmed},
			standbys: standbys,
			want:     model.ConfirmedRank,
		},
		{
			name:     "first standby ranks one",
			target:   standbyB,
			standbys: standbys,
			want:     1,
		},
		{
			name:     "second standby ranks two",
			target:   standbyC,
			standbys: standbys,
			want:     2,
		},
		{
			name:     "third standby ranks three",
			target:   standbyD,
			standbys: standbys,
			want:     3,
		},
		{
			name:     "ranks shift up after a deletion ahead in the queue",
			target:   standbyC,
			standbys: []model.Reservation{standbyC, standbyD},
			want:     1,
		},
		{
			name:     "deleting behind does not change the rank",
			target:   standbyC,
			standbys: []model.Reservation{standbyB, standbyC},
			want:     2,
		},
		{
			name:     "lone standby ranks one",
			target:   standbyB,
			standbys: []model.Reservation{standbyB},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Rank(tt.target, tt.standbys))
		})
	}
}
