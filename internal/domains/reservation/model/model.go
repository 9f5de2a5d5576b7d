package model

import (
	"time"

	"roomescape/shared/constant"
	"roomescape/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID       = "id"
	FieldMemberID = "member_id"
	FieldDate     = "date"
	FieldTimeID   = "time_id"
	FieldThemeID  = "theme_id"
	FieldStatus   = "status"

	StatusConfirmed = "CONFIRMED"
	StatusStandby   = "STANDBY"

	// ConfirmedRank is reported for confirmed records, whose queue
	// position is not meaningful.
	ConfirmedRank = 0

	// Constraint names the storage layer raises unique violations under.
	ConstraintConfirmedSlot = "uq_reservations_confirmed_slot"
	ConstraintMemberSlot    = "uq_reservations_member_slot"
)

// Slot identifies a bookable (date, time of day, theme) combination. Two
// records claim the same slot exactly when their Slots compare equal.
type Slot struct {
	Date    string
	TimeID  int64
	ThemeID int64
}

// ParseDate validates a raw calendar date in YYYY-MM-DD form.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(constant.DateOnlyFormat, raw)
}

type Reservation struct {
	ID         int64     `db:"id"`
	MemberID   int64     `db:"member_id"`
	Date       time.Time `db:"date"`
	TimeID     int64     `db:"time_id"`
	ThemeID    int64     `db:"theme_id"`
	Status     string    `db:"status"`
	MemberName string    `db:"member_name" table:"members"           column:"name"`
	ThemeName  string    `db:"theme_name"  table:"themes"            column:"name"`
	StartAt    string    `db:"start_at"    table:"reservation_times"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return `JOIN members ON members.id = reservations.member_id
		JOIN reservation_times ON reservation_times.id = reservations.time_id
		JOIN themes ON themes.id = reservations.theme_id`
}

// Slot returns the record's slot identity.
func (r Reservation) Slot() Slot {
	return Slot{
		Date:    r.Date.Format(constant.DateOnlyFormat),
		TimeID:  r.TimeID,
		ThemeID: r.ThemeID,
	}
}

// FormattedDate renders the slot date in its wire form.
func (r Reservation) FormattedDate() string {
	return r.Date.Format(constant.DateOnlyFormat)
}

// Rank returns the 1-based queue position of target among the standby
// records for its slot: one more than the number of standby records
// created strictly before it. Surrogate ids are assigned in strictly
// increasing creation order, so they are the sole ordering key.
// Confirmed records report ConfirmedRank.
func Rank(target Reservation, standbysForSlot []Reservation) int {
	if target.Status == StatusConfirmed {
		return ConfirmedRank
	}

	rank := 1

	for _, other := range standbysForSlot {
		if other.Status != StatusStandby {
			continue
		}

		if other.ID < target.ID {
			rank++
		}
	}

	return rank
}
