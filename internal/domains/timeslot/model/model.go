package model

import (
	"time"

	"roomescape/shared/model"
)

const (
	TableName  = "reservation_times"
	EntityName = "reservation_time"

	FieldID      = "id"
	FieldStartAt = "start_at"

	// StartAtFormat is the wire format for a slot's time of day.
	StartAtFormat = "15:04"

	// startAtDBFormat is how postgres renders a TIME column.
	startAtDBFormat = "15:04:05"
)

type Timeslot struct {
	ID      int64  `db:"id"`
	StartAt string `db:"start_at"`
	model.Metadata
}

// AvailableTimeslot is a Timeslot annotated with whether a confirmed
// reservation already holds it for a given (date, theme).
type AvailableTimeslot struct {
	Timeslot
	AlreadyBooked bool `db:"already_booked"`
}

// Clock parses the stored start_at value into a time-of-day.
func (t Timeslot) Clock() (time.Time, error) {
	clock, err := time.Parse(startAtDBFormat, t.StartAt)
	if err == nil {
		return clock, nil
	}

	return time.Parse(StartAtFormat, t.StartAt)
}

// FormattedStartAt renders start_at as HH:MM regardless of how the
// storage layer returned it.
func (t Timeslot) FormattedStartAt() string {
	clock, err := t.Clock()
	if err != nil {
		return t.StartAt
	}

	return clock.Format(StartAtFormat)
}
