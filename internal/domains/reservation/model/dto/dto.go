package dto

import (
	"time"

	"roomescape/internal/domains/reservation/model"
	"roomescape/shared"
	gDto "roomescape/shared/dto"
	gModel "roomescape/shared/model"
	"roomescape/shared/timezone"
)

type CreateReservationRequest struct {
	Date    string `json:"date"     validate:"required"`
	TimeID  int64  `json:"time_id"  validate:"required,min=1"`
	ThemeID int64  `json:"theme_id" validate:"required,min=1"`
}

func (c *CreateReservationRequest) ToModel(memberID int64, date time.Time, status, username string) model.Reservation {
	return model.Reservation{
		MemberID: memberID,
		Date:     date,
		TimeID:   c.TimeID,
		ThemeID:  c.ThemeID,
		Status:   status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type ReservationResponse struct {
	ID         int64  `json:"id"`
	MemberID   int64  `json:"member_id"`
	MemberName string `json:"member_name"`
	Date       string `json:"date"`
	TimeID     int64  `json:"time_id"`
	StartAt    string `json:"start_at"`
	ThemeID    int64  `json:"theme_id"`
	ThemeName  string `json:"theme_name"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.MemberID = model.MemberID
	r.MemberName = model.MemberName
	r.Date = model.FormattedDate()
	r.TimeID = model.TimeID
	r.StartAt = model.StartAt
	r.ThemeID = model.ThemeID
	r.ThemeName = model.ThemeName
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

// MyReservationResponse annotates a record with its live standby rank.
// Rank is 0 for confirmed records.
type MyReservationResponse struct {
	ReservationResponse
	Rank int `json:"rank"`
}

type GetMyReservationsResponse struct {
	Reservations []MyReservationResponse `json:"reservations"`
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationEvent is the payload published to kafka on reservation
// lifecycle transitions.
type ReservationEvent struct {
	Event         string `json:"event"`
	ReservationID int64  `json:"reservation_id"`
	MemberID      int64  `json:"member_id"`
	Date          string `json:"date"`
	TimeID        int64  `json:"time_id"`
	ThemeID       int64  `json:"theme_id"`
	Status        string `json:"status"`
}

const (
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationStandby   = "reservation.standby"
	EventStandbyDeleted       = "reservation.standby_deleted"
)
