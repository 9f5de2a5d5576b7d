package dto

import (
	"roomescape/internal/domains/timeslot/model"
	gDto "roomescape/shared/dto"
	gModel "roomescape/shared/model"
	"roomescape/shared/timezone"
)

type CreateTimeslotRequest struct {
	StartAt string `json:"start_at" validate:"required,datetime=15:04"`
}

func (c *CreateTimeslotRequest) ToModel(username string) model.Timeslot {
	return model.Timeslot{
		StartAt: c.StartAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type TimeslotResponse struct {
	ID      int64  `json:"id"`
	StartAt string `json:"start_at"`
	gDto.Metadata
}

func (r *TimeslotResponse) FromModel(model model.Timeslot) {
	r.ID = model.ID
	r.StartAt = model.FormattedStartAt()
	r.Metadata.FromModel(model.Metadata)
}

type GetTimeslotsResponse struct {
	Timeslots []TimeslotResponse `json:"times"`
}

func (r *GetTimeslotsResponse) FromModels(models []model.Timeslot) {
	r.Timeslots = make([]TimeslotResponse, len(models))
	for i, mod := range models {
		r.Timeslots[i].FromModel(mod)
	}
}

type AvailableTimeslotResponse struct {
	ID            int64  `json:"id"`
	StartAt       string `json:"start_at"`
	AlreadyBooked bool   `json:"already_booked"`
}

func (r *AvailableTimeslotResponse) FromModel(model model.AvailableTimeslot) {
	r.ID = model.ID
	r.StartAt = model.FormattedStartAt()
	r.AlreadyBooked = model.AlreadyBooked
}

type GetAvailableTimeslotsResponse struct {
	Timeslots []AvailableTimeslotResponse `json:"times"`
}

func (r *GetAvailableTimeslotsResponse) FromModels(models []model.AvailableTimeslot) {
	r.Timeslots = make([]AvailableTimeslotResponse, len(models))
	for i, mod := range models {
		r.Timeslots[i].FromModel(mod)
	}
}
