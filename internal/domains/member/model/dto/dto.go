package dto

import (
	"roomescape/internal/domains/member/model"
	gDto "roomescape/shared/dto"
)

type MemberResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	gDto.Metadata
}

func (r *MemberResponse) FromModel(model model.Member) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}

type GetMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

func (r *GetMembersResponse) FromModels(models []model.Member) {
	r.Members = make([]MemberResponse, len(models))
	for i, mod := range models {
		r.Members[i].FromModel(mod)
	}
}
