package dto

import (
	"mime/multipart"

	"roomescape/internal/domains/theme/model"
	"roomescape/shared"
	gDto "roomescape/shared/dto"
	gModel "roomescape/shared/model"
	"roomescape/shared/timezone"
)

type CreateThemeRequest struct {
	Name          string                `json:"name"        validate:"required,max=100"`
	Description   string                `json:"description" validate:"omitempty,max=500"`
	Thumbnail     string                `json:"thumbnail"   validate:"omitempty,url"`
	Image         *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
}

func (c *CreateThemeRequest) ToModel(username string, thumbnailURL string) model.Theme {
	thumbnail := c.Thumbnail
	if thumbnailURL != "" {
		thumbnail = thumbnailURL
	}

	return model.Theme{
		Name:        c.Name,
		Description: c.Description,
		Thumbnail:   thumbnail,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type ThemeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	gDto.Metadata
}

func (r *ThemeResponse) FromModel(model model.Theme) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Thumbnail = model.Thumbnail
	r.Metadata.FromModel(model.Metadata)
}

type GetThemesResponse struct {
	Themes    []ThemeResponse `json:"themes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetThemesResponse) FromModels(models []model.Theme, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Themes = make([]ThemeResponse, len(models))
	for i, mod := range models {
		r.Themes[i].FromModel(mod)
	}
}

type PopularThemeResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Thumbnail        string `json:"thumbnail"`
	ReservationCount int    `json:"reservation_count"`
}

func (r *PopularThemeResponse) FromModel(model model.PopularTheme) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Thumbnail = model.Thumbnail
	r.ReservationCount = model.ReservationCount
}

type GetPopularThemesResponse struct {
	Themes []PopularThemeResponse `json:"themes"`
}

func (r *GetPopularThemesResponse) FromModels(models []model.PopularTheme) {
	r.Themes = make([]PopularThemeResponse, len(models))
	for i, mod := range models {
		r.Themes[i].FromModel(mod)
	}
}
