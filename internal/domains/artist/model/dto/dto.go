package dto

import (
	"nox/internal/domains/artist/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateArtistRequest struct {
	UserID    *string `json:"user_id"   validate:"omitempty,uuid"`
	Name      string  `json:"name"      validate:"required,max=100"`
	Genre     string  `json:"genre"     validate:"omitempty,max=50"`
	Bio       string  `json:"bio"       validate:"omitempty,max=2000"`
	City      string  `json:"city"      validate:"omitempty,max=100"`
	Rate      float64 `json:"rate"      validate:"omitempty,min=0"`
	Image     string  `json:"image"     validate:"omitempty,url"`
	Available *bool   `json:"available" validate:"omitempty"`
}

func (c *CreateArtistRequest) ToModel(user string) model.Artist {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Artist{
		ID:        uuid.NewString(),
		UserID:    c.UserID,
		Name:      c.Name,
		Genre:     c.Genre,
		Bio:       c.Bio,
		City:      c.City,
		Rate:      c.Rate,
		Image:     c.Image,
		Available: available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateArtistRequest struct {
	Name      string   `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Genre     string   `db:"genre"     json:"genre"     validate:"omitempty,max=50"`
	Bio       string   `db:"bio"       json:"bio"       validate:"omitempty,max=2000"`
	City      string   `db:"city"      json:"city"      validate:"omitempty,max=100"`
	Rate      *float64 `db:"rate"      json:"rate"      validate:"omitempty,min=0"`
	Image     string   `db:"image"     json:"image"     validate:"omitempty,url"`
	Available *bool    `db:"available" json:"available" validate:"omitempty"`
}

type ArtistResponse struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id"`
	Name      string  `json:"name"`
	Genre     string  `json:"genre"`
	Bio       string  `json:"bio"`
	City      string  `json:"city"`
	Rate      float64 `json:"rate"`
	Image     string  `json:"image"`
	Available bool    `json:"available"`
	gDto.Metadata
}

func (a *ArtistResponse) FromModel(model model.Artist) {
	a.ID = model.ID
	a.UserID = model.UserID
	a.Name = model.Name
	a.Genre = model.Genre
	a.Bio = model.Bio
	a.City = model.City
	a.Rate = model.Rate
	a.Image = model.Image
	a.Available = model.Available
	a.Metadata.FromModel(model.Metadata)
}

type GetArtistsResponse struct {
	Artists   []ArtistResponse `json:"artists"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (g *GetArtistsResponse) FromModels(models []model.Artist, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Artists = make([]ArtistResponse, len(models))
	for i, mod := range models {
		g.Artists[i].FromModel(mod)
	}
}
