package dto

import (
	"mime/multipart"

	"nox/internal/domains/club/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateClubRequest struct {
	OwnerID     string                `json:"owner_id"    validate:"required,uuid"`
	Name        string                `json:"name"        validate:"required,max=100"`
	City        string                `json:"city"        validate:"required,max=100"`
	Address     string                `json:"address"     validate:"omitempty,max=255"`
	Capacity    int                   `json:"capacity"    validate:"omitempty,min=0"`
	Description string                `json:"description" validate:"omitempty,max=2000"`
	Mood        string                `json:"mood"        validate:"omitempty,max=50"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateClubRequest) ToModel(user string, imageURL string) model.Club {
	return model.Club{
		ID:          uuid.NewString(),
		OwnerID:     c.OwnerID,
		Name:        c.Name,
		City:        c.City,
		Address:     c.Address,
		Capacity:    c.Capacity,
		Description: c.Description,
		Mood:        c.Mood,
		Image:       imageURL,
		Approved:    false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClubRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	City        string                `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Address     string                `db:"address"     json:"address"     validate:"omitempty,max=255"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=2000"`
	Mood        string                `db:"mood"        json:"mood"        validate:"omitempty,max=50"`
	Approved    *bool                 `db:"approved"    json:"approved"    validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

type ClubResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
	Mood        string `json:"mood"`
	Image       string `json:"image"`
	Approved    bool   `json:"approved"`
	gDto.Metadata
}

func (c *ClubResponse) FromModel(model model.Club) {
	c.ID = model.ID
	c.OwnerID = model.OwnerID
	c.Name = model.Name
	c.City = model.City
	c.Address = model.Address
	c.Capacity = model.Capacity
	c.Description = model.Description
	c.Mood = model.Mood
	c.Image = model.Image
	c.Approved = model.Approved
	c.Metadata.FromModel(model.Metadata)
}

type GetClubsResponse struct {
	Clubs     []ClubResponse `json:"clubs"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetClubsResponse) FromModels(models []model.Club, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Clubs = make([]ClubResponse, len(models))
	for i, mod := range models {
		g.Clubs[i].FromModel(mod)
	}
}
