package dto

import (
	"nox/internal/domains/clubtable/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateClubTableRequest struct {
	ClubID   string  `json:"club_id"  validate:"required,uuid"`
	Label    string  `json:"label"    validate:"required,max=50"`
	Capacity int     `json:"capacity" validate:"required,min=1"`
	Price    float64 `json:"price"    validate:"omitempty,min=0"`
}

func (c *CreateClubTableRequest) ToModel(user string) model.ClubTable {
	return model.ClubTable{
		ID:        uuid.NewString(),
		ClubID:    c.ClubID,
		Label:     c.Label,
		Capacity:  c.Capacity,
		Price:     c.Price,
		Available: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClubTableRequest struct {
	Label    string   `db:"label"    json:"label"    validate:"omitempty,max=50"`
	Capacity *int     `db:"capacity" json:"capacity" validate:"omitempty,min=1"`
	Price    *float64 `db:"price"    json:"price"    validate:"omitempty,min=0"`
}

type ClubTableResponse struct {
	ID        string  `json:"id"`
	ClubID    string  `json:"club_id"`
	Label     string  `json:"label"`
	Capacity  int     `json:"capacity"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	gDto.Metadata
}

func (c *ClubTableResponse) FromModel(model model.ClubTable) {
	c.ID = model.ID
	c.ClubID = model.ClubID
	c.Label = model.Label
	c.Capacity = model.Capacity
	c.Price = model.Price
	c.Available = model.Available
	c.Metadata.FromModel(model.Metadata)
}

type GetClubTablesResponse struct {
	Tables    []ClubTableResponse `json:"tables"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (g *GetClubTablesResponse) FromModels(models []model.ClubTable, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Tables = make([]ClubTableResponse, len(models))
	for i, mod := range models {
		g.Tables[i].FromModel(mod)
	}
}
