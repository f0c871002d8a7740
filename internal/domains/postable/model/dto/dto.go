package dto

import (
	"nox/internal/domains/postable/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreatePosTableRequest struct {
	ClubID string `json:"club_id" validate:"required,uuid"`
	Number int    `json:"number"  validate:"required,min=1"`
	Seats  int    `json:"seats"   validate:"required,min=1"`
}

func (c *CreatePosTableRequest) ToModel(user string) model.PosTable {
	return model.PosTable{
		ID:     uuid.NewString(),
		ClubID: c.ClubID,
		Number: c.Number,
		Seats:  c.Seats,
		Status: model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePosTableRequest struct {
	Number *int   `db:"number" json:"number" validate:"omitempty,min=1"`
	Seats  *int   `db:"seats"  json:"seats"  validate:"omitempty,min=1"`
	Status string `db:"status" json:"status" validate:"omitempty,oneof=available occupied reserved cleaning"`
}

type PosTableResponse struct {
	ID     string `json:"id"`
	ClubID string `json:"club_id"`
	Number int    `json:"number"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
	gDto.Metadata
}

func (p *PosTableResponse) FromModel(model model.PosTable) {
	p.ID = model.ID
	p.ClubID = model.ClubID
	p.Number = model.Number
	p.Seats = model.Seats
	p.Status = model.Status
	p.Metadata.FromModel(model.Metadata)
}

type GetPosTablesResponse struct {
	Tables    []PosTableResponse `json:"tables"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetPosTablesResponse) FromModels(models []model.PosTable, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Tables = make([]PosTableResponse, len(models))
	for i, mod := range models {
		g.Tables[i].FromModel(mod)
	}
}
