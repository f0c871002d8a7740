package dto

import (
	"nox/internal/domains/invitation/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateInvitationRequest struct {
	ClubID   string  `json:"club_id"   validate:"required,uuid"`
	ArtistID string  `json:"artist_id" validate:"required,uuid"`
	EventID  *string `json:"event_id"  validate:"omitempty,uuid"`
	Message  string  `json:"message"   validate:"omitempty,max=2000"`
}

func (c *CreateInvitationRequest) ToModel(user string) model.Invitation {
	return model.Invitation{
		ID:       uuid.NewString(),
		ClubID:   c.ClubID,
		ArtistID: c.ArtistID,
		EventID:  c.EventID,
		Message:  c.Message,
		Status:   model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RespondInvitationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined withdrawn"`
}

type InvitationResponse struct {
	ID       string  `json:"id"`
	ClubID   string  `json:"club_id"`
	ArtistID string  `json:"artist_id"`
	EventID  *string `json:"event_id"`
	Message  string  `json:"message"`
	Status   string  `json:"status"`
	gDto.Metadata
}

func (i *InvitationResponse) FromModel(model model.Invitation) {
	i.ID = model.ID
	i.ClubID = model.ClubID
	i.ArtistID = model.ArtistID
	i.EventID = model.EventID
	i.Message = model.Message
	i.Status = model.Status
	i.Metadata.FromModel(model.Metadata)
}

type GetInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (g *GetInvitationsResponse) FromModels(models []model.Invitation, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Invitations = make([]InvitationResponse, len(models))
	for i, mod := range models {
		g.Invitations[i].FromModel(mod)
	}
}
