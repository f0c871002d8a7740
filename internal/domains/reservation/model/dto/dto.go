package dto

import (
	"time"

	"nox/internal/domains/reservation/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
	TableID string `json:"table_id" validate:"required,uuid"`
}

func (c *CreateReservationRequest) ToModel(user string) model.Reservation {
	return model.Reservation{
		ID:         uuid.NewString(),
		EventID:    c.EventID,
		TableID:    c.TableID,
		ReservedBy: user,
		Status:     model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReservationResponse struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	TableID    string     `json:"table_id"`
	ReservedBy string     `json:"reserved_by"`
	Status     string     `json:"status"`
	ReleasedAt *time.Time `json:"released_at"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.TableID = model.TableID
	r.ReservedBy = model.ReservedBy
	r.Status = model.Status
	r.ReleasedAt = model.ReleasedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (g *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		g.Reservations[i].FromModel(mod)
	}
}
