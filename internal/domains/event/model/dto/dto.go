package dto

import (
	"time"

	"nox/internal/domains/event/model"
	"nox/shared"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	ClubID      string  `json:"club_id"     validate:"required,uuid"`
	Name        string  `json:"name"        validate:"required,max=150"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	City        string  `json:"city"        validate:"required,max=100"`
	EventDate   string  `json:"event_date"  validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time"  validate:"omitempty,datetime=15:04"`
	EndTime     string  `json:"end_time"    validate:"omitempty,datetime=15:04"`
	Capacity    int     `json:"capacity"    validate:"omitempty,min=0"`
	Price       float64 `json:"price"       validate:"omitempty,min=0"`
	Mood        string  `json:"mood"        validate:"omitempty,max=50"`
	Image       string  `json:"image"       validate:"omitempty,url"`
}

func (c *CreateEventRequest) ToModel(user string) (model.Event, error) {
	eventDate, err := timezone.Parse(constant.DateOnlyFormat, c.EventDate)
	if err != nil {
		return model.Event{}, err
	}

	return model.Event{
		ID:          uuid.NewString(),
		ClubID:      c.ClubID,
		Name:        c.Name,
		Description: c.Description,
		City:        c.City,
		EventDate:   eventDate,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Capacity:    c.Capacity,
		Price:       c.Price,
		Status:      model.StatusPlanning,
		Approved:    false,
		Mood:        c.Mood,
		Image:       c.Image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateEventRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=2000"`
	City        string   `db:"city"        json:"city"        validate:"omitempty,max=100"`
	EventDate   string   `db:"event_date"  json:"event_date"  validate:"omitempty,datetime=2006-01-02"`
	StartTime   string   `db:"start_time"  json:"start_time"  validate:"omitempty,datetime=15:04"`
	EndTime     string   `db:"end_time"    json:"end_time"    validate:"omitempty,datetime=15:04"`
	Capacity    *int     `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Status      string   `db:"status"      json:"status"      validate:"omitempty,oneof=planning upcoming past cancelled"`
	Approved    *bool    `db:"approved"    json:"approved"    validate:"omitempty"`
	Mood        string   `db:"mood"        json:"mood"        validate:"omitempty,max=50"`
	Image       string   `db:"image"       json:"image"       validate:"omitempty,url"`
}

type EventResponse struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"club_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	EventDate   time.Time `json:"event_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	Approved    bool      `json:"approved"`
	Mood        string    `json:"mood"`
	Image       string    `json:"image"`
	gDto.Metadata
}

func (e *EventResponse) FromModel(model model.Event) {
	e.ID = model.ID
	e.ClubID = model.ClubID
	e.Name = model.Name
	e.Description = model.Description
	e.City = model.City
	e.EventDate = model.EventDate
	e.StartTime = model.StartTime
	e.EndTime = model.EndTime
	e.Capacity = model.Capacity
	e.Price = model.Price
	e.Status = model.Status
	e.Approved = model.Approved
	e.Mood = model.Mood
	e.Image = model.Image
	e.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		g.Events[i].FromModel(mod)
	}
}
