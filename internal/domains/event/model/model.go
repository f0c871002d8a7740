package model

import (
	"time"

	"nox/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID          = "id"
	FieldClubID      = "club_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCity        = "city"
	FieldEventDate   = "event_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldCapacity    = "capacity"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldApproved    = "approved"
	FieldMood        = "mood"
	FieldImage       = "image"
)

const (
	StatusPlanning  = "planning"
	StatusUpcoming  = "upcoming"
	StatusPast      = "past"
	StatusCancelled = "cancelled"
)

type Event struct {
	ID          string    `db:"id"`
	ClubID      string    `db:"club_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	City        string    `db:"city"`
	EventDate   time.Time `db:"event_date"`
	StartTime   string    `db:"start_time"`
	EndTime     string    `db:"end_time"`
	Capacity    int       `db:"capacity"`
	Price       float64   `db:"price"`
	Status      string    `db:"status"`
	Approved    bool      `db:"approved"`
	Mood        string    `db:"mood"`
	Image       string    `db:"image"`
	model.Metadata
}
