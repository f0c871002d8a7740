package model

import "nox/shared/model"

const (
	TableName  = "clubs"
	EntityName = "club"

	FieldID          = "id"
	FieldOwnerID     = "owner_id"
	FieldName        = "name"
	FieldCity        = "city"
	FieldAddress     = "address"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldMood        = "mood"
	FieldImage       = "image"
	FieldApproved    = "approved"
)

type Club struct {
	ID          string `db:"id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	City        string `db:"city"`
	Address     string `db:"address"`
	Capacity    int    `db:"capacity"`
	Description string `db:"description"`
	Mood        string `db:"mood"`
	Image       string `db:"image"`
	Approved    bool   `db:"approved"`
	model.Metadata
}
