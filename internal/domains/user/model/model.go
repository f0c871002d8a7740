package model

import (
	"time"

	"nox/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldFullName     = "full_name"
	FieldRole         = "role"
	FieldCity         = "city"
	FieldPhone        = "phone"
	FieldProfileImage = "profile_image"
	FieldActive       = "active"
	FieldLastLogin    = "last_login"
)

type User struct {
	ID           string     `db:"id"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	Password     string     `db:"password"`
	FullName     *string    `db:"full_name"`
	Role         string     `db:"role"`
	City         *string    `db:"city"`
	Phone        *string    `db:"phone"`
	ProfileImage *string    `db:"profile_image"`
	Active       bool       `db:"active"`
	LastLogin    *time.Time `db:"last_login"`
	model.Metadata
}
