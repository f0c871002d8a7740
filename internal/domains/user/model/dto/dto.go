package dto

import (
	"time"

	"nox/internal/domains/user/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username string  `json:"username"  validate:"required,min=3,max=50,alphanum"`
	Email    string  `json:"email"     validate:"required,email"`
	Password string  `json:"password"  validate:"required,min=8"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Role     string  `json:"role"      validate:"omitempty,oneof=user club_owner artist admin"`
	City     *string `json:"city"      validate:"omitempty,max=100"`
	Phone    *string `json:"phone"     validate:"omitempty,max=20"`
}

func (c *CreateUserRequest) ToModel(createdBy string, hashedPassword string) model.User {
	role := c.Role
	if role == "" {
		role = "user"
	}

	return model.User{
		ID:       uuid.NewString(),
		Username: c.Username,
		Email:    c.Email,
		Password: hashedPassword,
		FullName: c.FullName,
		Role:     role,
		City:     c.City,
		Phone:    c.Phone,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateUserRequest struct {
	FullName     string `db:"full_name"     json:"full_name"     validate:"omitempty,max=100"`
	City         string `db:"city"          json:"city"          validate:"omitempty,max=100"`
	Phone        string `db:"phone"         json:"phone"         validate:"omitempty,max=20"`
	ProfileImage string `db:"profile_image" json:"profile_image" validate:"omitempty,url"`
	Role         string `db:"role"          json:"role"          validate:"omitempty,oneof=user club_owner artist admin"`
	Active       *bool  `db:"active"        json:"active"        validate:"omitempty"`
}

type UserResponse struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     *string    `json:"full_name"`
	Role         string     `json:"role"`
	City         *string    `json:"city"`
	Phone        *string    `json:"phone"`
	ProfileImage *string    `json:"profile_image"`
	Active       bool       `json:"active"`
	LastLogin    *time.Time `json:"last_login"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Username = model.Username
	u.Email = model.Email
	u.FullName = model.FullName
	u.Role = model.Role
	u.City = model.City
	u.Phone = model.Phone
	u.ProfileImage = model.ProfileImage
	u.Active = model.Active
	u.LastLogin = model.LastLogin
	u.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		g.Users[i].FromModel(mod)
	}
}
