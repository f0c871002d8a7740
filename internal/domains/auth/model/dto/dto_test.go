package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nox/internal/domains/auth/model/dto"
	"nox/shared/constant"
	"nox/shared/timezone"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "nightowl",
		Email:    "owl@example.com",
		Password: "plaintext-ignored",
		FullName: stringPtr("Night Owl"),
		City:     stringPtr("Berlin"),
	}

	user := req.ToUserModel("hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "nightowl", user.Username)
	assert.Equal(t, "owl@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, "Night Owl", *user.FullName)
	assert.Equal(t, "Berlin", *user.City)
	assert.True(t, user.Active)

	// role defaults to the regular user role when the request omits it
	assert.Equal(t, constant.RoleUser, user.Role)

	// a self-registered user is their own creator
	assert.Equal(t, user.ID, user.Metadata.CreatedBy)
	assert.Equal(t, user.ID, user.Metadata.ModifiedBy)
}

func TestRegisterRequest_ToUserModelWithRole(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "clubboss",
		Email:    "boss@example.com",
		Password: "plaintext-ignored",
		Role:     constant.RoleClubOwner,
	}

	user := req.ToUserModel("hashed-password")

	assert.Equal(t, constant.RoleClubOwner, user.Role)
	assert.Nil(t, user.FullName)
	assert.Nil(t, user.City)
	assert.Nil(t, user.Phone)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}

func TestUpdatePasswordRequest(t *testing.T) {
	hashedPassword := "hashed-new-password"

	req := dto.UpdatePasswordRequest{
		Password: hashedPassword,
	}

	assert.Equal(t, hashedPassword, req.Password)
}

// Helper function to create string pointer
func stringPtr(s string) *string {
	return &s
}
