package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"api-server/app/domain"
	"api-server/app/rest/render"
	apperrors "api-server/app/utils/errors"
)

// UserPayload is the wire representation of a user.
type UserPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfilePic   string `json:"profilePic,omitempty"`
	ProviderType string `json:"providerType"`
	ProviderID   string `json:"providerId"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// LoginPayload is the data section of a successful login response.
type LoginPayload struct {
	User  UserPayload `json:"user"`
	Token string      `json:"token"`
}

func serializeUser(user *domain.User) UserPayload {
	return UserPayload{
		ID:           user.ID(),
		Name:         user.Name(),
		Email:        user.Email(),
		ProfilePic:   user.Picture(),
		ProviderType: string(user.Provider().Type),
		ProviderID:   user.ProviderID(),
		CreatedAt:    user.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    user.UpdatedAt().Format(time.RFC3339),
	}
}

func respondSuccess(c echo.Context, data interface{}) error {
	return render.Success(c, data)
}

func respondError(c echo.Context, appErr *apperrors.AppError) error {
	return render.Error(c, appErr)
}
