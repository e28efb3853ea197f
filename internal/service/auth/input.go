package auth

import (
	"fmt"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// LoginInput holds parameters for Login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	if i.Username == "" || i.Password == "" {
		return domain.NewValidationError("credentials", "Username and password required")
	}
	return nil
}

// ChangePasswordInput holds parameters for ChangePassword.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Validate validates the change-password input against the minimum length.
func (i ChangePasswordInput) Validate(minLength int) error {
	if i.CurrentPassword == "" || i.NewPassword == "" || i.ConfirmPassword == "" {
		return domain.NewValidationError("password", "All fields are required")
	}
	if i.NewPassword != i.ConfirmPassword {
		return domain.NewValidationError("confirmPassword", "New passwords do not match")
	}
	if len(i.NewPassword) < minLength {
		return domain.NewValidationError("newPassword",
			fmt.Sprintf("New password must be at least %d characters", minLength))
	}
	return nil
}
