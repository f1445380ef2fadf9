package model

import "github.com/google/uuid"

type SignUpRequest struct {
	FirstName       string `json:"first_name" validate:"required,alpha_name"`
	LastName        string `json:"last_name" validate:"required,alpha_name"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Image           string `json:"image" validate:"required"`
	Location        string `json:"location" validate:"required"`
	Occupation      string `json:"occupation" validate:"omitempty,alpha_name"`
}

type LogInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// UpdateProfileRequest carries a partial profile update. Absent fields
// are left untouched; present fields are re-validated individually.
// Password changes never go through here, only through the reset flow.
type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name" validate:"omitnil,alpha_name"`
	LastName   *string `json:"last_name" validate:"omitnil,alpha_name"`
	Email      *string `json:"email" validate:"omitnil,email"`
	Image      *string `json:"image"`
	Location   *string `json:"location"`
	Occupation *string `json:"occupation" validate:"omitnil,omitempty,alpha_name"`
}

type ToggleFriendRequest struct {
	FriendID uuid.UUID `json:"friend_id" validate:"required"`
}
