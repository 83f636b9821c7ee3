package domain

import (
	"errors"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login successful"
	MessageSuccessGetMe            = "user retrieved successfully"
	MessageSuccessUpdateUser       = "user updated successfully"
	MessageSuccessSendVerification = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessForgotPassword   = "password reset email sent"
	MessageSuccessResetPassword    = "password reset successfully"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetMe            = "failed to retrieve user"
	MessageFailedUpdateUser       = "failed to update user"
	MessageFailedSendVerification = "failed to send verification email"
	MessageFailedVerifyEmail      = "failed to verify email"
	MessageFailedForgotPassword   = "failed to send password reset email"
	MessageFailedResetPassword    = "failed to reset password"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrWrongCredentials   = errors.New("wrong email or password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	MeResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		IsVerified bool   `json:"is_verified"`
		AvatarURL  string `json:"avatar_url,omitempty"`
	}

	UpdateUserRequest struct {
		Name string `json:"name" validate:"omitempty"`
	}

	SendVerificationRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
)
