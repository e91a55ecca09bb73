package autherrors

import (
	"net/http"

	"go-groomops/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"token is invalid",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"refresh token is invalid or expired",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"unknown role",
		http.StatusBadRequest,
	)
)
