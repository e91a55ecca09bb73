package payrollerrors

import (
	"net/http"

	"go-groomops/internal/shared/apperror"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"staff profile not found",
		http.StatusNotFound,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start date must not be after end date",
		http.StatusBadRequest,
	)
)
