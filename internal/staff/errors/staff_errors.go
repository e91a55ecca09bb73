package stafferrors

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
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"check-in already recorded for today",
		http.StatusBadRequest,
	)
	ErrNoCheckInToday = apperror.New(
		apperror.CodeInvalidState,
		"no check-in found for today",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"check-out already recorded for today",
		http.StatusBadRequest,
	)
	ErrInvalidAdjustmentType = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment type must be BONUS, DEDUCTION or ADVANCE",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNonPositiveAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
)
