package ledgererrors

import (
	"net/http"

	"go-groomops/internal/shared/apperror"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"customer not found",
		http.StatusNotFound,
	)
	ErrInvalidCustomerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid customer id",
		http.StatusBadRequest,
	)
	ErrCustomerIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"customerId is required",
		http.StatusBadRequest,
	)
	ErrNonPositiveAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"ledger amounts cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDirection = apperror.New(
		apperror.CodeInvalidInput,
		"invalid ledger direction",
		http.StatusBadRequest,
	)
	ErrInvalidEntryType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid ledger entry type",
		http.StatusBadRequest,
	)
)
