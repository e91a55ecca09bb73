package invoiceerrors

import (
	"net/http"

	"go-groomops/internal/shared/apperror"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"invoice not found",
		http.StatusNotFound,
	)
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"customer not found",
		http.StatusNotFound,
	)
	ErrAppointmentsConflict = apperror.New(
		apperror.CodeConflict,
		"some appointments are invalid, already billed, or belong to another customer",
		http.StatusConflict,
	)
	ErrOnlyDraftIssuable = apperror.New(
		apperror.CodeInvalidState,
		"only DRAFT invoices can be issued",
		http.StatusBadRequest,
	)
	ErrVoidPaidInvoice = apperror.New(
		apperror.CodeInvalidState,
		"cannot void PAID invoice",
		http.StatusBadRequest,
	)
	ErrAlreadyVoid = apperror.New(
		apperror.CodeInvalidState,
		"invoice is already VOID",
		http.StatusBadRequest,
	)
	ErrCreditNoteState = apperror.New(
		apperror.CodeInvalidState,
		"credit notes can only be created for ISSUED or PAID invoices",
		http.StatusBadRequest,
	)
	ErrNonPositiveAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrReasonTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"reason must be at least 5 characters",
		http.StatusBadRequest,
	)
	ErrInvalidDiscount = apperror.New(
		apperror.CodeInvalidInput,
		"discount_pct must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrInvalidInvoiceID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid invoice id",
		http.StatusBadRequest,
	)
)
