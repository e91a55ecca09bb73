package invoice

import (
	"errors"

	invoiceerrors "go-groomops/internal/invoice/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoiceerrors.ErrInvoiceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503: claimed customer/appointment row vanished under us.
		if pgErr.Code == "23503" {
			return invoiceerrors.ErrCustomerNotFound
		}
	}

	return err
}
