package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Linking must only touch adjustments that no earlier statement consumed.
func TestRepository_LinkAdjustmentsToStatement_SkipsConsumed(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewRepository(gdb)

	staffID := uuid.New().String()
	statementID := uuid.New().String()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "staff_pay_adjustments" SET "staff_pay_statement_id"=\$1 WHERE staff_id = \$2 AND \(date >= \$3 AND date <= \$4\) AND staff_pay_statement_id IS NULL`).
		WithArgs(statementID, staffID, start, end).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.LinkAdjustmentsToStatement(context.Background(), staffID, start, end, statementID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
