package transport

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)
	return gdb, mock
}

// Repricing keeps old snapshot rows intact: insert the new row, repoint the
// quote, commit as one unit.
func TestRepository_ReplaceActiveSnapshot(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewRepository(gdb)

	quoteID := uuid.New()
	snapshot := &PricingSnapshot{
		QuoteID:     quoteID,
		Largada:     decimal.RequireFromString("10"),
		Leva:        decimal.RequireFromString("20"),
		Traz:        decimal.RequireFromString("15"),
		Retorno:     decimal.RequireFromString("5"),
		TotalAmount: decimal.RequireFromString("50"),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transport_pricing_snapshots"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "transport_quotes" SET "active_snapshot_id"=\$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceActiveSnapshot(context.Background(), quoteID.String(), snapshot)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, snapshot.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
