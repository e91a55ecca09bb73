package staff

import (
	"context"
	"testing"
	"time"

	stafferrors "go-groomops/internal/staff/errors"

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

type fakeRepo struct {
	findByIDFn           func(ctx context.Context, id string) (*Profile, error)
	findAttendanceFn     func(ctx context.Context, staffID string, date time.Time) (*AttendanceRecord, error)
	createAttendanceFn   func(ctx context.Context, record *AttendanceRecord) error
	updateAttendanceFn   func(ctx context.Context, record *AttendanceRecord) error
	createAdjustmentFn   func(ctx context.Context, adj *PayAdjustment) error
	attendanceInRangeFn  func(ctx context.Context, staffID string, start, end time.Time) ([]AttendanceRecord, error)
	adjustmentsInRangeFn func(ctx context.Context, staffID string, start, end time.Time) ([]PayAdjustment, error)
	executionsInRangeFn  func(ctx context.Context, staffID string, start, end time.Time) ([]ServiceExecution, error)
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Profile, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &Profile{ID: uuid.MustParse(id)}, nil
}
func (f *fakeRepo) FindAttendanceByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*AttendanceRecord, error) {
	return f.findAttendanceFn(ctx, staffID, date)
}
func (f *fakeRepo) FindAttendanceInRange(ctx context.Context, staffID string, start, end time.Time) ([]AttendanceRecord, error) {
	return f.attendanceInRangeFn(ctx, staffID, start, end)
}
func (f *fakeRepo) CreateAttendance(ctx context.Context, record *AttendanceRecord) error {
	return f.createAttendanceFn(ctx, record)
}
func (f *fakeRepo) UpdateAttendance(ctx context.Context, record *AttendanceRecord) error {
	return f.updateAttendanceFn(ctx, record)
}
func (f *fakeRepo) CreateAdjustment(ctx context.Context, adj *PayAdjustment) error {
	return f.createAdjustmentFn(ctx, adj)
}
func (f *fakeRepo) FindUnbilledAdjustmentsInRange(ctx context.Context, staffID string, start, end time.Time) ([]PayAdjustment, error) {
	return f.adjustmentsInRangeFn(ctx, staffID, start, end)
}
func (f *fakeRepo) FindServiceExecutionsInRange(ctx context.Context, staffID string, start, end time.Time) ([]ServiceExecution, error) {
	return f.executionsInRangeFn(ctx, staffID, start, end)
}

func TestService_CheckInAndCheckOut(t *testing.T) {
	db, mock := newTestDB(t)
	staffID := uuid.New()
	ctx := context.Background()

	var saved *AttendanceRecord
	repo := &fakeRepo{
		findAttendanceFn: func(ctx context.Context, sid string, date time.Time) (*AttendanceRecord, error) {
			if saved == nil {
				return nil, gorm.ErrRecordNotFound
			}
			return saved, nil
		},
		createAttendanceFn: func(ctx context.Context, record *AttendanceRecord) error {
			saved = record
			return nil
		},
		updateAttendanceFn: func(ctx context.Context, record *AttendanceRecord) error {
			saved = record
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.CheckIn(ctx, "user-1", CheckInRequest{StaffID: staffID.String()})
	assert.NoError(t, err)
	assert.NotNil(t, inResp.CheckInAt)
	assert.Equal(t, string(AttendanceIncomplete), inResp.Status)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.CheckOut(ctx, CheckOutRequest{StaffID: staffID.String()})
	assert.NoError(t, err)
	assert.NotNil(t, outResp.CheckOutAt)
	assert.Equal(t, string(AttendanceOK), outResp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	staffID := uuid.New()
	now := time.Now()

	repo := &fakeRepo{
		findAttendanceFn: func(ctx context.Context, sid string, date time.Time) (*AttendanceRecord, error) {
			return &AttendanceRecord{ID: uuid.New(), CheckInAt: &now}, nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckIn(context.Background(), "user-1", CheckInRequest{StaffID: staffID.String()})
	assert.ErrorIs(t, err, stafferrors.ErrAlreadyCheckedIn)
}

func TestService_CheckOut_WithoutCheckIn(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &fakeRepo{
		findAttendanceFn: func(ctx context.Context, sid string, date time.Time) (*AttendanceRecord, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckOut(context.Background(), CheckOutRequest{StaffID: uuid.New().String()})
	assert.ErrorIs(t, err, stafferrors.ErrNoCheckInToday)
}

func TestService_CreateAdjustment(t *testing.T) {
	db, _ := newTestDB(t)
	staffID := uuid.New()

	var saved PayAdjustment
	repo := &fakeRepo{
		createAdjustmentFn: func(ctx context.Context, adj *PayAdjustment) error {
			saved = *adj
			return nil
		},
	}

	svc := NewService(db, repo)

	resp, err := svc.CreateAdjustment(context.Background(), "user-1", AdjustmentRequest{
		StaffID: staffID.String(),
		Type:    "DEDUCTION",
		Amount:  decimal.RequireFromString("50.00"),
		Reason:  "Adiantamento em dinheiro",
	})

	assert.NoError(t, err)
	assert.Equal(t, "DEDUCTION", resp.Type)
	assert.True(t, saved.Amount.Equal(decimal.RequireFromString("50.00")))
	assert.Nil(t, saved.StaffPayStatementID)
}

func TestService_CreateAdjustment_Validation(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewService(db, &fakeRepo{})

	_, err := svc.CreateAdjustment(context.Background(), "user-1", AdjustmentRequest{
		StaffID: uuid.New().String(),
		Type:    "BONUS",
		Amount:  decimal.Zero,
		Reason:  "valid reason",
	})
	assert.ErrorIs(t, err, stafferrors.ErrNonPositiveAmount)

	_, err = svc.CreateAdjustment(context.Background(), "user-1", AdjustmentRequest{
		StaffID: uuid.New().String(),
		Type:    "REFUND",
		Amount:  decimal.NewFromInt(10),
		Reason:  "valid reason",
	})
	assert.ErrorIs(t, err, stafferrors.ErrInvalidAdjustmentType)
}

func TestService_GetProfile_NotFound(t *testing.T) {
	db, _ := newTestDB(t)

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Profile, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(db, repo)

	_, err := svc.GetProfile(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)

	_, err = svc.GetProfile(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, stafferrors.ErrInvalidStaffID)
}
