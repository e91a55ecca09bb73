package staff

import (
	"context"
	"errors"
	"time"

	"go-groomops/internal/shared/contextutil"
	stafferrors "go-groomops/internal/staff/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CheckIn(ctx context.Context, actorID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	CreateAdjustment(ctx context.Context, actorID string, req AdjustmentRequest) (AdjustmentResponse, error)
	GetProfile(ctx context.Context, id string) (ProfileResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *service) CheckIn(ctx context.Context, actorID string, req CheckInRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.findProfile(ctx, req.StaffID); err != nil {
		return AttendanceResponse{}, err
	}

	now := s.now().UTC()
	today := startOfDay(now)

	var record AttendanceRecord

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindAttendanceByStaffAndDate(ctx, req.StaffID, today)
		switch {
		case err == nil:
			if existing.CheckInAt != nil {
				return stafferrors.ErrAlreadyCheckedIn
			}
			existing.CheckInAt = &now
			existing.Status = AttendanceIncomplete
			record = *existing
			return qtx.UpdateAttendance(ctx, existing)
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = AttendanceRecord{
				ID:              uuid.New(),
				StaffID:         uuid.MustParse(req.StaffID),
				Date:            today,
				CheckInAt:       &now,
				Status:          AttendanceIncomplete,
				CreatedByUserID: actorID,
			}
			return qtx.CreateAttendance(ctx, &record)
		default:
			return err
		}
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("staff checked in",
		zap.String("request_id", rid),
		zap.String("staff_id", req.StaffID),
	)

	return mapAttendanceToResponse(record), nil
}

func (s *service) CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error) {
	now := s.now().UTC()
	today := startOfDay(now)

	var record AttendanceRecord

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindAttendanceByStaffAndDate(ctx, req.StaffID, today)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stafferrors.ErrNoCheckInToday
		}
		if err != nil {
			return err
		}
		if existing.CheckInAt == nil {
			return stafferrors.ErrNoCheckInToday
		}
		if existing.CheckOutAt != nil {
			return stafferrors.ErrAlreadyCheckedOut
		}

		existing.CheckOutAt = &now
		existing.Status = AttendanceOK
		record = *existing
		return qtx.UpdateAttendance(ctx, existing)
	})
	if err != nil {
		return AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(record), nil
}

func (s *service) CreateAdjustment(ctx context.Context, actorID string, req AdjustmentRequest) (AdjustmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !req.Amount.IsPositive() {
		return AdjustmentResponse{}, stafferrors.ErrNonPositiveAmount
	}

	adjType := AdjustmentType(req.Type)
	switch adjType {
	case AdjustmentBonus, AdjustmentDeduction, AdjustmentAdvance:
	default:
		return AdjustmentResponse{}, stafferrors.ErrInvalidAdjustmentType
	}

	if _, err := s.findProfile(ctx, req.StaffID); err != nil {
		return AdjustmentResponse{}, err
	}

	date := startOfDay(s.now())
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return AdjustmentResponse{}, stafferrors.ErrInvalidDateFormat
		}
		date = parsed
	}

	adj := PayAdjustment{
		ID:              uuid.New(),
		StaffID:         uuid.MustParse(req.StaffID),
		Type:            adjType,
		Amount:          req.Amount.Abs().Round(2),
		Reason:          req.Reason,
		Date:            date,
		CreatedByUserID: actorID,
	}

	if err := s.repo.CreateAdjustment(ctx, &adj); err != nil {
		return AdjustmentResponse{}, err
	}

	s.logger.Info("pay adjustment created",
		zap.String("request_id", rid),
		zap.String("staff_id", req.StaffID),
		zap.String("type", string(adj.Type)),
		zap.String("amount", adj.Amount.StringFixed(2)),
	)

	return AdjustmentResponse{
		ID:      adj.ID.String(),
		StaffID: adj.StaffID.String(),
		Type:    string(adj.Type),
		Amount:  adj.Amount,
		Reason:  adj.Reason,
		Date:    adj.Date.Format("2006-01-02"),
	}, nil
}

func (s *service) GetProfile(ctx context.Context, id string) (ProfileResponse, error) {
	p, err := s.findProfile(ctx, id)
	if err != nil {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		ID:                p.ID.String(),
		UserID:            p.UserID.String(),
		Name:              p.Name,
		PayModels:         p.PayModels,
		DailyRate:         p.DailyRate,
		MealVoucher:       p.MealVoucher,
		TransportVoucher:  p.TransportVoucher,
		PerLegRate:        p.PerLegRate,
		CommissionPercent: p.CommissionPercent,
		FixedSalary:       p.FixedSalary,
		IsActive:          p.IsActive,
	}, nil
}

func (s *service) findProfile(ctx context.Context, id string) (*Profile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, stafferrors.ErrInvalidStaffID
	}
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, stafferrors.ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func mapAttendanceToResponse(r AttendanceRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:      r.ID.String(),
		StaffID: r.StaffID.String(),
		Date:    r.Date.Format("2006-01-02"),
		Status:  string(r.Status),
	}
	if r.CheckInAt != nil {
		v := r.CheckInAt.Format(time.RFC3339)
		resp.CheckInAt = &v
	}
	if r.CheckOutAt != nil {
		v := r.CheckOutAt.Format(time.RFC3339)
		resp.CheckOutAt = &v
	}
	return resp
}
