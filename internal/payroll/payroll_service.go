package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-groomops/internal/events"
	"go-groomops/internal/messaging/kafka"
	payrollerrors "go-groomops/internal/payroll/errors"
	"go-groomops/internal/shared/contextutil"
	"go-groomops/internal/staff"
	"go-groomops/internal/transport"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	PreviewStaffPayroll(ctx context.Context, staffID string, filter PreviewFilterRequest) (PreviewResponse, error)
	ClosePeriod(ctx context.Context, actorID string, req ClosePeriodRequest) (ClosePeriodResponse, error)
	GetPayStatementHistory(ctx context.Context, staffID string) ([]StatementResponse, error)
}

type service struct {
	db            *gorm.DB
	repo          Repository
	staffRepo     staff.Repository
	transportRepo transport.Repository
	policy        transport.PayoutPolicy
	outbox        kafka.OutboxRepository
	logger        *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	staffRepo staff.Repository,
	transportRepo transport.Repository,
) Service {
	return NewServiceWithOutbox(db, repo, staffRepo, transportRepo, nil)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	staffRepo staff.Repository,
	transportRepo transport.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		staffRepo:     staffRepo,
		transportRepo: transportRepo,
		policy:        transport.DefaultPayoutPolicy(),
		outbox:        outboxRepo,
		logger:        l,
	}
}

func (s *service) PreviewStaffPayroll(ctx context.Context, staffID string, filter PreviewFilterRequest) (PreviewResponse, error) {
	start, end, err := parseRange(filter.StartDate, filter.EndDate)
	if err != nil {
		return PreviewResponse{}, err
	}
	return s.computePreview(ctx, s.staffRepo, s.transportRepo, staffID, start, end)
}

// computePreview runs against whichever repo binding the caller provides so
// ClosePeriod can reuse it inside its transaction.
func (s *service) computePreview(
	ctx context.Context,
	staffRepo staff.Repository,
	transportRepo transport.Repository,
	staffID string,
	start, end time.Time,
) (PreviewResponse, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return PreviewResponse{}, payrollerrors.ErrInvalidStaffID
	}

	profile, err := staffRepo.FindByID(ctx, staffID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PreviewResponse{}, payrollerrors.ErrStaffNotFound
	}
	if err != nil {
		return PreviewResponse{}, err
	}

	preview := PreviewResponse{
		StaffID:   staffID,
		StaffName: profile.Name,
		Period: PeriodRange{
			Start: start.Format(dateLayout),
			End:   end.Format(dateLayout),
		},
		Earnings: Earnings{
			Daily:       EarningsBucket{Total: decimal.Zero, Details: []DetailLine{}},
			Legs:        EarningsBucket{Total: decimal.Zero, Details: []DetailLine{}},
			Commissions: EarningsBucket{Total: decimal.Zero, Details: []DetailLine{}},
			Fixed:       FixedBucket{Total: decimal.Zero, Details: []DetailLine{}},
		},
		Adjustments: AdjustmentsBucket{Total: decimal.Zero, Items: []AdjustmentItem{}},
	}

	if profile.HasModel(staff.PayModelDaily) || profile.DailyRate.IsPositive() {
		records, err := staffRepo.FindAttendanceInRange(ctx, staffID, start, end)
		if err != nil {
			return PreviewResponse{}, err
		}
		perDay := profile.DailyRate.Add(profile.MealVoucher).Add(profile.TransportVoucher)
		preview.Earnings.Daily.Count = len(records)
		preview.Earnings.Daily.Total = perDay.Mul(decimal.NewFromInt(int64(len(records))))
		for _, r := range records {
			preview.Earnings.Daily.Details = append(preview.Earnings.Daily.Details, DetailLine{
				Date:  r.Date.Format(dateLayout),
				Type:  "DIARIA",
				Value: perDay,
			})
		}
	}

	hasPerLegRate := profile.PerLegRate != nil && profile.PerLegRate.IsPositive()
	if profile.HasModel(staff.PayModelPerLeg) || hasPerLegRate {
		legs, err := transportRepo.FindCompletedLegsForStaff(ctx, staffID, start, end)
		if err != nil {
			return PreviewResponse{}, err
		}
		for _, leg := range legs {
			value := s.legPayout(profile, leg)
			preview.Earnings.Legs.Count++
			preview.Earnings.Legs.Total = preview.Earnings.Legs.Total.Add(value)

			notes := ""
			if leg.Notes != nil {
				notes = *leg.Notes
			}
			preview.Earnings.Legs.Details = append(preview.Earnings.Legs.Details, DetailLine{
				Date:  leg.CompletedAt.Format(dateLayout),
				Type:  string(leg.LegType),
				Value: value,
				Notes: notes,
			})
		}
	}

	if profile.CommissionPercent != nil && profile.CommissionPercent.IsPositive() {
		executions, err := staffRepo.FindServiceExecutionsInRange(ctx, staffID, start, end)
		if err != nil {
			return PreviewResponse{}, err
		}
		hundred := decimal.NewFromInt(100)
		for _, exec := range executions {
			commission := exec.BasePrice.Mul(*profile.CommissionPercent).Div(hundred).Round(2)
			preview.Earnings.Commissions.Count++
			preview.Earnings.Commissions.Total = preview.Earnings.Commissions.Total.Add(commission)
			preview.Earnings.Commissions.Details = append(preview.Earnings.Commissions.Details, DetailLine{
				Date:    exec.ExecutedAt.Format(dateLayout),
				Service: exec.ServiceName,
				Value:   commission,
			})
		}
	}

	if profile.FixedSalary != nil && profile.FixedSalary.IsPositive() {
		// Full amount, no pro-ration.
		preview.Earnings.Fixed.Total = *profile.FixedSalary
		preview.Earnings.Fixed.Details = append(preview.Earnings.Fixed.Details, DetailLine{
			Type:  "SALARIO_FIXO",
			Value: *profile.FixedSalary,
		})
	}

	adjustments, err := staffRepo.FindUnbilledAdjustmentsInRange(ctx, staffID, start, end)
	if err != nil {
		return PreviewResponse{}, err
	}
	for _, adj := range adjustments {
		signed := adj.Amount
		if adj.Type == staff.AdjustmentDeduction || adj.Type == staff.AdjustmentAdvance {
			signed = signed.Neg()
		}
		preview.Adjustments.Total = preview.Adjustments.Total.Add(signed)
		preview.Adjustments.Items = append(preview.Adjustments.Items, AdjustmentItem{
			ID:     adj.ID.String(),
			Type:   string(adj.Type),
			Amount: adj.Amount,
			Reason: adj.Reason,
			Date:   adj.Date.Format(dateLayout),
		})
	}

	preview.TotalDue = preview.Earnings.Daily.Total.
		Add(preview.Earnings.Legs.Total).
		Add(preview.Earnings.Commissions.Total).
		Add(preview.Earnings.Fixed.Total).
		Add(preview.Adjustments.Total)

	return preview, nil
}

// legPayout values one completed leg by priority: explicit per-execution
// override, then the staff member's fixed rate, then the payout policy applied
// to the customer-facing leg price (resolved from the pricing snapshot when
// one was captured, else the recorded leg value).
func (s *service) legPayout(profile *staff.Profile, leg transport.LegExecution) decimal.Decimal {
	if leg.LegValue != nil && leg.LegValue.IsPositive() {
		return *leg.LegValue
	}
	if profile.PerLegRate != nil && profile.PerLegRate.IsPositive() {
		return *profile.PerLegRate
	}

	base := decimal.Zero
	if leg.Snapshot != nil {
		breakdown := leg.Snapshot.Breakdown()
		base = transport.LegPrice(&breakdown, leg.Snapshot.TotalAmount, leg.TransportType, transport.LegTypeOf(leg.LegType))
	} else if leg.LegValue != nil {
		base = *leg.LegValue
	}
	return s.policy.FallbackLegPayout(base)
}

func (s *service) ClosePeriod(ctx context.Context, actorID string, req ClosePeriodRequest) (ClosePeriodResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return ClosePeriodResponse{}, err
	}

	var (
		period     StaffPayPeriod
		statements []StaffPayStatement
	)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		qStaff := s.staffRepo.WithTx(tx)
		qTransport := s.transportRepo.WithTx(tx)

		period = StaffPayPeriod{
			ID:              uuid.New(),
			StartDate:       start,
			EndDate:         end,
			Status:          PeriodStatusClosed,
			Type:            PeriodTypeRegular,
			CreatedByUserID: actorID,
		}
		if err := qtx.CreatePeriod(ctx, &period); err != nil {
			return err
		}

		for _, staffID := range req.StaffIDs {
			// Recomputed inside the transaction so the statement matches
			// exactly what the adjustments link consumes.
			preview, err := s.computePreview(ctx, qStaff, qTransport, staffID, start, end)
			if err != nil {
				return err
			}

			details, err := json.Marshal(preview)
			if err != nil {
				return err
			}

			statement := StaffPayStatement{
				ID:               uuid.New(),
				StaffPayPeriodID: period.ID,
				StaffID:          uuid.MustParse(staffID),
				BaseTotal:        preview.TotalDue.Sub(preview.Adjustments.Total),
				AdjustmentsTotal: preview.Adjustments.Total,
				TotalDue:         preview.TotalDue,
				Status:           StatementStatusIssued,
				DetailsJSON:      details,
			}
			if err := qtx.CreateStatement(ctx, &statement); err != nil {
				return err
			}

			if err := qtx.LinkAdjustmentsToStatement(ctx, staffID, start, end, statement.ID.String()); err != nil {
				return err
			}

			statements = append(statements, statement)
		}

		s.queueClosedEvent(ctx, tx, period, len(statements))
		return nil
	})
	if err != nil {
		s.logger.Error("close payroll period failed",
			zap.String("request_id", rid),
			zap.Int("staff_count", len(req.StaffIDs)),
			zap.Error(err),
		)
		return ClosePeriodResponse{}, err
	}

	s.logger.Info("payroll period closed",
		zap.String("request_id", rid),
		zap.String("period_id", period.ID.String()),
		zap.Int("statement_count", len(statements)),
	)

	resp := ClosePeriodResponse{
		Period: PeriodResponse{
			ID:        period.ID.String(),
			StartDate: period.StartDate.Format(dateLayout),
			EndDate:   period.EndDate.Format(dateLayout),
			Status:    string(period.Status),
			Type:      string(period.Type),
			ClosedBy:  period.CreatedByUserID,
		},
		Statements: make([]StatementResponse, len(statements)),
	}
	for i, st := range statements {
		resp.Statements[i] = mapStatementToResponse(st)
	}
	return resp, nil
}

func (s *service) GetPayStatementHistory(ctx context.Context, staffID string) ([]StatementResponse, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return nil, payrollerrors.ErrInvalidStaffID
	}

	statements, err := s.repo.FindStatementsByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	resp := make([]StatementResponse, len(statements))
	for i, st := range statements {
		resp[i] = mapStatementToResponse(st)
	}
	return resp, nil
}

// queueClosedEvent is best effort: audit failures never abort the close.
func (s *service) queueClosedEvent(ctx context.Context, tx *gorm.DB, period StaffPayPeriod, statementCount int) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(events.PayrollPeriodClosedEvent{
		EventType:      "payroll.period_closed",
		PeriodID:       period.ID.String(),
		PeriodStart:    period.StartDate.Format(dateLayout),
		PeriodEnd:      period.EndDate.Format(dateLayout),
		StatementCount: statementCount,
		ClosedByUserID: period.CreatedByUserID,
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal period closed event failed", zap.Error(err))
		return
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "staff_pay_period",
		AggregateID:   period.ID.String(),
		EventType:     "payroll.period_closed",
		Topic:         events.PayrollAuditTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("period closed outbox persist failed", zap.Error(err))
	}
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	endDay, err := time.Parse(dateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	if start.After(endDay) {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateRange
	}
	// Ranges are inclusive of the whole end day.
	end := endDay.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

func mapStatementToResponse(st StaffPayStatement) StatementResponse {
	return StatementResponse{
		ID:               st.ID.String(),
		StaffPayPeriodID: st.StaffPayPeriodID.String(),
		StaffID:          st.StaffID.String(),
		BaseTotal:        st.BaseTotal,
		AdjustmentsTotal: st.AdjustmentsTotal,
		TotalDue:         st.TotalDue,
		Status:           string(st.Status),
		CreatedAt:        st.CreatedAt.Format(time.RFC3339),
	}
}
