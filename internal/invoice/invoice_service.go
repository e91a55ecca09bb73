package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-groomops/internal/appointment"
	"go-groomops/internal/customer"
	"go-groomops/internal/events"
	invoiceerrors "go-groomops/internal/invoice/errors"
	"go-groomops/internal/ledger"
	"go-groomops/internal/messaging/kafka"
	"go-groomops/internal/shared/contextutil"
	"go-groomops/internal/shared/counter"
	"go-groomops/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const invoiceCounterType = "invoice_number"

type Service interface {
	CreateDraft(ctx context.Context, actorID string, req CreateDraftRequest) (InvoiceResponse, error)
	GetAll(ctx context.Context, filter ListFilterRequest) ([]InvoiceResponse, error)
	GetByID(ctx context.Context, id string) (InvoiceDetailResponse, error)
	Issue(ctx context.Context, actorID, id string) (InvoiceResponse, error)
	Void(ctx context.Context, actorID, id string) (InvoiceResponse, error)
	CreateCreditNote(ctx context.Context, actorID, id string, req CreditNoteRequest) (CreditNoteResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	appointments appointment.Repository
	ledgerRepo   ledger.Repository
	customers    customer.Repository
	counter      counter.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	appointments appointment.Repository,
	ledgerRepo ledger.Repository,
	customers customer.Repository,
	counterRepo counter.Repository,
) Service {
	return NewServiceWithOutbox(db, repo, appointments, ledgerRepo, customers, counterRepo, nil)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	appointments appointment.Repository,
	ledgerRepo ledger.Repository,
	customers customer.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("invoice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		appointments: appointments,
		ledgerRepo:   ledgerRepo,
		customers:    customers,
		counter:      counterRepo,
		outbox:       outboxRepo,
		logger:       l,
	}
}

func (s *service) CreateDraft(ctx context.Context, actorID string, req CreateDraftRequest) (InvoiceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return InvoiceResponse{}, invoiceerrors.ErrCustomerNotFound
	}

	discountPct := decimal.Zero
	if req.DiscountPct != nil {
		discountPct = *req.DiscountPct
		if discountPct.IsNegative() || discountPct.GreaterThan(decimal.NewFromInt(100)) {
			return InvoiceResponse{}, invoiceerrors.ErrInvalidDiscount
		}
	}

	periodStart, err := parseOptionalTime(req.PeriodStart)
	if err != nil {
		return InvoiceResponse{}, err
	}
	periodEnd, err := parseOptionalTime(req.PeriodEnd)
	if err != nil {
		return InvoiceResponse{}, err
	}

	exists, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return InvoiceResponse{}, err
	}
	if !exists {
		return InvoiceResponse{}, invoiceerrors.ErrCustomerNotFound
	}

	var created Invoice

	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		qAppointments := s.appointments.WithTx(tx)

		var lines []Line
		subtotal := decimal.Zero

		if len(req.AppointmentIDs) > 0 {
			appts, err := qAppointments.FindUnbilledForCustomer(ctx, req.CustomerID, req.AppointmentIDs)
			if err != nil {
				return err
			}
			// The UNBILLED/ownership filter already ran: any shortfall means
			// some requested appointment is unusable, so nothing is billed.
			if len(appts) != len(req.AppointmentIDs) {
				return invoiceerrors.ErrAppointmentsConflict
			}

			for _, appt := range appts {
				lineTotal := decimal.Zero
				for _, svc := range appt.Services {
					lineTotal = lineTotal.Add(svc.BasePrice)
				}
				subtotal = subtotal.Add(lineTotal)

				apptID := appt.ID
				lines = append(lines, Line{
					ID:            uuid.New(),
					Description:   appointmentDescription(appt),
					Quantity:      1,
					UnitPrice:     lineTotal,
					LineTotal:     lineTotal,
					Kind:          KindAppointment,
					AppointmentID: &apptID,
				})
			}
		}

		discountTotal := decimal.Zero
		if discountPct.IsPositive() {
			discountTotal = money.Percent(subtotal, discountPct)
		}
		amount := money.FloorZero(subtotal.Sub(discountTotal))

		seq, err := s.counter.WithTx(tx).GetNextValue(ctx, invoiceCounterType)
		if err != nil {
			return err
		}

		created = Invoice{
			ID:              uuid.New(),
			Number:          fmt.Sprintf("INV-%06d", seq),
			CustomerID:      customerID,
			Status:          StatusDraft,
			Subtotal:        subtotal.Round(money.Scale),
			DiscountTotal:   discountTotal,
			Amount:          amount,
			DueDate:         time.Now().UTC().Add(30 * 24 * time.Hour),
			PeriodStart:     periodStart,
			PeriodEnd:       periodEnd,
			Currency:        DefaultCurrency,
			Notes:           req.Notes,
			CreatedByUserID: actorID,
			Lines:           lines,
		}

		if err := qtx.Create(ctx, &created); err != nil {
			return mapRepositoryError(err)
		}

		if len(req.AppointmentIDs) > 0 {
			claimed, err := qAppointments.MarkInvoiced(ctx, req.AppointmentIDs)
			if err != nil {
				return err
			}
			// A concurrent draft may have claimed a row between the filtered
			// read and this update; treat that as the same conflict.
			if claimed != int64(len(req.AppointmentIDs)) {
				return invoiceerrors.ErrAppointmentsConflict
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Warn("create draft invoice failed",
			zap.String("request_id", rid),
			zap.String("customer_id", req.CustomerID),
			zap.Error(err),
		)
		return InvoiceResponse{}, err
	}

	s.logger.Info("draft invoice created",
		zap.String("request_id", rid),
		zap.String("invoice_id", created.ID.String()),
		zap.String("amount", created.Amount.StringFixed(2)),
		zap.Int("line_count", len(created.Lines)),
	)

	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilterRequest) ([]InvoiceResponse, error) {
	invoices, err := s.repo.FindAll(ctx, filter.CustomerID, filter.Status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = mapToResponse(inv)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (InvoiceDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InvoiceDetailResponse{}, invoiceerrors.ErrInvalidInvoiceID
	}

	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InvoiceDetailResponse{}, mapRepositoryError(err)
	}

	entries, err := s.ledgerRepo.FindAllByInvoice(ctx, id)
	if err != nil {
		return InvoiceDetailResponse{}, err
	}

	detail := InvoiceDetailResponse{
		InvoiceResponse: mapToResponse(*inv),
		LedgerEntries:   make([]ledger.EntryResponse, len(entries)),
	}
	for i, e := range entries {
		detail.LedgerEntries[i] = ledger.MapEntryToResponse(e)
	}
	return detail, nil
}

func (s *service) Issue(ctx context.Context, actorID, id string) (InvoiceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	var issued Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		inv, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if inv.Status != StatusDraft {
			return invoiceerrors.ErrOnlyDraftIssuable
		}

		if err := qtx.UpdateStatus(ctx, id, StatusIssued); err != nil {
			return err
		}

		invoiceID := inv.ID
		entry := &ledger.Entry{
			ID:              uuid.New(),
			CustomerID:      inv.CustomerID,
			Type:            ledger.TypeInvoiceDebit,
			Amount:          inv.Amount,
			Direction:       ledger.DirectionDebit,
			InvoiceID:       &invoiceID,
			Reference:       fmt.Sprintf("Fatura #%s", shortID(inv.ID)),
			CreatedByUserID: actorID,
		}
		if err := s.ledgerRepo.WithTx(tx).Create(ctx, entry); err != nil {
			return err
		}

		issued = *inv
		issued.Status = StatusIssued

		s.queueAuditEvent(ctx, tx, "invoice.issued", issued.ID.String(), events.InvoiceIssuedEvent{
			EventType:  "invoice.issued",
			InvoiceID:  issued.ID.String(),
			CustomerID: issued.CustomerID.String(),
			Amount:     issued.Amount.StringFixed(2),
			OccurredAt: time.Now().UTC(),
		})

		return nil
	})
	if err != nil {
		return InvoiceResponse{}, err
	}

	s.logger.Info("invoice issued",
		zap.String("request_id", rid),
		zap.String("invoice_id", issued.ID.String()),
		zap.String("amount", issued.Amount.StringFixed(2)),
	)

	return mapToResponse(issued), nil
}

func (s *service) Void(ctx context.Context, actorID, id string) (InvoiceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	var voided Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		inv, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if inv.Status == StatusPaid {
			return invoiceerrors.ErrVoidPaidInvoice
		}
		if inv.Status == StatusVoid {
			return invoiceerrors.ErrAlreadyVoid
		}
		priorStatus := inv.Status

		if err := qtx.UpdateStatus(ctx, id, StatusVoid); err != nil {
			return err
		}

		var appointmentIDs []string
		for _, line := range inv.Lines {
			if line.AppointmentID != nil {
				appointmentIDs = append(appointmentIDs, line.AppointmentID.String())
			}
		}
		if len(appointmentIDs) > 0 {
			if err := s.appointments.WithTx(tx).Release(ctx, appointmentIDs); err != nil {
				return err
			}
		}

		// A DRAFT never posted a debit, so there is nothing to reverse.
		if priorStatus == StatusIssued {
			invoiceID := inv.ID
			entry := &ledger.Entry{
				ID:              uuid.New(),
				CustomerID:      inv.CustomerID,
				Type:            ledger.TypeAdjustment,
				Amount:          inv.Amount,
				Direction:       ledger.DirectionCredit,
				InvoiceID:       &invoiceID,
				Reference:       fmt.Sprintf("Estorno Fatura #%s", shortID(inv.ID)),
				CreatedByUserID: actorID,
			}
			if err := s.ledgerRepo.WithTx(tx).Create(ctx, entry); err != nil {
				return err
			}
		}

		voided = *inv
		voided.Status = StatusVoid

		s.queueAuditEvent(ctx, tx, "invoice.voided", voided.ID.String(), events.InvoiceVoidedEvent{
			EventType:   "invoice.voided",
			InvoiceID:   voided.ID.String(),
			CustomerID:  voided.CustomerID.String(),
			PriorStatus: string(priorStatus),
			OccurredAt:  time.Now().UTC(),
		})

		return nil
	})
	if err != nil {
		return InvoiceResponse{}, err
	}

	s.logger.Info("invoice voided",
		zap.String("request_id", rid),
		zap.String("invoice_id", voided.ID.String()),
	)

	return mapToResponse(voided), nil
}

func (s *service) CreateCreditNote(ctx context.Context, actorID, id string, req CreditNoteRequest) (CreditNoteResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !req.Amount.IsPositive() {
		return CreditNoteResponse{}, invoiceerrors.ErrNonPositiveAmount
	}
	if len(req.Reason) < 5 {
		return CreditNoteResponse{}, invoiceerrors.ErrReasonTooShort
	}

	var (
		line  Line
		entry ledger.Entry
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		inv, err := qtx.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if inv.Status == StatusDraft || inv.Status == StatusVoid {
			return invoiceerrors.ErrCreditNoteState
		}

		amount := req.Amount.Round(money.Scale)

		line = Line{
			ID:          uuid.New(),
			InvoiceID:   inv.ID,
			Description: fmt.Sprintf("Credit Note: %s", req.Reason),
			Quantity:    1,
			UnitPrice:   amount.Neg(),
			LineTotal:   amount.Neg(),
			Kind:        KindAdjustment,
		}
		if err := qtx.CreateLine(ctx, &line); err != nil {
			return err
		}

		// The invoice's stored amount stays untouched: the issued total is a
		// historical record, the ledger carries the outstanding balance.
		invoiceID := inv.ID
		entry = ledger.Entry{
			ID:              uuid.New(),
			CustomerID:      inv.CustomerID,
			Type:            ledger.TypeAdjustment,
			Amount:          amount,
			Direction:       ledger.DirectionCredit,
			InvoiceID:       &invoiceID,
			Reference:       fmt.Sprintf("Nota de Crédito via Fatura #%s: %s", shortID(inv.ID), req.Reason),
			CreatedByUserID: actorID,
		}
		if err := s.ledgerRepo.WithTx(tx).Create(ctx, &entry); err != nil {
			return err
		}

		s.queueAuditEvent(ctx, tx, "invoice.credit_note", inv.ID.String(), events.CreditNoteCreatedEvent{
			EventType:  "invoice.credit_note",
			InvoiceID:  inv.ID.String(),
			CustomerID: inv.CustomerID.String(),
			Amount:     amount.StringFixed(2),
			Reason:     req.Reason,
			OccurredAt: time.Now().UTC(),
		})

		return nil
	})
	if err != nil {
		s.logger.Warn("create credit note failed",
			zap.String("request_id", rid),
			zap.String("invoice_id", id),
			zap.Error(err),
		)
		return CreditNoteResponse{}, err
	}

	return CreditNoteResponse{
		Line:  mapLineToResponse(line),
		Entry: ledger.MapEntryToResponse(entry),
	}, nil
}

// queueAuditEvent is best effort: audit failures never abort the business
// transaction.
func (s *service) queueAuditEvent(ctx context.Context, tx *gorm.DB, eventType, aggregateID string, payload any) {
	if s.outbox == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal audit event failed", zap.String("event_type", eventType), zap.Error(err))
		return
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "invoice",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         events.BillingAuditTopic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("audit outbox persist failed", zap.String("event_type", eventType), zap.Error(err))
	}
}

func appointmentDescription(appt appointment.Appointment) string {
	if appt.StartAt != nil {
		return fmt.Sprintf("Agendamento %s", appt.StartAt.Format("02/01/2006"))
	}
	return "Agendamento sem data"
}

func parseOptionalTime(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, invoiceerrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func mapToResponse(inv Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID.String(),
		Number:        inv.Number,
		CustomerID:    inv.CustomerID.String(),
		Status:        string(inv.Status),
		Subtotal:      inv.Subtotal,
		DiscountTotal: inv.DiscountTotal,
		Amount:        inv.Amount,
		Currency:      inv.Currency,
		DueDate:       inv.DueDate.Format(time.RFC3339),
		Notes:         inv.Notes,
		CreatedBy:     inv.CreatedByUserID,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		Lines:         make([]LineResponse, len(inv.Lines)),
	}
	if inv.Customer != nil {
		resp.CustomerName = inv.Customer.Name
	}
	if inv.PeriodStart != nil {
		v := inv.PeriodStart.Format(time.RFC3339)
		resp.PeriodStart = &v
	}
	if inv.PeriodEnd != nil {
		v := inv.PeriodEnd.Format(time.RFC3339)
		resp.PeriodEnd = &v
	}
	for i, line := range inv.Lines {
		resp.Lines[i] = mapLineToResponse(line)
	}
	return resp
}

func mapLineToResponse(line Line) LineResponse {
	resp := LineResponse{
		ID:          line.ID.String(),
		Description: line.Description,
		Quantity:    line.Quantity,
		UnitPrice:   line.UnitPrice,
		LineTotal:   line.LineTotal,
		Kind:        string(line.Kind),
	}
	if line.AppointmentID != nil {
		v := line.AppointmentID.String()
		resp.AppointmentID = &v
	}
	return resp
}
