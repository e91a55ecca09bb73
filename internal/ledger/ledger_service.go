package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-groomops/internal/customer"
	"go-groomops/internal/events"
	ledgererrors "go-groomops/internal/ledger/errors"
	"go-groomops/internal/messaging/kafka"
	"go-groomops/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type PostEntryInput struct {
	CustomerID string
	Type       EntryType
	Amount     decimal.Decimal
	Direction  Direction
	InvoiceID  *uuid.UUID
	Reference  string
	ActorID    string
}

type Service interface {
	PostEntry(ctx context.Context, input PostEntryInput) (EntryResponse, error)
	RecordPayment(ctx context.Context, actorID string, req PaymentRequest) (EntryResponse, error)
	GetLedger(ctx context.Context, customerID string) (LedgerResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	customers customer.Repository
	outbox    kafka.OutboxRepository
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, customers customer.Repository) Service {
	return NewServiceWithOutbox(db, repo, customers, nil)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	customers customer.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		customers: customers,
		outbox:    outboxRepo,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) PostEntry(ctx context.Context, input PostEntryInput) (EntryResponse, error) {
	entry, err := buildEntry(input)
	if err != nil {
		return EntryResponse{}, err
	}

	exists, err := s.customers.Exists(ctx, input.CustomerID)
	if err != nil {
		return EntryResponse{}, err
	}
	if !exists {
		return EntryResponse{}, ledgererrors.ErrCustomerNotFound
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return EntryResponse{}, err
	}
	return MapEntryToResponse(*entry), nil
}

func (s *service) RecordPayment(ctx context.Context, actorID string, req PaymentRequest) (EntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !req.Amount.IsPositive() {
		return EntryResponse{}, ledgererrors.ErrNonPositiveAmount
	}

	exists, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return EntryResponse{}, err
	}
	if !exists {
		return EntryResponse{}, ledgererrors.ErrCustomerNotFound
	}

	method := "Manual"
	if req.Method != nil && *req.Method != "" {
		method = *req.Method
	}
	reference := fmt.Sprintf("Pagamento via %s", method)
	if req.Reference != nil && *req.Reference != "" {
		reference = *req.Reference
	}

	entry := &Entry{
		ID:              uuid.New(),
		CustomerID:      uuid.MustParse(req.CustomerID),
		Type:            TypePaymentCredit,
		Amount:          req.Amount.Round(2),
		Direction:       DirectionCredit,
		Reference:       reference,
		CreatedByUserID: actorID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, entry); err != nil {
			return err
		}
		s.queueAuditEvent(ctx, tx, entry, method)
		return nil
	})
	if err != nil {
		s.logger.Error("record payment failed",
			zap.String("request_id", rid),
			zap.String("customer_id", req.CustomerID),
			zap.Error(err),
		)
		return EntryResponse{}, err
	}

	s.logger.Info("payment recorded",
		zap.String("request_id", rid),
		zap.String("customer_id", req.CustomerID),
		zap.String("amount", entry.Amount.StringFixed(2)),
	)

	return MapEntryToResponse(*entry), nil
}

func (s *service) GetLedger(ctx context.Context, customerID string) (LedgerResponse, error) {
	if customerID == "" {
		return LedgerResponse{}, ledgererrors.ErrCustomerIDRequired
	}
	if _, err := uuid.Parse(customerID); err != nil {
		return LedgerResponse{}, ledgererrors.ErrInvalidCustomerID
	}

	entries, err := s.repo.FindAllByCustomer(ctx, customerID)
	if err != nil {
		return LedgerResponse{}, err
	}

	// Balance reads recompute the full history; coalesce concurrent requests
	// for the same customer.
	v, err, _ := s.sf.Do("balance:"+customerID, func() (interface{}, error) {
		return s.repo.SumBalance(ctx, customerID)
	})
	if err != nil {
		return LedgerResponse{}, err
	}

	resp := LedgerResponse{
		Balance: v.(decimal.Decimal),
		Entries: make([]EntryResponse, len(entries)),
	}
	for i, e := range entries {
		resp.Entries[i] = MapEntryToResponse(e)
	}
	return resp, nil
}

// queueAuditEvent is best effort: a failed outbox insert is logged and never
// rolls back the payment itself.
func (s *service) queueAuditEvent(ctx context.Context, tx *gorm.DB, entry *Entry, method string) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(events.PaymentRecordedEvent{
		EventType:  "payment.recorded",
		EntryID:    entry.ID.String(),
		CustomerID: entry.CustomerID.String(),
		Amount:     entry.Amount.StringFixed(2),
		Method:     method,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal payment event failed", zap.Error(err))
		return
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "ledger_entry",
		AggregateID:   entry.ID.String(),
		EventType:     "payment.recorded",
		Topic:         events.BillingAuditTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("payment outbox persist failed", zap.Error(err))
	}
}

func buildEntry(input PostEntryInput) (*Entry, error) {
	customerID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		return nil, ledgererrors.ErrInvalidCustomerID
	}
	if input.Amount.IsNegative() {
		return nil, ledgererrors.ErrNegativeAmount
	}
	switch input.Direction {
	case DirectionDebit, DirectionCredit:
	default:
		return nil, ledgererrors.ErrInvalidDirection
	}
	switch input.Type {
	case TypeInvoiceDebit, TypePaymentCredit, TypeAdjustment:
	default:
		return nil, ledgererrors.ErrInvalidEntryType
	}

	return &Entry{
		ID:              uuid.New(),
		CustomerID:      customerID,
		Type:            input.Type,
		Amount:          input.Amount.Round(2),
		Direction:       input.Direction,
		InvoiceID:       input.InvoiceID,
		Reference:       input.Reference,
		CreatedByUserID: input.ActorID,
	}, nil
}

// MapEntryToResponse is shared with the invoice detail view, which embeds
// the entry trail of a single invoice.
func MapEntryToResponse(e Entry) EntryResponse {
	resp := EntryResponse{
		ID:              e.ID.String(),
		CustomerID:      e.CustomerID.String(),
		Type:            string(e.Type),
		Amount:          e.Amount,
		Direction:       string(e.Direction),
		Reference:       e.Reference,
		CreatedByUserID: e.CreatedByUserID,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
	if e.InvoiceID != nil {
		v := e.InvoiceID.String()
		resp.InvoiceID = &v
	}
	return resp
}
