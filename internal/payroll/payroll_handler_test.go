package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-groomops/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	previewFn func(ctx context.Context, staffID string, filter payroll.PreviewFilterRequest) (payroll.PreviewResponse, error)
	closeFn   func(ctx context.Context, actorID string, req payroll.ClosePeriodRequest) (payroll.ClosePeriodResponse, error)
	historyFn func(ctx context.Context, staffID string) ([]payroll.StatementResponse, error)
}

func (f *fakeService) PreviewStaffPayroll(ctx context.Context, staffID string, filter payroll.PreviewFilterRequest) (payroll.PreviewResponse, error) {
	return f.previewFn(ctx, staffID, filter)
}
func (f *fakeService) ClosePeriod(ctx context.Context, actorID string, req payroll.ClosePeriodRequest) (payroll.ClosePeriodResponse, error) {
	return f.closeFn(ctx, actorID, req)
}
func (f *fakeService) GetPayStatementHistory(ctx context.Context, staffID string) ([]payroll.StatementResponse, error) {
	return f.historyFn(ctx, staffID)
}

func TestHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New().String()

	svc := &fakeService{
		previewFn: func(ctx context.Context, sid string, filter payroll.PreviewFilterRequest) (payroll.PreviewResponse, error) {
			assert.Equal(t, staffID, sid)
			assert.Equal(t, "2026-08-01", filter.StartDate)
			return payroll.PreviewResponse{
				StaffID:  sid,
				TotalDue: decimal.RequireFromString("575"),
			}, nil
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "staffId", Value: staffID}}
	c.Request = httptest.NewRequest(http.MethodGet,
		"/payroll/"+staffID+"/preview?startDate=2026-08-01&endDate=2026-08-31", nil)

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_due":"575"`)
}

func TestHandler_Preview_MissingDates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := payroll.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/x/preview", nil)

	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ClosePeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New().String()

	svc := &fakeService{
		closeFn: func(ctx context.Context, actorID string, req payroll.ClosePeriodRequest) (payroll.ClosePeriodResponse, error) {
			assert.Equal(t, "user-1", actorID)
			assert.Equal(t, []string{staffID}, req.StaffIDs)
			return payroll.ClosePeriodResponse{
				Period: payroll.PeriodResponse{ID: uuid.New().String(), Status: "CLOSED"},
			}, nil
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", "user-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/close",
		strings.NewReader(`{"start_date":"2026-08-01","end_date":"2026-08-31","staff_ids":["`+staffID+`"]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ClosePeriod(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "CLOSED")
}

func TestHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New().String()

	svc := &fakeService{
		historyFn: func(ctx context.Context, sid string) ([]payroll.StatementResponse, error) {
			return []payroll.StatementResponse{{ID: uuid.New().String(), StaffID: sid}}, nil
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "staffId", Value: staffID}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/"+staffID+"/history", nil)

	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
