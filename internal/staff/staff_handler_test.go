package staff_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-groomops/internal/staff"
	stafferrors "go-groomops/internal/staff/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	checkInFn    func(ctx context.Context, actorID string, req staff.CheckInRequest) (staff.AttendanceResponse, error)
	checkOutFn   func(ctx context.Context, req staff.CheckOutRequest) (staff.AttendanceResponse, error)
	adjustmentFn func(ctx context.Context, actorID string, req staff.AdjustmentRequest) (staff.AdjustmentResponse, error)
	profileFn    func(ctx context.Context, id string) (staff.ProfileResponse, error)
}

func (f *fakeService) CheckIn(ctx context.Context, actorID string, req staff.CheckInRequest) (staff.AttendanceResponse, error) {
	return f.checkInFn(ctx, actorID, req)
}
func (f *fakeService) CheckOut(ctx context.Context, req staff.CheckOutRequest) (staff.AttendanceResponse, error) {
	return f.checkOutFn(ctx, req)
}
func (f *fakeService) CreateAdjustment(ctx context.Context, actorID string, req staff.AdjustmentRequest) (staff.AdjustmentResponse, error) {
	return f.adjustmentFn(ctx, actorID, req)
}
func (f *fakeService) GetProfile(ctx context.Context, id string) (staff.ProfileResponse, error) {
	return f.profileFn(ctx, id)
}

func TestHandler_CheckIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New().String()

	svc := &fakeService{
		checkInFn: func(ctx context.Context, actorID string, req staff.CheckInRequest) (staff.AttendanceResponse, error) {
			assert.Equal(t, "user-1", actorID)
			assert.Equal(t, staffID, req.StaffID)
			return staff.AttendanceResponse{StaffID: req.StaffID, Status: "incomplete"}, nil
		},
	}

	h := staff.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", "user-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/hr/attendance/check-in",
		strings.NewReader(`{"staff_id":"`+staffID+`"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CheckIn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "incomplete")
}

func TestHandler_CheckIn_MapsDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New().String()

	svc := &fakeService{
		checkInFn: func(ctx context.Context, actorID string, req staff.CheckInRequest) (staff.AttendanceResponse, error) {
			return staff.AttendanceResponse{}, stafferrors.ErrAlreadyCheckedIn
		},
	}

	h := staff.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/hr/attendance/check-in",
		strings.NewReader(`{"staff_id":"`+staffID+`"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CheckIn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already recorded")
}

func TestHandler_CreateAdjustment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New().String()

	svc := &fakeService{
		adjustmentFn: func(ctx context.Context, actorID string, req staff.AdjustmentRequest) (staff.AdjustmentResponse, error) {
			assert.Equal(t, "DEDUCTION", req.Type)
			return staff.AdjustmentResponse{
				StaffID: req.StaffID,
				Type:    req.Type,
				Amount:  decimal.RequireFromString("50.00"),
			}, nil
		},
	}

	h := staff.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/hr/adjustments",
		strings.NewReader(`{"staff_id":"`+staffID+`","type":"DEDUCTION","amount":50,"reason":"uniform damage"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateAdjustment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "DEDUCTION")
}

func TestHandler_CreateAdjustment_InvalidType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New().String()

	h := staff.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/hr/adjustments",
		strings.NewReader(`{"staff_id":"`+staffID+`","type":"REFUND","amount":50,"reason":"nope"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateAdjustment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New().String()

	svc := &fakeService{
		profileFn: func(ctx context.Context, id string) (staff.ProfileResponse, error) {
			assert.Equal(t, staffID, id)
			return staff.ProfileResponse{ID: id, Name: "Groomer One"}, nil
		},
	}

	h := staff.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: staffID}}
	c.Request = httptest.NewRequest(http.MethodGet, "/hr/staff/"+staffID, nil)

	h.GetProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Groomer One")
}
